package msm

// GroupOps is the projective group-law capability a curve backend provides to
// the kernel. A is the affine point type, P the projective accumulator type.
// Implementations mutate their first argument in place and must be safe for
// concurrent use; the subpackage adapters are stateless empty structs.
type GroupOps[A, P any] interface {
	// SetInfinity resets p to the group identity.
	SetInfinity(p *P)
	// Add sets p to p + q.
	Add(p, q *P)
	// AddMixed sets p to p + a, with a in affine form.
	AddMixed(p *P, a *A)
	// Double sets p to 2p.
	Double(p *P)
	// FromAffine sets p to the projective form of a.
	FromAffine(p *P, a *A)
	// ToAffine sets a to the affine form of p.
	ToAffine(a *A, p *P)
}

// AffineOps is the base-field capability used by the batched affine adder:
// field arithmetic plus coordinate access on affine points. F is the field
// element type. Arithmetic methods must tolerate aliased arguments.
type AffineOps[A, F any] interface {
	SetOne(z *F)
	Sub(z, x, y *F)
	Mul(z, x, y *F)
	// Inverse sets z to 1/x. The kernel never passes a zero x.
	Inverse(z, x *F)
	IsZero(x *F) bool

	// X and Y expose the affine coordinates of a; SetXY writes them.
	X(a *A) *F
	Y(a *A) *F
	SetXY(a *A, x, y *F)
}
