// Package bn254 binds the generic kernel to the BN254 curve from
// gnark-crypto.
package bn254

import (
	"encoding/binary"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	msm "github.com/variablebase/go-msm"
)

// g1Ops adapts the G1 Jacobian group law to the kernel's GroupOps capability.
type g1Ops struct{}

func (g1Ops) SetInfinity(p *curve.G1Jac)                   { *p = curve.G1Jac{} }
func (g1Ops) Add(p, q *curve.G1Jac)                        { p.AddAssign(q) }
func (g1Ops) AddMixed(p *curve.G1Jac, a *curve.G1Affine)   { p.AddMixed(a) }
func (g1Ops) Double(p *curve.G1Jac)                        { p.DoubleAssign() }
func (g1Ops) FromAffine(p *curve.G1Jac, a *curve.G1Affine) { p.FromAffine(a) }
func (g1Ops) ToAffine(a *curve.G1Affine, p *curve.G1Jac)   { a.FromJacobian(p) }

// fpOps adapts fp arithmetic and affine coordinate access to the kernel's
// AffineOps capability.
type fpOps struct{}

func (fpOps) SetOne(z *fp.Element)      { z.SetOne() }
func (fpOps) Sub(z, x, y *fp.Element)   { z.Sub(x, y) }
func (fpOps) Mul(z, x, y *fp.Element)   { z.Mul(x, y) }
func (fpOps) Inverse(z, x *fp.Element)  { z.Inverse(x) }
func (fpOps) IsZero(x *fp.Element) bool { return x.IsZero() }

func (fpOps) X(a *curve.G1Affine) *fp.Element { return &a.X }
func (fpOps) Y(a *curve.G1Affine) *fp.Element { return &a.Y }
func (fpOps) SetXY(a *curve.G1Affine, x, y *fp.Element) {
	a.X.Set(x)
	a.Y.Set(y)
}

var (
	_ msm.GroupOps[curve.G1Affine, curve.G1Jac] = g1Ops{}
	_ msm.AffineOps[curve.G1Affine, fp.Element] = fpOps{}
)

// MultiScalarMul computes sum_i scalars[i]*points[i] over the first
// min(len(points), len(scalars)) pairs with Pippenger's bucket method. The
// truncation is silent; an input with no non-zero scalar yields the point at
// infinity.
func MultiScalarMul(points []curve.G1Affine, scalars []fr.Element, cfg msm.Config) curve.G1Jac {
	return msm.MultiScalarMul[curve.G1Affine, curve.G1Jac](g1Ops{}, points, scalarWords(scalars), fr.Bits, cfg)
}

// MultiScalarMulAffine is MultiScalarMul with the result in affine form.
func MultiScalarMulAffine(points []curve.G1Affine, scalars []fr.Element, cfg msm.Config) curve.G1Affine {
	return msm.MultiScalarMulAffine[curve.G1Affine, curve.G1Jac](g1Ops{}, points, scalarWords(scalars), fr.Bits, cfg)
}

// MixedPointAddition returns points[firstIndex[i]] + points[secondIndex[i]]
// in Jacobian form for every index pair.
func MixedPointAddition(points []curve.G1Affine, firstIndex, secondIndex []int) ([]curve.G1Jac, error) {
	return msm.MixedPointAddition[curve.G1Affine, curve.G1Jac](g1Ops{}, points, firstIndex, secondIndex)
}

// MixedPointAdditionAffine is MixedPointAddition with the results normalized
// back to affine form in a single batched pass.
func MixedPointAdditionAffine(points []curve.G1Affine, firstIndex, secondIndex []int) ([]curve.G1Affine, error) {
	jacs, err := MixedPointAddition(points, firstIndex, secondIndex)
	if err != nil {
		return nil, err
	}
	return curve.BatchJacobianToAffineG1(jacs), nil
}

// BatchAffinePointAddition adds each index pair entirely in affine form,
// amortizing one field inversion across the whole batch. Every pair must
// have distinct x-coordinates.
func BatchAffinePointAddition(points []curve.G1Affine, firstIndex, secondIndex []int) ([]curve.G1Affine, error) {
	return msm.BatchAffinePointAddition[curve.G1Affine, fp.Element](fpOps{}, points, firstIndex, secondIndex)
}

// BatchAffinePointAdditionPar is BatchAffinePointAddition sharded across cfg
// tasks, one inversion per shard.
func BatchAffinePointAdditionPar(points []curve.G1Affine, firstIndex, secondIndex []int, cfg msm.Config) ([]curve.G1Affine, error) {
	return msm.BatchAffinePointAdditionPar[curve.G1Affine, fp.Element](fpOps{}, points, firstIndex, secondIndex, cfg)
}

// scalarWords converts field elements to canonical little-endian limbs, the
// form the kernel windows over. Montgomery form never reaches the kernel.
func scalarWords(scalars []fr.Element) []msm.Scalar {
	words := make([]msm.Scalar, len(scalars))
	for i := range scalars {
		b := scalars[i].Bytes()
		s := make(msm.Scalar, fr.Limbs)
		for j := 0; j < fr.Limbs; j++ {
			s[j] = binary.BigEndian.Uint64(b[len(b)-8*(j+1):])
		}
		words[i] = s
	}
	return words
}
