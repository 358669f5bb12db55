// Package msm implements multi-scalar multiplication over an elliptic-curve
// group using Pippenger's bucket method, together with pairwise and batched
// affine point-addition routines.
//
// The kernel is generic: a curve backend plugs in through the GroupOps and
// AffineOps capability interfaces, implemented by stateless adapter structs in
// the per-curve subpackages (bn254, bls12381).
package msm

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/variablebase/go-msm/internal/parallel"
	"github.com/variablebase/go-msm/logger"
)

// MultiScalarMul computes sum_i scalars[i]*bases[i] over the first
// min(len(bases), len(scalars)) pairs. The truncation is silent; callers that
// need strict length equality must check it themselves.
//
// scalars are canonical-form limbs (see Scalar) and numBits is the scalar
// field's bit size. Pairs with a zero scalar are skipped before the window
// width is chosen, so the result is the group identity when no pair remains,
// including for empty input. A non-positive numBits tiles no windows and also
// yields the identity.
func MultiScalarMul[A, P any, G GroupOps[A, P]](g G, bases []A, scalars []Scalar, numBits int, cfg Config) P {
	size := min(len(bases), len(scalars))
	bases = bases[:size]
	scalars = scalars[:size]

	var res P
	g.SetInfinity(&res)

	nonZero := bitset.New(uint(size))
	for i := range scalars {
		if !scalars[i].IsZero() {
			nonZero.Set(uint(i))
		}
	}
	m := int(nonZero.Count())
	if m == 0 {
		return res
	}

	c := windowSize(m)
	starts := windowStarts(numBits, c)
	if len(starts) == 0 {
		return res
	}
	sums := make([]P, len(starts))

	log := logger.Logger()
	log.Debug().
		Int("size", size).
		Int("nonZero", m).
		Int("c", c).
		Int("windows", len(starts)).
		Int("tasks", cfg.tasks()).
		Msg("msm")

	parallel.Execute(len(starts), func(lo, hi int) {
		for w := lo; w < hi; w++ {
			sums[w] = windowSum[A, P](g, bases, scalars, nonZero, starts[w], c)
		}
	}, cfg.tasks())

	// Horner recombination: fold window sums from the highest window down to
	// the second-lowest, doubling c times after each, then add the lowest.
	var total P
	g.SetInfinity(&total)
	for w := len(sums) - 1; w >= 1; w-- {
		g.Add(&total, &sums[w])
		for j := 0; j < c; j++ {
			g.Double(&total)
		}
	}
	res = sums[0]
	g.Add(&res, &total)
	return res
}

// MultiScalarMulAffine is MultiScalarMul with the result converted to affine
// form.
func MultiScalarMulAffine[A, P any, G GroupOps[A, P]](g G, bases []A, scalars []Scalar, numBits int, cfg Config) A {
	res := MultiScalarMul[A, P](g, bases, scalars, numBits, cfg)
	var out A
	g.ToAffine(&out, &res)
	return out
}

// windowSum accumulates the buckets of one window over the non-zero pairs and
// reduces them to a single sum.
func windowSum[A, P any, G GroupOps[A, P]](g G, bases []A, scalars []Scalar, nonZero *bitset.BitSet, wStart, c int) P {
	var res P
	g.SetInfinity(&res)

	buckets := make([]P, (1<<uint(c))-1)
	for k := range buckets {
		g.SetInfinity(&buckets[k])
	}

	for i, ok := nonZero.NextSet(0); ok; i, ok = nonZero.NextSet(i + 1) {
		s := scalars[i]
		if s.IsOne() {
			// A scalar of 1 contributes its base once, in the lowest
			// window; every higher window would extract digit 0.
			if wStart == 0 {
				g.AddMixed(&res, &bases[i])
			}
			continue
		}
		d := s.digit(uint(wStart), uint(c))
		if d != 0 {
			g.AddMixed(&buckets[d-1], &bases[i])
		}
	}

	// buckets[k] holds the sum of bases whose digit is k+1. Adding the
	// running suffix sum once per bucket yields sum_k (k+1)*buckets[k] in
	// 2*(2^c-1) additions.
	var running P
	g.SetInfinity(&running)
	for k := len(buckets) - 1; k >= 0; k-- {
		g.Add(&running, &buckets[k])
		g.Add(&res, &running)
	}
	return res
}
