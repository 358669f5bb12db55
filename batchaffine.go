package msm

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/variablebase/go-msm/logger"
)

// minShardPairs keeps small batches on the serial path, where an extra
// inversion would cost more than the parallelism recovers.
const minShardPairs = 64

// BatchAffinePointAddition computes points[firstIndex[i]] +
// points[secondIndex[i]] for every index pair entirely in affine coordinates,
// amortizing a single field inversion over the whole batch with Montgomery's
// trick.
//
// Every pair must have distinct x-coordinates: doublings and identity
// operands are the caller's responsibility. A zero x-difference fails the
// whole batch with ErrNotInvertible rather than producing a wrong point.
func BatchAffinePointAddition[A, F any, O AffineOps[A, F]](o O, points []A, firstIndex, secondIndex []int) ([]A, error) {
	if err := validateIndexPairs(len(points), firstIndex, secondIndex); err != nil {
		return nil, err
	}
	return batchAffineAdd[A, F](o, points, firstIndex, secondIndex)
}

// BatchAffinePointAdditionPar shards the batch across cfg tasks, each shard
// paying its own inversion. Results match BatchAffinePointAddition exactly;
// the first failing shard reports its error.
func BatchAffinePointAdditionPar[A, F any, O AffineOps[A, F]](o O, points []A, firstIndex, secondIndex []int, cfg Config) ([]A, error) {
	if err := validateIndexPairs(len(points), firstIndex, secondIndex); err != nil {
		return nil, err
	}
	n := len(firstIndex)
	shards := cfg.tasks()
	if lim := n / minShardPairs; shards > lim {
		shards = lim
	}
	if shards <= 1 {
		return batchAffineAdd[A, F](o, points, firstIndex, secondIndex)
	}

	log := logger.Logger()
	log.Debug().Int("pairs", n).Int("shards", shards).Msg("batch affine add")

	out := make([]A, n)
	chunk := (n + shards - 1) / shards
	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			part, err := batchAffineAdd[A, F](o, points, firstIndex[lo:hi], secondIndex[lo:hi])
			if err != nil {
				return fmt.Errorf("pairs [%d:%d): %w", lo, hi, err)
			}
			copy(out[lo:hi], part)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// batchAffineAdd runs the Montgomery-trick addition over validated indices.
func batchAffineAdd[A, F any, O AffineOps[A, F]](o O, points []A, firstIndex, secondIndex []int) ([]A, error) {
	n := len(firstIndex)
	out := make([]A, n)
	if n == 0 {
		return out, nil
	}

	// a[i] = x2 - x1, the slope denominators.
	a := make([]F, n)
	for i := range a {
		o.Sub(&a[i], o.X(&points[secondIndex[i]]), o.X(&points[firstIndex[i]]))
		if o.IsZero(&a[i]) {
			return nil, fmt.Errorf("%w: pair %d (indices %d, %d)", ErrNotInvertible, i, firstIndex[i], secondIndex[i])
		}
	}

	// Prefix products d[i] = a[0]*...*a[i-1], one shared inversion, then
	// suffix products e[i] = 1/(a[i]*...*a[n-1]); d[i]*e[i] recovers 1/a[i].
	d := make([]F, n)
	o.SetOne(&d[0])
	for i := 1; i < n; i++ {
		o.Mul(&d[i], &d[i-1], &a[i-1])
	}
	var s F
	o.Mul(&s, &d[n-1], &a[n-1])
	o.Inverse(&s, &s)

	e := make([]F, n)
	e[n-1] = s
	for i := n - 2; i >= 0; i-- {
		o.Mul(&e[i], &e[i+1], &a[i+1])
	}

	var r, m, t, x3, y3 F
	for i := 0; i < n; i++ {
		p1 := &points[firstIndex[i]]
		p2 := &points[secondIndex[i]]
		o.Mul(&r, &d[i], &e[i])
		o.Sub(&m, o.Y(p2), o.Y(p1))
		o.Mul(&m, &m, &r)
		o.Mul(&x3, &m, &m)
		o.Sub(&x3, &x3, o.X(p1))
		o.Sub(&x3, &x3, o.X(p2))
		o.Sub(&t, o.X(p1), &x3)
		o.Mul(&y3, &m, &t)
		o.Sub(&y3, &y3, o.Y(p1))
		o.SetXY(&out[i], &x3, &y3)
	}
	return out, nil
}
