package msm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// modField implements the field capability over Z_q with synthetic points.
// The batch adder's product bookkeeping is pure field algebra, so a small
// prime field pins it down, with per-pair inversions as the oracle.
type modField struct{}

const modQ = 2147483647 // 2^31 - 1

type modPoint struct{ x, y uint64 }

func subQ(x, y uint64) uint64 { return (x + modQ - y) % modQ }
func mulQ(x, y uint64) uint64 { return x * y % modQ }

func powQ(b, e uint64) uint64 {
	r := uint64(1)
	b %= modQ
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulQ(r, b)
		}
		b = mulQ(b, b)
	}
	return r
}

func invQ(x uint64) uint64 { return powQ(x, modQ-2) }

func (modField) SetOne(z *uint64)      { *z = 1 }
func (modField) Sub(z, x, y *uint64)   { *z = subQ(*x, *y) }
func (modField) Mul(z, x, y *uint64)   { *z = mulQ(*x, *y) }
func (modField) Inverse(z, x *uint64)  { *z = invQ(*x) }
func (modField) IsZero(x *uint64) bool { return *x == 0 }

func (modField) X(a *modPoint) *uint64 { return &a.x }
func (modField) Y(a *modPoint) *uint64 { return &a.y }
func (modField) SetXY(a *modPoint, x, y *uint64) {
	a.x, a.y = *x, *y
}

// countingField counts inversions to pin the amortization down.
type countingField struct {
	modField
	inversions *int
}

func (c countingField) Inverse(z, x *uint64) {
	*c.inversions++
	c.modField.Inverse(z, x)
}

var (
	_ AffineOps[modPoint, uint64] = modField{}
	_ AffineOps[modPoint, uint64] = countingField{}
)

// chordAdd recomputes one pair with a direct per-pair inversion.
func chordAdd(p1, p2 modPoint) modPoint {
	m := mulQ(subQ(p2.y, p1.y), invQ(subQ(p2.x, p1.x)))
	x3 := subQ(subQ(mulQ(m, m), p1.x), p2.x)
	y3 := subQ(mulQ(m, subQ(p1.x, x3)), p1.y)
	return modPoint{x3, y3}
}

// testPairs builds n index pairs over 64 points with pairwise-distinct x.
func testPairs(n int) ([]modPoint, []int, []int) {
	points := make([]modPoint, 64)
	for i := range points {
		points[i] = modPoint{x: uint64(i + 1), y: uint64(i)*31 + 5}
	}
	first := make([]int, n)
	second := make([]int, n)
	for i := 0; i < n; i++ {
		first[i] = (i * 7) % 64
		second[i] = (i*7 + 13) % 64
	}
	return points, first, second
}

func TestBatchAffinePointAddition(t *testing.T) {
	points, first, second := testPairs(200)

	out, err := BatchAffinePointAddition[modPoint, uint64](modField{}, points, first, second)
	require.NoError(t, err)
	require.Len(t, out, len(first))
	for i := range first {
		require.Equal(t, chordAdd(points[first[i]], points[second[i]]), out[i], "pair %d", i)
	}
}

func TestBatchAffinePointAdditionSingleInversion(t *testing.T) {
	points, first, second := testPairs(150)
	inversions := 0
	out, err := BatchAffinePointAddition[modPoint, uint64](countingField{inversions: &inversions}, points, first, second)
	require.NoError(t, err)
	require.Len(t, out, 150)
	require.Equal(t, 1, inversions)
}

func TestBatchAffinePointAdditionErrors(t *testing.T) {
	points := []modPoint{{x: 4, y: 1}, {x: 4, y: 9}, {x: 6, y: 2}}

	// Coinciding x-coordinates.
	_, err := BatchAffinePointAddition[modPoint, uint64](modField{}, points, []int{0}, []int{1})
	require.ErrorIs(t, err, ErrNotInvertible)

	// Doubling attempt: a point paired with itself.
	_, err = BatchAffinePointAddition[modPoint, uint64](modField{}, points, []int{2}, []int{2})
	require.ErrorIs(t, err, ErrNotInvertible)

	_, err = BatchAffinePointAddition[modPoint, uint64](modField{}, points, []int{0}, []int{1, 2})
	require.ErrorIs(t, err, ErrIndexLengthMismatch)

	_, err = BatchAffinePointAddition[modPoint, uint64](modField{}, points, []int{5}, []int{0})
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = BatchAffinePointAddition[modPoint, uint64](modField{}, points, []int{-2}, []int{0})
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	out, err := BatchAffinePointAddition[modPoint, uint64](modField{}, points, nil, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestBatchAffinePointAdditionParMatchesSerial(t *testing.T) {
	points, first, second := testPairs(1000)

	serial, err := BatchAffinePointAddition[modPoint, uint64](modField{}, points, first, second)
	require.NoError(t, err)

	for _, tasks := range []int{1, 2, 4, 16} {
		par, err := BatchAffinePointAdditionPar[modPoint, uint64](modField{}, points, first, second, Config{NbTasks: tasks})
		require.NoError(t, err)
		require.Equal(t, serial, par, "tasks=%d", tasks)
	}
}

func TestBatchAffinePointAdditionParShardError(t *testing.T) {
	points, first, second := testPairs(1000)
	// Poison a pair deep in the batch with a zero x-difference.
	first[700] = 3
	second[700] = 3

	_, err := BatchAffinePointAdditionPar[modPoint, uint64](modField{}, points, first, second, Config{NbTasks: 4})
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestBatchAffinePointAdditionParSmallStaysSerial(t *testing.T) {
	points, first, second := testPairs(16)
	inversions := 0
	out, err := BatchAffinePointAdditionPar[modPoint, uint64](countingField{inversions: &inversions}, points, first, second, Config{NbTasks: 8})
	require.NoError(t, err)
	require.Len(t, out, 16)
	require.Equal(t, 1, inversions)
}
