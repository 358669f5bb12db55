package msm

import "fmt"

// MixedPointAddition computes points[firstIndex[i]] + points[secondIndex[i]]
// for every index pair, each pair independently as one affine-to-projective
// promotion followed by one mixed addition.
func MixedPointAddition[A, P any, G GroupOps[A, P]](g G, points []A, firstIndex, secondIndex []int) ([]P, error) {
	if err := validateIndexPairs(len(points), firstIndex, secondIndex); err != nil {
		return nil, err
	}
	results := make([]P, len(firstIndex))
	for i := range firstIndex {
		g.FromAffine(&results[i], &points[firstIndex[i]])
		g.AddMixed(&results[i], &points[secondIndex[i]])
	}
	return results, nil
}

// validateIndexPairs checks the index preconditions shared by the pairwise
// and batched adders.
func validateIndexPairs(numPoints int, firstIndex, secondIndex []int) error {
	if len(firstIndex) != len(secondIndex) {
		return fmt.Errorf("%w: %d vs %d", ErrIndexLengthMismatch, len(firstIndex), len(secondIndex))
	}
	for pos, idx := range firstIndex {
		if idx < 0 || idx >= numPoints {
			return fmt.Errorf("%w: firstIndex[%d] = %d with %d points", ErrIndexOutOfRange, pos, idx, numPoints)
		}
	}
	for pos, idx := range secondIndex {
		if idx < 0 || idx >= numPoints {
			return fmt.Errorf("%w: secondIndex[%d] = %d with %d points", ErrIndexOutOfRange, pos, idx, numPoints)
		}
	}
	return nil
}
