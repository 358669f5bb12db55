package msm

import "math/bits"

// windowSize returns the window width c in bits for a multi-exponentiation
// over size non-trivial terms. The bucket method costs roughly
// size + numWindows*2^c group additions; c ~ log2(size)*ln(2) + 2 balances
// bucket count against recombination doublings, computed in integer
// arithmetic only (69/100 stands in for ln 2).
func windowSize(size int) int {
	if size < 32 {
		return 3
	}
	return log2(size)*69/100 + 2
}

// log2 returns the base-2 logarithm of v, exact for powers of two and
// rounded up otherwise. v must be positive.
func log2(v int) int {
	if v&(v-1) == 0 {
		return bits.Len(uint(v)) - 1
	}
	return bits.Len(uint(v))
}

// windowStarts tiles [0, numBits) with stride c and returns each window's
// start bit, lowest window first. Bits past numBits read as zero, so the top
// window needs no narrowing.
func windowStarts(numBits, c int) []int {
	starts := make([]int, 0, (numBits+c-1)/c)
	for w := 0; w < numBits; w += c {
		starts = append(starts, w)
	}
	return starts
}
