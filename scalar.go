package msm

import "math/big"

// Scalar is a scalar-field element in canonical (non-Montgomery) form, as
// little-endian 64-bit limbs. Limbs past len(s) read as zero, so a Scalar may
// be shorter than the field's full limb count. Scalars are never mutated by
// the kernel.
type Scalar []uint64

// ScalarFromBigInt converts a non-negative big integer into canonical limbs.
func ScalarFromBigInt(v *big.Int) Scalar {
	b := v.Bytes()
	s := make(Scalar, (len(b)+7)/8)
	for i := range b {
		pos := len(b) - 1 - i // b[i] is the pos-th byte from the little end
		s[pos/8] |= uint64(b[i]) << (8 * uint(pos%8))
	}
	return s
}

// IsZero reports whether s is zero. The empty Scalar is zero.
func (s Scalar) IsZero() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether s is the multiplicative identity.
func (s Scalar) IsOne() bool {
	if len(s) == 0 || s[0] != 1 {
		return false
	}
	for _, w := range s[1:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// word returns the lowest limb of s >> bit. Offsets at or past the top of s
// read as zero.
func (s Scalar) word(bit uint) uint64 {
	i := bit / 64
	if i >= uint(len(s)) {
		return 0
	}
	off := bit % 64
	w := s[i] >> off
	if off != 0 && i+1 < uint(len(s)) {
		w |= s[i+1] << (64 - off)
	}
	return w
}

// digit extracts the c-bit window digit starting at bit wStart, a value in
// [0, 2^c-1]. c must be at most 64; the planner never exceeds that for any
// realizable input size.
func (s Scalar) digit(wStart, c uint) uint64 {
	return s.word(wStart) & ((1 << c) - 1)
}
