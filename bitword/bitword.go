// Package bitword implements operations on a fixed-width 64-bit bit-vector.
//
// Bit positions are 1-based: index 1 addresses the least-significant bit,
// index WordSize the most-significant one. Indices outside [1, WordSize] are
// clamped to that range, so every operation is total.
package bitword

// Word is a fixed-width unsigned bit-vector of WordSize bits.
type Word uint64

// WordSize is the number of bits in a Word.
const WordSize = 64

// ShiftLeft shifts the word n positions towards the most-significant side.
// Shift counts of WordSize or more yield zero.
func (w Word) ShiftLeft(n uint) Word {
	if n >= WordSize {
		return 0
	}

	return w << n
}

// ShiftRight shifts the word n positions towards the least-significant side.
// Shift counts of WordSize or more yield zero.
func (w Word) ShiftRight(n uint) Word {
	if n >= WordSize {
		return 0
	}

	return w >> n
}

// And returns the bitwise conjunction of both words.
func (w Word) And(other Word) Word {
	return w & other
}

// Or returns the bitwise disjunction of both words.
func (w Word) Or(other Word) Word {
	return w | other
}

// Xor returns the bitwise exclusive disjunction of both words.
func (w Word) Xor(other Word) Word {
	return w ^ other
}

// Invert returns the word with every bit flipped.
func (w Word) Invert() Word {
	return ^w
}

// Mask returns a word with exactly one bit set, at the clamped position pos.
func Mask(pos int) Word {
	return Word(1).ShiftLeft(uint(clampPos(pos) - 1))
}

// SetBit sets the bit at the given position.
func (w Word) SetBit(pos int) Word {
	return w.Or(Mask(pos))
}

// ClearBit clears the bit at the given position.
func (w Word) ClearBit(pos int) Word {
	return w.And(Mask(pos).Invert())
}

// ToggleBit flips the bit at the given position.
func (w Word) ToggleBit(pos int) Word {
	return w.Xor(Mask(pos))
}

// ModifyBit sets or clears the bit at the given position, given the supplied state bool.
func (w Word) ModifyBit(pos int, state bool) Word {
	if state {
		return w.SetBit(pos)
	}

	return w.ClearBit(pos)
}

// HasBit checks whether the bit at the given position is set.
func (w Word) HasBit(pos int) bool {
	return w.And(Mask(pos)) != 0
}

// clampPos clamps a 1-based bit position into [1, WordSize].
func clampPos(pos int) int {
	if pos < 1 {
		return 1
	}
	if pos > WordSize {
		return WordSize
	}

	return pos
}

// clampWidth clamps a bit count into [0, WordSize].
func clampWidth(n uint) uint {
	if n > WordSize {
		return WordSize
	}

	return n
}
