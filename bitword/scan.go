package bitword

import "math/bits"

// FirstSetBit returns the 1-based position of the lowest set bit, or 0 if the
// word is zero.
func (w Word) FirstSetBit() int {
	if w == 0 {
		return 0
	}

	return bits.TrailingZeros64(uint64(w)) + 1
}

// HighestSetBit returns the 1-based position of the highest set bit, or 0 if
// the word is zero.
func (w Word) HighestSetBit() int {
	return bits.Len64(uint64(w))
}

// OnesCount returns the number of set bits (the population count).
func (w Word) OnesCount() int {
	return bits.OnesCount64(uint64(w))
}

// EvenParityBit returns the bit that, appended to the word, makes the total
// number of set bits even.
func (w Word) EvenParityBit() bool {
	return w.OnesCount()%2 == 1
}
