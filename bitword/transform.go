package bitword

import "math/bits"

// Reverse mirrors the bit order of the word, so the bit at position i moves to
// position WordSize+1-i.
func (w Word) Reverse() Word {
	return Word(bits.Reverse64(uint64(w)))
}

// RotateLeft circularly shifts the word n positions towards the
// most-significant side. The n bits pushed off the high end reappear at the
// low end. Rotation counts wrap modulo WordSize.
func (w Word) RotateLeft(n uint) Word {
	n %= WordSize
	if n == 0 {
		return w
	}

	return w.AppendBitsRight(w.Section(WordSize-int(n)+1, WordSize), n)
}

// RotateRight circularly shifts the word n positions towards the
// least-significant side. The n bits pushed off the low end reappear at the
// high end. Rotation counts wrap modulo WordSize.
func (w Word) RotateRight(n uint) Word {
	n %= WordSize
	if n == 0 {
		return w
	}

	return w.AppendBitsLeft(w.Section(1, int(n)), n)
}
