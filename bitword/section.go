package bitword

// FilterLeft retains only the n most-significant bits, all lower bits are zeroed.
func (w Word) FilterLeft(n uint) Word {
	shift := WordSize - clampWidth(n)

	return w.ShiftRight(shift).ShiftLeft(shift)
}

// FilterRight retains only the n least-significant bits, all higher bits are zeroed.
func (w Word) FilterRight(n uint) Word {
	shift := WordSize - clampWidth(n)

	return w.ShiftLeft(shift).ShiftRight(shift)
}

// FilterSection retains only the bits within the inclusive position range [from, to],
// the rest is zeroed. An inverted range (from > to) yields zero.
func (w Word) FilterSection(from, to int) Word {
	return w.FilterRight(uint(clampPos(to))).FilterLeft(uint(WordSize - clampPos(from) + 1))
}

// FilterSectionExcluded returns the bitwise complement of FilterSection.
func (w Word) FilterSectionExcluded(from, to int) Word {
	return w.FilterSection(from, to).Invert()
}

// Section extracts the bits within the inclusive position range [from, to] and
// right-aligns them, so the extracted range starts at position 1.
func (w Word) Section(from, to int) Word {
	return w.FilterSection(from, to).ShiftRight(uint(clampPos(from) - 1))
}

// AppendLeft shifts the word one position to the right and splices the given
// bit into the vacated most-significant slot.
func (w Word) AppendLeft(bit bool) Word {
	shifted := w.ShiftRight(1)
	if bit {
		return shifted.Or(Mask(WordSize))
	}

	return shifted
}

// AppendRight shifts the word one position to the left and splices the given
// bit into the vacated least-significant slot.
func (w Word) AppendRight(bit bool) Word {
	shifted := w.ShiftLeft(1)
	if bit {
		return shifted.Or(Mask(1))
	}

	return shifted
}

// AppendBitsLeft shifts the word n positions to the right and splices the n
// least-significant bits of source into the vacated most-significant slots.
func (w Word) AppendBitsLeft(source Word, n uint) Word {
	n = clampWidth(n)

	return w.ShiftRight(n).Or(source.FilterRight(n).ShiftLeft(WordSize - n))
}

// AppendBitsRight shifts the word n positions to the left and splices the n
// least-significant bits of source into the vacated least-significant slots.
func (w Word) AppendBitsRight(source Word, n uint) Word {
	n = clampWidth(n)

	return w.ShiftLeft(n).Or(source.FilterRight(n))
}

// ConsumeLeft reads the most-significant bit and returns it together with the
// word shifted one position to the left.
func (w Word) ConsumeLeft() (bool, Word) {
	return w.HasBit(WordSize), w.ShiftLeft(1)
}

// ConsumeRight reads the least-significant bit and returns it together with
// the word shifted one position to the right.
func (w Word) ConsumeRight() (bool, Word) {
	return w.HasBit(1), w.ShiftRight(1)
}
