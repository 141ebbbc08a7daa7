package bitword

import "fmt"

// ParseBinaryString parses a word from a textual binary representation,
// scanning left to right with the first recognized character ending up
// towards the most-significant side. Characters other than '0' and '1' are
// skipped. If the text holds more than WordSize recognized characters, the
// earliest ones overflow out of the word.
func ParseBinaryString(text string) (Word, error) {
	if len(text) == 0 {
		return 0, ErrEmptyInput
	}

	var w Word
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0':
			w = w.AppendRight(false)
		case '1':
			w = w.AppendRight(true)
		}
	}

	return w, nil
}

// ParseBinaryStringLSB parses a word like ParseBinaryString and reverses the
// result, so for a full-width text the first recognized character is bit 1.
// Characters other than '0' and '1' are skipped.
func ParseBinaryStringLSB(text string) (Word, error) {
	w, err := ParseBinaryString(text)
	if err != nil {
		return 0, err
	}

	return w.Reverse(), nil
}

// BinaryString renders the word as a WordSize-character string of '0' and '1'
// characters, most-significant bit first.
func (w Word) BinaryString() string {
	var buf [WordSize]byte

	for i := WordSize - 1; i >= 0; i-- {
		var bit bool
		bit, w = w.ConsumeRight()
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf[:])
}

// BinaryStringLSB renders the word as a WordSize-character string of '0' and
// '1' characters, least-significant bit first.
func (w Word) BinaryStringLSB() string {
	return w.Reverse().BinaryString()
}

// String renders the word as a zero-padded, 0x-prefixed hexadecimal literal
// with WordSize/4 uppercase digits.
func (w Word) String() string {
	return fmt.Sprintf("0x%016X", uint64(w))
}
