package bitword_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordlab/bitword.go/bitword"
)

func TestParseBinaryString(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bitword.Word
	}{
		{"simple", "101", 0b101},
		{"withSeparators", "1010 1010", 0b10101010},
		{"ignoredCharacters", "x1y0_1,1", 0b1011},
		{"noBinaryDigits", "hello", 0},
		{"fullWidth", strings.Repeat("1", bitword.WordSize), 0xFFFFFFFFFFFFFFFF},
		{"overflowDropsEarliestBits", "1" + strings.Repeat("0", bitword.WordSize), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := bitword.ParseBinaryString(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.expected, w)
		})
	}
}

func TestParseBinaryStringEmpty(t *testing.T) {
	_, err := bitword.ParseBinaryString("")
	require.ErrorIs(t, err, bitword.ErrEmptyInput)

	_, err = bitword.ParseBinaryStringLSB("")
	require.ErrorIs(t, err, bitword.ErrEmptyInput)
}

func TestParseBinaryStringLSB(t *testing.T) {
	// short strings reverse across the whole word
	w, err := bitword.ParseBinaryStringLSB("101")
	require.NoError(t, err)
	require.Equal(t, bitword.Word(0b101).Reverse(), w)

	// for full-width strings the first character is bit 1
	text := "1" + strings.Repeat("0", bitword.WordSize-1)
	w, err = bitword.ParseBinaryStringLSB(text)
	require.NoError(t, err)
	require.EqualValues(t, 1, w)
}

func TestBinaryString(t *testing.T) {
	require.Equal(t, strings.Repeat("0", 63)+"1", bitword.Word(1).BinaryString())
	require.Equal(t, "1"+strings.Repeat("0", 63), bitword.Word(0x8000000000000000).BinaryString())
	require.Equal(t, strings.Repeat("1", 64), bitword.Word(0xFFFFFFFFFFFFFFFF).BinaryString())

	require.Equal(t, "1"+strings.Repeat("0", 63), bitword.Word(1).BinaryStringLSB())
}

func TestBinaryStringRoundTrip(t *testing.T) {
	for _, w := range sampleWords {
		parsed, err := bitword.ParseBinaryString(w.BinaryString())
		require.NoError(t, err)
		require.Equal(t, w, parsed)

		parsed, err = bitword.ParseBinaryStringLSB(w.BinaryStringLSB())
		require.NoError(t, err)
		require.Equal(t, w, parsed)
	}
}

func TestHexString(t *testing.T) {
	require.Equal(t, "0x0000000000000000", bitword.Word(0).String())
	require.Equal(t, "0x000000000000000F", bitword.Word(15).String())
	require.Equal(t, "0xDEADBEEFCAFEBABE", bitword.Word(0xDEADBEEFCAFEBABE).String())
	require.Equal(t, "0xFFFFFFFFFFFFFFFF", bitword.Word(0xFFFFFFFFFFFFFFFF).String())
}
