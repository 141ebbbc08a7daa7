// Package wordio renders bitword values to a stream in binary or hexadecimal
// form.
package wordio

import (
	"io"

	"github.com/wordlab/bitword.go/bitword"
)

// Printer writes textual renderings of words to an underlying writer.
type Printer struct {
	writer       io.Writer
	groupNibbles bool
	lsbFirst     bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithNibbleGrouping makes binary output grouped into 4-bit clusters separated
// by spaces.
func WithNibbleGrouping() Option {
	return func(p *Printer) {
		p.groupNibbles = true
	}
}

// WithLSBFirst makes binary output start with the least-significant bit.
func WithLSBFirst() Option {
	return func(p *Printer) {
		p.lsbFirst = true
	}
}

// NewPrinter creates a new Printer writing to the given writer.
func NewPrinter(writer io.Writer, opts ...Option) *Printer {
	p := &Printer{writer: writer}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PrintBinary writes the binary rendering of the word followed by a newline.
func (p *Printer) PrintBinary(w bitword.Word) error {
	text := w.BinaryString()
	if p.lsbFirst {
		text = w.BinaryStringLSB()
	}

	if p.groupNibbles {
		text = groupNibbles(text)
	}

	_, err := io.WriteString(p.writer, text+"\n")

	return err
}

// PrintHex writes the hexadecimal rendering of the word followed by a newline.
func (p *Printer) PrintHex(w bitword.Word) error {
	_, err := io.WriteString(p.writer, w.String()+"\n")

	return err
}

// FprintBinary writes the binary rendering of the word to the given writer.
func FprintBinary(writer io.Writer, w bitword.Word, opts ...Option) error {
	return NewPrinter(writer, opts...).PrintBinary(w)
}

// FprintHex writes the hexadecimal rendering of the word to the given writer.
func FprintHex(writer io.Writer, w bitword.Word) error {
	return NewPrinter(writer).PrintHex(w)
}

func groupNibbles(text string) string {
	grouped := make([]byte, 0, len(text)+len(text)/4)
	for i := 0; i < len(text); i++ {
		if i > 0 && i%4 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, text[i])
	}

	return string(grouped)
}
