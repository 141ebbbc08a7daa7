package marshalutil

import (
	"encoding/binary"

	"github.com/wordlab/bitword.go/bitword"
)

// WordBytes contains the amount of bytes of a marshaled bitword.Word value.
const WordBytes = bitword.WordSize / 8

// WriteWord writes a marshaled Word value to the internal buffer.
func (util *MarshalUtil) WriteWord(w bitword.Word) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(WordBytes)

	binary.LittleEndian.PutUint64(util.bytes[util.writeOffset:writeEndOffset], uint64(w))

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadWord reads a Word value from the internal buffer.
func (util *MarshalUtil) ReadWord() (bitword.Word, error) {
	readEndOffset, err := util.checkReadCapacity(WordBytes)
	if err != nil {
		return 0, err
	}

	defer util.ReadSeek(readEndOffset)

	return bitword.Word(binary.LittleEndian.Uint64(util.bytes[util.readOffset:readEndOffset])), nil
}
