// Package marshalutil offers a buffer for serializing bitword values and
// related primitives into a byte stream and reading them back.
package marshalutil

import (
	"github.com/cockroachdb/errors"
)

// MarshalUtil wraps a byte buffer with independent read and write offsets.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates a new MarshalUtil. Without arguments it starts with an empty
// write buffer; an int argument preallocates that many bytes; a []byte
// argument wraps the given bytes for reading.
func New(args ...interface{}) *MarshalUtil {
	switch argsCount := len(args); argsCount {
	case 0:
		return &MarshalUtil{
			bytes: make([]byte, 0, WordBytes),
		}
	case 1:
		switch param := args[0].(type) {
		case int:
			return &MarshalUtil{
				bytes: make([]byte, param),
				size:  param,
			}
		case []byte:
			return &MarshalUtil{
				bytes: param,
				size:  len(param),
			}
		default:
			panic(errors.Errorf("illegal argument type %T in marshalutil.New(...)", param))
		}
	default:
		panic(errors.Errorf("illegal argument count %d in marshalutil.New(...)", argsCount))
	}
}

// WriteSeek sets the write offset. Negative values seek relative to the
// current offset.
func (util *MarshalUtil) WriteSeek(offset int) {
	if offset < 0 {
		util.writeOffset += offset
	} else {
		util.writeOffset = offset
	}
}

// ReadSeek sets the read offset. Negative values seek relative to the current
// offset.
func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		util.readOffset += offset
	} else {
		util.readOffset = offset
	}
}

// ReadOffset returns the current read offset.
func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

// WriteOffset returns the current write offset.
func (util *MarshalUtil) WriteOffset() int {
	return util.writeOffset
}

// Bytes returns the written part of the underlying buffer.
func (util *MarshalUtil) Bytes() []byte {
	return util.bytes[:util.size]
}

func (util *MarshalUtil) checkReadCapacity(length int) (readEndOffset int, err error) {
	readEndOffset = util.readOffset + length

	if readEndOffset > util.size {
		err = errors.Errorf("tried to read %d bytes from %d bytes input", readEndOffset, util.size)
	}

	return
}

func (util *MarshalUtil) expandWriteCapacity(length int) (writeEndOffset int) {
	writeEndOffset = util.writeOffset + length

	if writeEndOffset > util.size {
		extendedBytes := make([]byte, writeEndOffset-util.size)
		util.bytes = append(util.bytes, extendedBytes...)
		util.size = writeEndOffset
	}

	return
}
