package marshalutil

// BitBytes contains the amount of bytes of a marshaled bit value.
const BitBytes = 1

// WriteBit writes a marshaled bit value to the internal buffer.
func (util *MarshalUtil) WriteBit(bit bool) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(BitBytes)

	if bit {
		util.bytes[util.writeOffset] = 1
	} else {
		util.bytes[util.writeOffset] = 0
	}

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadBit reads a bit value from the internal buffer.
func (util *MarshalUtil) ReadBit() (bool, error) {
	readEndOffset, err := util.checkReadCapacity(BitBytes)
	if err != nil {
		return false, err
	}

	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset] == 1, nil
}
