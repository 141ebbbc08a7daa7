package marshalutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordlab/bitword.go/bitword"
	"github.com/wordlab/bitword.go/marshalutil"
)

func TestWriteReadWord(t *testing.T) {
	util := marshalutil.New()
	util.WriteWord(0xDEADBEEFCAFEBABE)
	util.WriteBit(true)
	util.WriteBit(false)
	util.WriteWord(1)

	restored := marshalutil.New(util.Bytes())

	w, err := restored.ReadWord()
	require.NoError(t, err)
	require.Equal(t, bitword.Word(0xDEADBEEFCAFEBABE), w)

	bit, err := restored.ReadBit()
	require.NoError(t, err)
	require.True(t, bit)

	bit, err = restored.ReadBit()
	require.NoError(t, err)
	require.False(t, bit)

	w, err = restored.ReadWord()
	require.NoError(t, err)
	require.Equal(t, bitword.Word(1), w)
}

func TestReadBeyondCapacity(t *testing.T) {
	util := marshalutil.New([]byte{1, 2, 3})

	_, err := util.ReadWord()
	require.Error(t, err)

	_, err = util.ReadBytes(4)
	require.Error(t, err)
}

func TestWriteReadBytes(t *testing.T) {
	util := marshalutil.New()
	util.WriteBytes([]byte{0xCA, 0xFE}).WriteBytes(nil)

	require.Equal(t, []byte{0xCA, 0xFE}, util.Bytes())

	read, err := marshalutil.New(util.Bytes()).ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xCA, 0xFE}, read)
}

func TestSeek(t *testing.T) {
	util := marshalutil.New()
	util.WriteWord(42)

	require.Equal(t, marshalutil.WordBytes, util.WriteOffset())

	util.WriteSeek(0)
	util.WriteWord(43)

	restored := marshalutil.New(util.Bytes())
	w, err := restored.ReadWord()
	require.NoError(t, err)
	require.Equal(t, bitword.Word(43), w)
	require.Equal(t, marshalutil.WordBytes, restored.ReadOffset())
}
