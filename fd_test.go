package zbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUnixFDResolvesAgainstTable(t *testing.T) {
	buf := []byte{0x01, 0, 0, 0} // fd index 1
	fds := []int{10, 11, 12}
	d := NewDecoder(buf, fds, mustSig(t, "h"), le())

	fd, err := d.DecodeUnixFD()
	require.NoError(t, err)
	assert.Equal(t, 11, fd)
}

func TestDecodeUnixFDOutOfRange(t *testing.T) {
	buf := []byte{0x05, 0, 0, 0} // fd index 5, table only has 2 entries
	fds := []int{10, 11}
	d := NewDecoder(buf, fds, mustSig(t, "h"), le())

	_, err := d.DecodeUnixFD()
	var ue *UnknownFdError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, uint32(5), ue.Index)
	assert.ErrorIs(t, err, ErrUnknownFd)
}

func TestDecodeUnixFDNoTable(t *testing.T) {
	buf := []byte{0x00, 0, 0, 0}
	d := NewDecoder(buf, nil, mustSig(t, "h"), le())

	_, err := d.DecodeUnixFD()
	var ue *UnknownFdError
	require.ErrorAs(t, err, &ue)
}

func TestDecodeInt32SubstitutesUnixFD(t *testing.T) {
	// DecodeInt32 resolves through the fd table when the signature cursor
	// is positioned at 'h' rather than 'i'.
	buf := []byte{0x00, 0, 0, 0} // fd index 0
	fds := []int{42}
	d := NewDecoder(buf, fds, mustSig(t, "h"), le())

	v, err := d.DecodeInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}
