package zbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSig(t *testing.T, s string) Signature {
	t.Helper()
	sig, err := NewSignature(s)
	require.NoError(t, err)
	return sig
}

func TestDecodeByte(t *testing.T) {
	d := NewDecoder([]byte{0x2A}, nil, mustSig(t, "y"), le())
	v, err := d.DecodeByte()
	require.NoError(t, err)
	assert.Equal(t, byte(42), v)
	assert.Equal(t, 1, d.Pos())
}

func TestDecodeString(t *testing.T) {
	buf := []byte{0x05, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o', 0x00}
	d := NewDecoder(buf, nil, mustSig(t, "s"), le())
	v, err := d.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.Equal(t, 10, d.Pos())
}

func TestDecodeBoolThenString(t *testing.T) {
	buf := []byte{
		0x01, 0, 0, 0, // true
		0x05, 0, 0, 0, 'h', 'e', 'l', 'l', 'o', 0, // "hello"
	}
	d := NewDecoder(buf, nil, mustSig(t, "bs"), le())

	b, err := d.DecodeBool()
	require.NoError(t, err)
	assert.True(t, b)

	s, err := d.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestDecodeArrayOfInt32(t *testing.T) {
	buf := []byte{
		0x08, 0, 0, 0, // byte length
		0x01, 0, 0, 0,
		0x02, 0, 0, 0,
	}
	d := NewDecoder(buf, nil, mustSig(t, "ai"), le())
	ad, err := d.BeginArray()
	require.NoError(t, err)

	var got []int32
	for {
		var v int32
		ok, err := ad.NextElement(func(ed *Decoder) error {
			var err error
			v, err = ed.DecodeInt32()
			return err
		})
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int32{1, 2}, got)
	assert.Equal(t, 12, d.Pos())
}

func TestDecodeBoolInvalidValue(t *testing.T) {
	d := NewDecoder([]byte{0x02, 0, 0, 0}, nil, mustSig(t, "b"), le())
	_, err := d.DecodeBool()
	var iv *InvalidValueError
	require.ErrorAs(t, err, &iv)
}

func TestDecodeStructPaddingMustBeZero(t *testing.T) {
	// (yi): 1 byte + 3 padding + int32.
	buf := []byte{0x01, 0, 0, 0, 0x05, 0, 0, 0}
	d := NewDecoder(buf, nil, mustSig(t, "(yi)"), le())
	sd, err := d.BeginStruct()
	require.NoError(t, err)
	b, err := sd.Decoder().DecodeByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
	i, err := sd.Decoder().DecodeInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(5), i)
	done, err := sd.Done()
	require.NoError(t, err)
	assert.True(t, done)
	require.NoError(t, sd.Finish())
}

func TestDecodeStructNonZeroPaddingFails(t *testing.T) {
	buf := []byte{0x01, 0xFF, 0, 0, 0x05, 0, 0, 0}
	d := NewDecoder(buf, nil, mustSig(t, "(yi)"), le())
	sd, err := d.BeginStruct()
	require.NoError(t, err)
	_, err = sd.Decoder().DecodeByte()
	require.NoError(t, err)
	_, err = sd.Decoder().DecodeInt32()
	var pe *PaddingNot0Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, byte(0xFF), pe.Byte)
}

func TestDecodeFloat64(t *testing.T) {
	buf := []byte{
		0x41, 0xE9, 0x5A, 0x5F,
		0x02, 0x80, 0x00, 0x00,
	}
	d := NewDecoder(buf, nil, mustSig(t, "d"), be())
	f, err := d.DecodeFloat64()
	require.NoError(t, err)
	assert.InDelta(t, 3402823700.0, f, 1)
}

func TestDecodeFloat32Narrowing(t *testing.T) {
	// D-Bus has no single-precision type: the wire value is a double and
	// the narrowing to float32 is a lossy truncation by cast.
	buf := []byte{
		0x41, 0xE9, 0x5A, 0x5F,
		0x02, 0x80, 0x00, 0x00,
	}
	d := NewDecoder(buf, nil, mustSig(t, "d"), be())
	f32, err := d.DecodeFloat32()
	require.NoError(t, err)
	assert.InDelta(t, float32(3402823700.0), f32, 1)
}

func TestByteOrderSymmetry(t *testing.T) {
	leBuf := []byte{0x39, 0x40, 0x41, 0x42}
	d := NewDecoder(leBuf, nil, mustSig(t, "i"), le())
	gotLE, err := d.DecodeInt32()
	require.NoError(t, err)

	beBuf := []byte{leBuf[3], leBuf[2], leBuf[1], leBuf[0]}
	d2 := NewDecoder(beBuf, nil, mustSig(t, "i"), be())
	gotBE, err := d2.DecodeInt32()
	require.NoError(t, err)

	assert.Equal(t, gotLE, gotBE)
}
