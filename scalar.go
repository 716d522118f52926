package zbus

import "math"

// DecodeByte reads a single unaligned byte (y).
func (d *Decoder) DecodeByte() (byte, error) {
	if err := d.expect(TypeByte); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeByte), 1)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return b[0], nil
}

// DecodeBool reads a boolean, wire-encoded as a u32 that must be 0 or 1 (b).
func (d *Decoder) DecodeBool() (bool, error) {
	if err := d.expect(TypeBool); err != nil {
		return false, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeBool), 4)
	if err != nil {
		return false, err
	}
	v := d.byteOrder().Uint32(b)
	switch v {
	case 0:
		_ = d.cursor.AdvanceOne()
		return false, nil
	case 1:
		_ = d.cursor.AdvanceOne()
		return true, nil
	default:
		return false, &InvalidValueError{Text: "bool must be 0 or 1"}
	}
}

// DecodeInt16 reads an int16 (n).
func (d *Decoder) DecodeInt16() (int16, error) {
	if err := d.expect(TypeInt16); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeInt16), 2)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return int16(d.byteOrder().Uint16(b)), nil
}

// DecodeUint16 reads a uint16 (q).
func (d *Decoder) DecodeUint16() (uint16, error) {
	if err := d.expect(TypeUint16); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeUint16), 2)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return d.byteOrder().Uint16(b), nil
}

// DecodeInt32 reads an int32 (i), or resolves a file-descriptor index (h) if
// that's what the signature cursor is currently pointed at.
func (d *Decoder) DecodeInt32() (int32, error) {
	c, err := d.cursor.Peek()
	if err != nil {
		return 0, err
	}
	if c == TypeUnixFD {
		fd, err := d.DecodeUnixFD()
		return int32(fd), err
	}
	if c != TypeInt32 {
		return 0, &InvalidTypeError{Found: c, Expected: "i"}
	}
	b, err := d.nextConstSize(alignmentFor(TypeInt32), 4)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return int32(d.byteOrder().Uint32(b)), nil
}

// DecodeUint32 reads a uint32 (u).
func (d *Decoder) DecodeUint32() (uint32, error) {
	if err := d.expect(TypeUint32); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeUint32), 4)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return d.byteOrder().Uint32(b), nil
}

// DecodeUnixFD reads a u32 fd index (h) and resolves it against the FD
// table supplied to the Decoder.
func (d *Decoder) DecodeUnixFD() (int, error) {
	if err := d.expect(TypeUnixFD); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeUnixFD), 4)
	if err != nil {
		return 0, err
	}
	idx := d.byteOrder().Uint32(b)
	fd, err := d.resolveFd(idx)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return fd, nil
}

// DecodeInt64 reads an int64 (x).
func (d *Decoder) DecodeInt64() (int64, error) {
	if err := d.expect(TypeInt64); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeInt64), 8)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return int64(d.byteOrder().Uint64(b)), nil
}

// DecodeUint64 reads a uint64 (t).
func (d *Decoder) DecodeUint64() (uint64, error) {
	if err := d.expect(TypeUint64); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeUint64), 8)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	return d.byteOrder().Uint64(b), nil
}

// DecodeFloat64 reads a double (d).
func (d *Decoder) DecodeFloat64() (float64, error) {
	if err := d.expect(TypeDouble); err != nil {
		return 0, err
	}
	b, err := d.nextConstSize(alignmentFor(TypeDouble), 8)
	if err != nil {
		return 0, err
	}
	_ = d.cursor.AdvanceOne()
	bits := d.byteOrder().Uint64(b)
	return math.Float64frombits(bits), nil
}

// DecodeFloat32 reads the wire's double (D-Bus has no single-precision type)
// and narrows it to a float32. The narrowing is a lossy truncation by cast,
// by design; there is no error path for precision loss.
func (d *Decoder) DecodeFloat32() (float32, error) {
	v, err := d.DecodeFloat64()
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// expect errors with InvalidTypeError if the cursor isn't positioned at
// code c.
func (d *Decoder) expect(code byte) error {
	c, err := d.cursor.Peek()
	if err != nil {
		return err
	}
	if c != code {
		return &InvalidTypeError{Found: c, Expected: string(code)}
	}
	return nil
}
