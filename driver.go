package zbus

// Driver is the visitor contract typed consumers implement to receive
// decoded values out of a Decoder. DecodeValue peeks the signature code
// under the cursor and invokes exactly one Driver method, failing with
// InvalidTypeError if the peeked code has no corresponding method at all
// (every code maps to exactly one method below, so this only happens for a
// malformed signature).
//
// For VisitArray, the driver must drain the ArrayDecoder to exhaustion
// (call NextElement, or NextEntry for a dict-entry array, until it reports
// ok=false) so the outer signature cursor gets resynchronized past the
// element signature. For VisitStruct and VisitVariant, DecodeValue itself
// finishes the container once the driver returns successfully.
type Driver interface {
	VisitBool(v bool) error
	VisitByte(v byte) error
	VisitInt16(v int16) error
	VisitUint16(v uint16) error
	VisitInt32(v int32) error
	VisitUint32(v uint32) error
	VisitInt64(v int64) error
	VisitUint64(v uint64) error
	VisitFloat64(v float64) error
	VisitString(v string) error
	VisitObjectPath(v string) error
	VisitSignature(v Signature) error
	VisitUnixFD(v int) error
	VisitArray(ad *ArrayDecoder) error
	VisitStruct(sd *StructDecoder) error
	VisitVariant(inner *Decoder) error
}

// DecodeValue peeks the next signature code and dispatches to exactly one
// Driver method, advancing the cursor and position by exactly as much as
// that value's encoding occupies.
func (d *Decoder) DecodeValue(drv Driver) error {
	c, err := d.cursor.Peek()
	if err != nil {
		return err
	}
	switch c {
	case TypeBool:
		v, err := d.DecodeBool()
		if err != nil {
			return err
		}
		return drv.VisitBool(v)
	case TypeByte:
		v, err := d.DecodeByte()
		if err != nil {
			return err
		}
		return drv.VisitByte(v)
	case TypeInt16:
		v, err := d.DecodeInt16()
		if err != nil {
			return err
		}
		return drv.VisitInt16(v)
	case TypeUint16:
		v, err := d.DecodeUint16()
		if err != nil {
			return err
		}
		return drv.VisitUint16(v)
	case TypeInt32:
		v, err := d.DecodeInt32()
		if err != nil {
			return err
		}
		return drv.VisitInt32(v)
	case TypeUint32:
		v, err := d.DecodeUint32()
		if err != nil {
			return err
		}
		return drv.VisitUint32(v)
	case TypeUnixFD:
		v, err := d.DecodeUnixFD()
		if err != nil {
			return err
		}
		return drv.VisitUnixFD(v)
	case TypeInt64:
		v, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		return drv.VisitInt64(v)
	case TypeUint64:
		v, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		return drv.VisitUint64(v)
	case TypeDouble:
		v, err := d.DecodeFloat64()
		if err != nil {
			return err
		}
		return drv.VisitFloat64(v)
	case TypeString:
		v, err := d.DecodeString()
		if err != nil {
			return err
		}
		return drv.VisitString(v)
	case TypeObjectPath:
		v, err := d.DecodeString()
		if err != nil {
			return err
		}
		return drv.VisitObjectPath(v)
	case TypeSignature:
		v, err := d.DecodeSignatureString()
		if err != nil {
			return err
		}
		return drv.VisitSignature(v)
	case TypeArray:
		ad, err := d.BeginArray()
		if err != nil {
			return err
		}
		return drv.VisitArray(ad)
	case TypeStructOpen:
		sd, err := d.BeginStruct()
		if err != nil {
			return err
		}
		if err := drv.VisitStruct(sd); err != nil {
			return err
		}
		done, err := sd.Done()
		if err != nil {
			return err
		}
		if !done {
			return &MessageError{Text: "struct driver did not consume every field"}
		}
		return sd.Finish()
	case TypeVariant:
		inner, err := d.BeginVariant()
		if err != nil {
			return err
		}
		if err := drv.VisitVariant(inner); err != nil {
			return err
		}
		return d.FinishVariant(inner)
	default:
		return &InvalidTypeError{Found: c, Expected: "a valid signature type code"}
	}
}
