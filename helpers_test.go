package zbus

// StructValue is the recorder's representation of a decoded struct: its
// fields in order.
type StructValue []any

// VariantValue is the recorder's representation of a decoded variant: the
// inner signature plus its decoded value.
type VariantValue struct {
	Signature Signature
	Value     any
}

// recorder is a Driver that decodes a value into plain Go data (bool,
// byte, intN/uintN, float64, string, []any, map[any]any, StructValue,
// VariantValue) so tests can compare decoded output with reflect.DeepEqual
// or cmp.Diff without hand-writing a Driver per test.
type recorder struct {
	out any
}

func decodeAny(d *Decoder) (any, error) {
	r := &recorder{}
	if err := d.DecodeValue(r); err != nil {
		return nil, err
	}
	return r.out, nil
}

func (r *recorder) VisitBool(v bool) error       { r.out = v; return nil }
func (r *recorder) VisitByte(v byte) error       { r.out = v; return nil }
func (r *recorder) VisitInt16(v int16) error     { r.out = v; return nil }
func (r *recorder) VisitUint16(v uint16) error   { r.out = v; return nil }
func (r *recorder) VisitInt32(v int32) error     { r.out = v; return nil }
func (r *recorder) VisitUint32(v uint32) error   { r.out = v; return nil }
func (r *recorder) VisitInt64(v int64) error     { r.out = v; return nil }
func (r *recorder) VisitUint64(v uint64) error   { r.out = v; return nil }
func (r *recorder) VisitFloat64(v float64) error { r.out = v; return nil }
func (r *recorder) VisitString(v string) error   { r.out = v; return nil }
func (r *recorder) VisitObjectPath(v string) error {
	r.out = v
	return nil
}
func (r *recorder) VisitSignature(v Signature) error { r.out = v; return nil }
func (r *recorder) VisitUnixFD(v int) error          { r.out = v; return nil }

func (r *recorder) VisitArray(ad *ArrayDecoder) error {
	if ad.IsDictEntry() {
		m := map[any]any{}
		for {
			var key, value any
			ok, err := ad.NextEntry(
				func(kd *Decoder) error {
					v, err := decodeAny(kd)
					key = v
					return err
				},
				func(vd *Decoder) error {
					v, err := decodeAny(vd)
					value = v
					return err
				},
			)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			m[key] = value
		}
		r.out = m
		return nil
	}

	var seq []any
	for {
		var elem any
		ok, err := ad.NextElement(func(ed *Decoder) error {
			v, err := decodeAny(ed)
			elem = v
			return err
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		seq = append(seq, elem)
	}
	r.out = seq
	return nil
}

func (r *recorder) VisitStruct(sd *StructDecoder) error {
	var fields StructValue
	for {
		done, err := sd.Done()
		if err != nil {
			return err
		}
		if done {
			break
		}
		v, err := decodeAny(sd.Decoder())
		if err != nil {
			return err
		}
		fields = append(fields, v)
	}
	r.out = fields
	return nil
}

func (r *recorder) VisitVariant(inner *Decoder) error {
	v, err := decodeAny(inner)
	if err != nil {
		return err
	}
	r.out = VariantValue{Signature: inner.cursor.sig, Value: v}
	return nil
}

func le() Context {
	return NewDBusContext(LittleEndian, 0)
}

func be() Context {
	return NewDBusContext(BigEndian, 0)
}
