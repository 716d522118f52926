package zbus

// BeginVariant decodes a variant's inline signature (a 'g'-shaped string:
// u8 length, bytes, trailing NUL where the dialect requires one) and
// returns a fresh sub-Decoder, rebased to the value's absolute position, so
// that nested alignment computations stay correct even though the value
// starts partway through the outer slice.
func (d *Decoder) BeginVariant() (*Decoder, error) {
	if err := d.expect(TypeVariant); err != nil {
		return nil, err
	}
	if err := d.pushDepth(); err != nil {
		return nil, err
	}
	sig, err := d.readInlineSignature()
	if err != nil {
		return nil, err
	}
	abs := d.ctxt.AbsPosition + uint64(d.pos)
	return d.subDecoder(NewCursor(sig), abs), nil
}

// FinishVariant folds the inner sub-Decoder's consumed bytes back into d and
// advances d's cursor past the 'v'. sub must be the Decoder BeginVariant
// returned.
func (d *Decoder) FinishVariant(sub *Decoder) error {
	defer d.popDepth()
	d.pos += sub.pos
	return d.cursor.AdvanceOne()
}

func (d *Decoder) readInlineSignature() (Signature, error) {
	lb, err := d.nextSlice(1)
	if err != nil {
		return "", err
	}
	length := int(lb[0])
	s, err := d.readStringBody(length)
	if err != nil {
		return "", err
	}
	return NewSignature(s)
}
