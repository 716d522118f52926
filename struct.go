package zbus

// StructDecoder reads a struct "(...)" in place: unlike arrays, it shares
// the enclosing Decoder's cursor and position directly rather than spawning
// sub-Decoders per field, because a struct's fields are a flat sequence
// within one already-aligned region.
type StructDecoder struct {
	parent *Decoder
}

// BeginStruct pads to the struct's alignment (8) and consumes the opening
// '('.
func (d *Decoder) BeginStruct() (*StructDecoder, error) {
	if err := d.expect(TypeStructOpen); err != nil {
		return nil, err
	}
	if err := d.pushDepth(); err != nil {
		return nil, err
	}
	sig, err := d.cursor.NextCompleteSignature()
	if err != nil {
		return nil, err
	}
	if err := d.parsePadding(alignmentForSignature(sig)); err != nil {
		return nil, err
	}
	if err := d.cursor.AdvanceOne(); err != nil {
		return nil, err
	}
	return &StructDecoder{parent: d}, nil
}

// Decoder exposes the parent Decoder so callers can deserialize the next
// field in sequence using the same cursor and position.
func (s *StructDecoder) Decoder() *Decoder { return s.parent }

// Done reports whether the cursor is now positioned at the struct's closing
// ')'.
func (s *StructDecoder) Done() (bool, error) {
	c, err := s.parent.cursor.Peek()
	if err != nil {
		return false, err
	}
	return c == TypeStructEnd, nil
}

// Finish consumes the closing ')'. Callers must only call it once Done
// reports true.
func (s *StructDecoder) Finish() error {
	defer s.parent.popDepth()
	return s.parent.cursor.AdvanceOne()
}
