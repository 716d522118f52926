package zbus

// ArrayDecoder coordinates reading one array (or, for dict-entry element
// signatures, one map) out of the parent Decoder. The array's declared byte
// length drives iteration, not an element count.
type ArrayDecoder struct {
	parent      *Decoder
	elemSig     Signature
	elemAlign   int
	start       int
	length      int
	isDictEntry bool
}

// BeginArray reads the array header: pads to 4, reads the u32 byte length,
// peeks the element signature, and pads to the element's alignment even for
// an empty array (payload alignment is mandatory regardless of length).
func (d *Decoder) BeginArray() (*ArrayDecoder, error) {
	if err := d.expect(TypeArray); err != nil {
		return nil, err
	}
	if err := d.pushDepth(); err != nil {
		return nil, err
	}
	if err := d.cursor.AdvanceOne(); err != nil {
		return nil, err
	}

	lb, err := d.nextConstSize(alignmentFor(TypeArray), 4)
	if err != nil {
		return nil, err
	}
	length := int(d.byteOrder().Uint32(lb))

	elemSig, err := d.cursor.NextCompleteSignature()
	if err != nil {
		return nil, err
	}
	elemAlign := alignmentForSignature(elemSig)

	if err := d.parsePadding(elemAlign); err != nil {
		return nil, err
	}
	start := d.pos

	isDictEntry := false
	if c, _ := d.cursor.Peek(); c == TypeDictOpen {
		isDictEntry = true
		if err := d.cursor.AdvanceOne(); err != nil {
			return nil, err
		}
	}

	if start+length > len(d.bytes) {
		return nil, &InvalidLengthError{Declared: length, Text: "array length runs past end of buffer"}
	}

	return &ArrayDecoder{
		parent:      d,
		elemSig:     elemSig,
		elemAlign:   elemAlign,
		start:       start,
		length:      length,
		isDictEntry: isDictEntry,
	}, nil
}

// Len returns the array's declared byte length (not an element count).
func (a *ArrayDecoder) Len() int { return a.length }

// ElementSignature returns the element (or dict-entry) sub-signature.
func (a *ArrayDecoder) ElementSignature() Signature { return a.elemSig }

// IsDictEntry reports whether this array's elements are dict-entries, i.e.
// whether NextEntry (rather than NextElement) must be used to iterate it.
func (a *ArrayDecoder) IsDictEntry() bool { return a.isDictEntry }

func (a *ArrayDecoder) done() bool {
	return a.parent.pos >= a.start+a.length
}

// NextElement runs fn against a fresh sub-Decoder for the next sequence
// element, iff one remains. It reports ok=false, with no error, once the
// array's declared bytes are exhausted, after resynchronizing the parent's
// signature cursor past the element signature.
func (a *ArrayDecoder) NextElement(fn func(*Decoder) error) (ok bool, err error) {
	if a.done() {
		return false, a.finish()
	}
	if err := a.parent.parsePadding(a.elemAlign); err != nil {
		return false, err
	}
	sub := a.spawn(NewCursor(a.elemSig))
	if err := fn(sub); err != nil {
		return false, err
	}
	if err := a.parent.absorb(sub, a.length, a.start+a.length); err != nil {
		return false, err
	}
	return true, nil
}

// NextEntry runs keyFn then valueFn against fresh sub-Decoders for the next
// dict entry's key and value, iff one remains. The value's sub-Decoder sees
// a cursor advanced one code past the key's, so a fresh clone of the same
// key+value signature can be reused for every entry.
func (a *ArrayDecoder) NextEntry(keyFn func(*Decoder) error, valueFn func(*Decoder) error) (ok bool, err error) {
	if !a.isDictEntry {
		return false, &MessageError{Text: "NextEntry called on a non-dict-entry array"}
	}
	if a.done() {
		return false, a.finish()
	}
	if err := a.parent.parsePadding(a.elemAlign); err != nil {
		return false, err
	}

	keyCursor := NewCursor(a.elemSig)
	if err := keyCursor.AdvanceOne(); err != nil { // skip the dict-entry's leading '{'
		return false, err
	}
	keySub := a.spawn(keyCursor)
	if err := keyFn(keySub); err != nil {
		return false, err
	}
	if err := a.parent.absorb(keySub, a.length, a.start+a.length); err != nil {
		return false, err
	}

	valueCursor := NewCursor(a.elemSig)
	if err := valueCursor.AdvanceN(2); err != nil { // skip '{' and the (single-char) key code
		return false, err
	}
	valueSub := a.spawn(valueCursor)
	if err := valueFn(valueSub); err != nil {
		return false, err
	}
	if err := a.parent.absorb(valueSub, a.length, a.start+a.length); err != nil {
		return false, err
	}

	return true, nil
}

func (a *ArrayDecoder) spawn(cursor Cursor) *Decoder {
	abs := a.parent.ctxt.AbsPosition + uint64(a.parent.pos)
	return a.parent.subDecoder(cursor, abs)
}

// finish resynchronizes the parent's signature cursor past the element (or
// dict-entry) signature once iteration is complete, then releases the
// depth budget BeginArray acquired.
func (a *ArrayDecoder) finish() error {
	defer a.parent.popDepth()
	n := len(a.elemSig)
	if a.isDictEntry {
		n--
	}
	return a.parent.cursor.AdvanceN(n)
}
