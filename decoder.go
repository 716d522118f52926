package zbus

import "encoding/binary"

// maxContainerDepth bounds variant-in-variant (and struct/array-in-variant)
// nesting. The signature grammar itself is non-recursive: a variant is the
// only way to embed arbitrary types, and it carries its own signature, so
// nothing here needs cycle detection, only a cap against an adversarial
// chain of nested variants. 64 matches the depth limit the sibling encoder
// already enforces for slices/maps/structs.
const maxContainerDepth = 64

// Decoder reads one value out of bytes, following sig in lockstep. A Decoder
// is single-use: it produces one top-level value, spawning short-lived
// sub-Decoders (sharing the same byte slice, each with an independent local
// pos) for array elements, dict-entry keys and values, and variants. Struct
// fields are read directly on the enclosing Decoder.
type Decoder struct {
	ctxt   Context
	cursor Cursor
	bytes  []byte
	fds    []int
	pos    int
	depth  int
}

// NewDecoder builds a Decoder over bytes, following sig, in the given
// context. fds may be nil if the message carries no file descriptors.
func NewDecoder(bytes []byte, fds []int, sig Signature, ctxt Context) *Decoder {
	return &Decoder{
		ctxt:   ctxt,
		cursor: NewCursor(sig),
		bytes:  bytes,
		fds:    fds,
	}
}

// Pos reports the number of bytes this Decoder has consumed so far.
func (d *Decoder) Pos() int { return d.pos }

// Finish asserts that the Decoder has consumed every byte of its slice.
// Decoding a value on its own ignores trailing input after it; Finish lets a
// caller opt into strict framing instead.
func (d *Decoder) Finish() error {
	if d.pos != len(d.bytes) {
		return ErrTrailingBytes
	}
	return nil
}

func (d *Decoder) byteOrder() binary.ByteOrder {
	if d.ctxt.Order == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// parsePadding pads pos up to align. In dialects that require zero padding,
// any non-zero byte aborts with PaddingNot0Error.
func (d *Decoder) parsePadding(align int) error {
	abs := d.ctxt.AbsPosition + uint64(d.pos)
	need := int((-int64(abs)) % int64(align))
	if need < 0 {
		need += align
	}
	if need == 0 {
		return nil
	}
	buf, err := d.nextSlice(need)
	if err != nil {
		return err
	}
	if d.ctxt.traits().zeroPadding {
		for i, b := range buf {
			if b != 0 {
				return &PaddingNot0Error{Byte: b, Offset: d.pos - need + i}
			}
		}
	}
	return nil
}

// nextSlice returns bytes[pos:pos+n] and advances pos, failing with ErrEof
// if that would run past the end of the slice.
func (d *Decoder) nextSlice(n int) ([]byte, error) {
	if d.pos+n > len(d.bytes) {
		return nil, ErrEof
	}
	s := d.bytes[d.pos : d.pos+n]
	d.pos += n
	return s, nil
}

// nextConstSize pads to align, then reads exactly size bytes.
func (d *Decoder) nextConstSize(align, size int) ([]byte, error) {
	if err := d.parsePadding(align); err != nil {
		return nil, err
	}
	return d.nextSlice(size)
}

// pushDepth increments the container-nesting counter, failing once the cap
// set in maxContainerDepth is exceeded.
func (d *Decoder) pushDepth() error {
	d.depth++
	if d.depth > maxContainerDepth {
		return ErrDepthExceeded
	}
	return nil
}

func (d *Decoder) popDepth() {
	d.depth--
}

// subDecoder spawns a sub-Decoder over the remaining bytes, sharing fds and
// depth but starting at local pos 0 with an independently-advanceable
// cursor and a context rebased to absPosition. Used by arrays, dict-entry
// values, and variants.
func (d *Decoder) subDecoder(cursor Cursor, absPosition uint64) *Decoder {
	return &Decoder{
		ctxt:   d.ctxt.withPosition(absPosition),
		cursor: cursor,
		bytes:  d.bytes[d.pos:],
		fds:    d.fds,
		depth:  d.depth,
	}
}

// absorb folds a sub-Decoder's consumed bytes back into d.pos, after it was
// spawned via subDecoder. Returns an error if doing so would run the parent
// past declaredEnd (an array's start+length, or len(bytes) when there is no
// declared limit).
func (d *Decoder) absorb(sub *Decoder, declaredLen int, declaredEnd int) error {
	d.pos += sub.pos
	if declaredEnd >= 0 && d.pos > declaredEnd {
		return &InvalidLengthError{Declared: declaredLen, Text: "element overran declared array length"}
	}
	return nil
}
