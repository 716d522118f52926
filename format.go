package zbus

// Format selects the wire dialect a Context operates under. The deserializer
// shares one call tree between dialects and only ever branches through a
// Format's dialectTraits, never on Format directly inside container logic.
type Format int

const (
	// FormatDBus is the classic D-Bus message-body wire format.
	FormatDBus Format = iota
	// FormatGVariant is the GLib GVariant wire format.
	FormatGVariant
)

func (f Format) String() string {
	switch f {
	case FormatDBus:
		return "dbus"
	case FormatGVariant:
		return "gvariant"
	default:
		return "unknown"
	}
}

// dialectTraits holds the handful of framing decisions that differ between
// the D-Bus and GVariant wire dialects. Everything else in the decoder is
// shared.
type dialectTraits struct {
	// zeroPadding requires that padding bytes read back as 0.
	zeroPadding bool
	// trailingNUL requires a NUL terminator after string-family payloads.
	trailingNUL bool
}

var dialectsByFormat = [...]dialectTraits{
	FormatDBus:     {zeroPadding: true, trailingNUL: true},
	FormatGVariant: {zeroPadding: false, trailingNUL: false},
}

func (f Format) traits() dialectTraits {
	return dialectsByFormat[f]
}

// ByteOrder is the endianness a Context decodes multi-byte scalars with.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// Context carries the dialect, byte order, and absolute stream position that
// every alignment computation in the decoder depends on.
//
// abs_position is the offset, in the original stream, of byte 0 of the slice
// a Decoder was constructed over. It must never be merged with a Decoder's
// local pos: variant decoding rebases the slice but not the stream it came
// from, and conflating the two breaks alignment for the inner value.
type Context struct {
	Format      Format
	Order       ByteOrder
	AbsPosition uint64
}

// NewContext builds a Context for the given dialect, byte order, and the
// absolute offset of byte 0 of the slice that will be decoded.
func NewContext(format Format, order ByteOrder, absPosition uint64) Context {
	return Context{Format: format, Order: order, AbsPosition: absPosition}
}

// NewDBusContext is a shorthand for NewContext(FormatDBus, order, absPosition).
func NewDBusContext(order ByteOrder, absPosition uint64) Context {
	return NewContext(FormatDBus, order, absPosition)
}

func (c Context) traits() dialectTraits {
	return c.Format.traits()
}

// withPosition returns a copy of c rebased to a new absolute position, used
// when spawning a sub-Decoder over a sub-slice (array elements, dict-entry
// keys and values, variant values). Struct fields stay on the parent's
// context.
func (c Context) withPosition(absPosition uint64) Context {
	c.AbsPosition = absPosition
	return c
}
