package zbus

import "strings"

// Type codes from the D-Bus/GVariant signature alphabet.
const (
	TypeByte       = 'y'
	TypeBool       = 'b'
	TypeInt16      = 'n'
	TypeUint16     = 'q'
	TypeInt32      = 'i'
	TypeUint32     = 'u'
	TypeInt64      = 'x'
	TypeUint64     = 't'
	TypeDouble     = 'd'
	TypeString     = 's'
	TypeObjectPath = 'o'
	TypeSignature  = 'g'
	TypeUnixFD     = 'h'
	TypeVariant    = 'v'
	TypeArray      = 'a'
	TypeStructOpen = '('
	TypeStructEnd  = ')'
	TypeDictOpen   = '{'
	TypeDictEnd    = '}'
)

func isBasicCode(c byte) bool {
	switch c {
	case TypeByte, TypeBool, TypeInt16, TypeUint16, TypeInt32, TypeUint32,
		TypeInt64, TypeUint64, TypeDouble, TypeString, TypeObjectPath,
		TypeSignature, TypeUnixFD:
		return true
	}
	return false
}

// Signature is a validated D-Bus/GVariant type signature string.
type Signature string

// NewSignature validates s against the D-Bus/GVariant type grammar: balanced
// "()" and "{}", "{" only directly after "a", and every "{" holding exactly
// two complete type codes (a basic key, then one arbitrary value) before its
// closing "}". It performs only the structural checks the cursor itself
// depends on; a full standalone grammar validator is out of scope.
func NewSignature(s string) (Signature, error) {
	if err := validateSignature(s); err != nil {
		return "", err
	}
	return Signature(s), nil
}

func validateSignature(s string) error {
	i := 0
	for i < len(s) {
		n, err := spanOneType(s, i)
		if err != nil {
			return err
		}
		i += n
	}
	return nil
}

// spanOneType returns the length, in bytes, of the single complete type
// starting at s[i]: a basic code, 'v', 'h', or a composite "a...", "(...)",
// "{...}". It does not allocate and does not mutate any cursor state.
func spanOneType(s string, i int) (int, error) {
	if i >= len(s) {
		return 0, ErrInvalidSignature
	}
	switch c := s[i]; c {
	case TypeArray:
		if i+1 >= len(s) {
			return 0, ErrInvalidSignature
		}
		n, err := spanOneType(s, i+1)
		if err != nil {
			return 0, err
		}
		return 1 + n, nil
	case TypeStructOpen:
		j := i + 1
		for j < len(s) && s[j] != TypeStructEnd {
			n, err := spanOneType(s, j)
			if err != nil {
				return 0, err
			}
			j += n
		}
		if j >= len(s) {
			return 0, ErrInvalidSignature
		}
		return j - i + 1, nil
	case TypeDictOpen:
		if i == 0 || s[i-1] != TypeArray {
			return 0, ErrInvalidSignature
		}
		j := i + 1
		if j >= len(s) || !isBasicCode(s[j]) {
			return 0, ErrInvalidSignature
		}
		j++
		n, err := spanOneType(s, j)
		if err != nil {
			return 0, err
		}
		j += n
		if j >= len(s) || s[j] != TypeDictEnd {
			return 0, ErrInvalidSignature
		}
		return j - i + 1, nil
	case TypeStructEnd, TypeDictEnd:
		return 0, ErrInvalidSignature
	case TypeVariant:
		return 1, nil
	default:
		if isBasicCode(c) {
			return 1, nil
		}
		return 0, ErrInvalidSignature
	}
}

// Cursor walks a Signature one type code (or one complete composite type) at
// a time. It is cheap to Clone: containers that must re-parse an element or
// dict-entry signature per iteration clone the cursor rather than save and
// restore an offset.
type Cursor struct {
	sig    Signature
	offset int
}

// NewCursor returns a Cursor positioned at the start of sig.
func NewCursor(sig Signature) Cursor {
	return Cursor{sig: sig}
}

// Done reports whether the cursor has consumed the whole signature.
func (c Cursor) Done() bool {
	return c.offset >= len(c.sig)
}

// Peek returns the type code at the cursor without advancing it.
func (c Cursor) Peek() (byte, error) {
	if c.Done() {
		return 0, ErrEof
	}
	return c.sig[c.offset], nil
}

// AdvanceOne moves the cursor past exactly one type code.
func (c *Cursor) AdvanceOne() error {
	if c.Done() {
		return ErrEof
	}
	c.offset++
	return nil
}

// AdvanceN moves the cursor past k code units, used to resynchronize after a
// container finishes without structurally re-walking it.
func (c *Cursor) AdvanceN(k int) error {
	if c.offset+k > len(c.sig) {
		return ErrEof
	}
	c.offset += k
	return nil
}

// NextCompleteSignature returns the sub-signature starting at the cursor and
// spanning exactly one complete type, without advancing the cursor. The
// caller decides whether to AdvanceN past it or delegate to a sub-decoder.
func (c Cursor) NextCompleteSignature() (Signature, error) {
	n, err := spanOneType(string(c.sig), c.offset)
	if err != nil {
		return "", err
	}
	return c.sig[c.offset : c.offset+n], nil
}

// Clone returns an independent copy of c; advancing the clone never affects
// the original.
func (c Cursor) Clone() Cursor {
	return Cursor{sig: c.sig, offset: c.offset}
}

// String renders the remaining, unconsumed portion of the signature.
func (c Cursor) String() string {
	return string(c.sig[c.offset:])
}

// Remaining returns the unconsumed portion of the signature with surrounding
// whitespace trimmed; it is empty once the cursor has consumed the whole
// signature.
func (c Cursor) Remaining() string {
	return strings.TrimSpace(string(c.sig[c.offset:]))
}
