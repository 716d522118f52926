package zbus

// alignmentFor returns the D-Bus/GVariant alignment, in bytes, for the basic
// type code c.
func alignmentFor(c byte) int {
	switch c {
	case TypeByte, TypeSignature:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeBool, TypeInt32, TypeUint32, TypeUnixFD, TypeArray:
		return 4
	case TypeInt64, TypeUint64, TypeDouble:
		return 8
	case TypeString, TypeObjectPath:
		return 4
	case TypeVariant:
		return 1
	case TypeStructOpen, TypeDictOpen:
		return 8
	default:
		return 1
	}
}

// alignmentForSignature returns the alignment of the complete type sig
// starts with: for composites this is the alignment of the leading code
// (array/struct/dict-entry), not of an inner element.
func alignmentForSignature(sig Signature) int {
	if len(sig) == 0 {
		return 1
	}
	return alignmentFor(sig[0])
}
