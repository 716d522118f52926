// Package zbus decodes values out of the D-Bus (and, by dialect switch,
// GVariant) binary wire format.
//
// A Decoder walks a signature string in lockstep with a byte slice: every
// typed read pads the stream to that type's alignment, decodes the value in
// the configured byte order, and advances the signature cursor by exactly
// one type. Containers (arrays, structs, dict-entries as maps, and variants)
// are small coordinators that spawn short-lived sub-Decoders sharing the
// same underlying slice but tracking their own local position and signature
// cursor.
//
// The following D-Bus types are supported directly:
//
//	Signature code | Go value produced
//	---------------+------------------
//	y              | byte
//	b              | bool
//	n              | int16
//	q              | uint16
//	i              | int32 (or a resolved file descriptor, see h)
//	u              | uint32
//	x              | int64
//	t              | uint64
//	d              | float64
//	s, o           | string
//	g              | zbus.Signature
//	h              | int (resolved against the Decoder's FD table)
//	v              | a nested Decoder, rebased to the value's own signature
//	a              | *ArrayDecoder (a seq, or a map when elements are {k v})
//	(...)          | *StructDecoder
//
// Consumers receive values by implementing Driver and calling
// Decoder.DecodeValue; see driver.go.
//
// This package only deserializes. The serializer, the dynamic Value/Variant
// tree, message framing, transport, and a standalone signature-grammar
// validator are out of scope.
package zbus
