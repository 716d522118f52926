// Package wiretest builds D-Bus wire bytes by reflecting over a plain Go
// value, adapted from the reflection-driven encoder that ships alongside
// the decoder this package's sibling zbus.Decoder is modeled on. It exists
// only to build round-trip test fixtures without hand-assembling every
// padding byte by hand; it is not part of the public decoding surface.
package wiretest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
)

const maxDepth = 64

// Encoder appends values to an in-memory buffer in the D-Bus wire format,
// tracking position so it can compute alignment padding the same way the
// decoder does.
type Encoder struct {
	out   *bytes.Buffer
	order binary.ByteOrder
	pos   int
}

// New returns an Encoder that writes multi-byte scalars in order.
func New(order binary.ByteOrder) *Encoder {
	return &Encoder{out: new(bytes.Buffer), order: order}
}

// Bytes returns the bytes written so far.
func (e *Encoder) Bytes() []byte { return e.out.Bytes() }

// Pos returns the number of bytes written so far.
func (e *Encoder) Pos() int { return e.pos }

func (e *Encoder) align(n int) {
	if e.pos%n != 0 {
		newpos := (e.pos + n - 1) &^ (n - 1)
		e.out.Write(make([]byte, newpos-e.pos))
		e.pos = newpos
	}
}

func (e *Encoder) binwrite(v interface{}) {
	if err := binary.Write(e.out, e.order, v); err != nil {
		panic(err)
	}
}

// alignment mirrors the D-Bus alignment table for the Go kinds this
// encoder supports.
func alignment(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Uint8:
		return 1
	case reflect.Bool, reflect.Int32, reflect.Uint32, reflect.Slice, reflect.Array, reflect.Map:
		return 4
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	case reflect.String:
		return 4
	case reflect.Struct:
		return 8
	case reflect.Ptr:
		return alignment(t.Elem())
	default:
		return 1
	}
}

// Encode appends v's D-Bus wire encoding, padding as needed. It panics on
// unsupported Go kinds or container depth beyond maxDepth, since this is
// test-fixture plumbing rather than a production encoder.
func (e *Encoder) Encode(v interface{}) {
	e.encode(reflect.ValueOf(v), 0)
}

func (e *Encoder) encode(v reflect.Value, depth int) {
	e.align(alignment(v.Type()))
	switch v.Kind() {
	case reflect.Uint8:
		e.out.WriteByte(byte(v.Uint()))
		e.pos++
	case reflect.Bool:
		var b uint32
		if v.Bool() {
			b = 1
		}
		e.encode(reflect.ValueOf(b), depth)
	case reflect.Int16:
		e.binwrite(int16(v.Int()))
		e.pos += 2
	case reflect.Uint16:
		e.binwrite(uint16(v.Uint()))
		e.pos += 2
	case reflect.Int32:
		e.binwrite(int32(v.Int()))
		e.pos += 4
	case reflect.Uint32:
		e.binwrite(uint32(v.Uint()))
		e.pos += 4
	case reflect.Int64:
		e.binwrite(v.Int())
		e.pos += 8
	case reflect.Uint64:
		e.binwrite(v.Uint())
		e.pos += 8
	case reflect.Float64:
		e.binwrite(v.Float())
		e.pos += 8
	case reflect.String:
		e.encode(reflect.ValueOf(uint32(v.Len())), depth)
		e.out.WriteString(v.String())
		e.out.WriteByte(0)
		e.pos += v.Len() + 1
	case reflect.Ptr:
		e.encode(v.Elem(), depth)
	case reflect.Slice, reflect.Array:
		if depth >= maxDepth {
			panic(fmt.Errorf("wiretest: input exceeds container depth limit"))
		}
		var buf bytes.Buffer
		inner := &Encoder{out: &buf, order: e.order}
		for i := 0; i < v.Len(); i++ {
			inner.encode(v.Index(i), depth+1)
		}
		e.encode(reflect.ValueOf(uint32(buf.Len())), depth)
		e.align(alignment(v.Type().Elem()))
		e.out.Write(buf.Bytes())
		e.pos += buf.Len()
	case reflect.Struct:
		if depth >= maxDepth {
			panic(fmt.Errorf("wiretest: input exceeds container depth limit"))
		}
		for i := 0; i < v.NumField(); i++ {
			e.encode(v.Field(i), depth+1)
		}
	case reflect.Map:
		if depth >= maxDepth-1 {
			panic(fmt.Errorf("wiretest: input exceeds container depth limit"))
		}
		keys := v.MapKeys()
		var buf bytes.Buffer
		inner := &Encoder{out: &buf, order: e.order}
		for _, k := range keys {
			inner.align(8)
			inner.encode(k, depth+2)
			inner.encode(v.MapIndex(k), depth+2)
		}
		e.encode(reflect.ValueOf(uint32(buf.Len())), depth)
		e.align(8)
		e.out.Write(buf.Bytes())
		e.pos += buf.Len()
	default:
		panic(fmt.Errorf("wiretest: unsupported kind %s", v.Kind()))
	}
}
