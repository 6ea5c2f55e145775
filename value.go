// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

// Kind discriminates how a Value's payload is interpreted. It is the
// closed tag set from spec's Argument Kind data model.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindSize
	KindDouble
	KindPointer
)

func (k Kind) signed() bool {
	switch k {
	case KindInt32, KindInt64, KindSize:
		return true
	}
	return false
}

// numeric reports whether k is one of the numeric argument kinds, used
// by the driver to pick the default alignment (spec §9: numeric verbs
// default to padding before the text; everything else, after).
func (k Kind) numeric() bool {
	switch k {
	case KindInt32, KindUint32, KindInt64, KindUint64, KindSize, KindDouble:
		return true
	}
	return false
}

// Value is the tagged container the driver populates from an ArgCursor
// and a formatter reads from. Integers are stored sign-extended in i64
// (signed kinds) or zero-extended in u64 (unsigned kinds); exactly one of
// i64/u64/f64/any is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	i64  int64
	u64  uint64
	f64  float64
	any  any
}

// Int64 returns the value as a signed 64-bit integer. Valid for signed
// integer kinds.
func (v Value) Int64() int64 { return v.i64 }

// Uint64 returns the value as an unsigned 64-bit integer. Valid for
// unsigned integer kinds.
func (v Value) Uint64() uint64 { return v.u64 }

// Float64 returns the value as a double. Valid for KindDouble.
func (v Value) Float64() float64 { return v.f64 }

// Any returns the borrowed payload for KindPointer (a string, a []byte,
// or an arbitrary value handed to a custom-registered formatter). Per
// spec, the borrow's lifetime is the format call; formatters must not
// retain it.
func (v Value) Any() any { return v.any }

// AsInt reads v as a plain int regardless of its Kind, for the width/
// precision argument forms ("*N"), which are declared int-typed
// independent of the verb they're attached to.
func (v Value) AsInt() int {
	switch {
	case v.Kind.signed():
		return int(v.i64)
	case v.Kind == KindDouble:
		return int(v.f64)
	default:
		return int(v.u64)
	}
}

func intValue(kind Kind, i int64) Value  { return Value{Kind: kind, i64: i} }
func uintValue(kind Kind, u uint64) Value { return Value{Kind: kind, u64: u} }
func floatValue(f float64) Value          { return Value{Kind: KindDouble, f64: f} }
func ptrValue(a any) Value                { return Value{Kind: KindPointer, any: a} }

// ArgCursor is the opaque, forward-only argument source the driver reads
// from. Spec treats "the mechanism by which the caller obtains a variadic
// argument list" as external; ArgCursor is the seam that lets a caller
// supply any backing store (a plain slice, a ring buffer over registers,
// a generated adapter) as long as it can only be advanced, never rewound.
type ArgCursor interface {
	// Next returns the next argument and advances the cursor. ok is false
	// once the cursor is exhausted.
	Next() (Value, bool)
}

// SliceCursor is the default ArgCursor, backing the common case of a
// caller-built []any argument list. It infers each Value's Kind from the
// Go dynamic type of the corresponding element, which is the idiomatic
// Go stand-in for spec's "kind determined by the first specifier
// referencing it": the kind is simply the argument's own dynamic type.
type SliceCursor struct {
	args []any
	pos  int
}

// NewSliceCursor builds an ArgCursor over args.
func NewSliceCursor(args ...any) *SliceCursor {
	return &SliceCursor{args: args}
}

// Next implements ArgCursor.
func (c *SliceCursor) Next() (Value, bool) {
	if c.pos >= len(c.args) {
		return Value{}, false
	}
	v := valueOf(c.args[c.pos])
	c.pos++
	return v, true
}

// Len reports the total number of arguments the cursor was built with.
// The driver does not call it; it reads only through ArgCursor.Next.
func (c *SliceCursor) Len() int { return len(c.args) }

func valueOf(a any) Value {
	switch x := a.(type) {
	case int:
		return intValue(KindSize, int64(x))
	case int8:
		return intValue(KindInt32, int64(x))
	case int16:
		return intValue(KindInt32, int64(x))
	case int32:
		return intValue(KindInt32, int64(x))
	case int64:
		return intValue(KindInt64, x)
	case uint:
		return uintValue(KindUint64, uint64(x))
	case uint8:
		return uintValue(KindUint32, uint64(x))
	case uint16:
		return uintValue(KindUint32, uint64(x))
	case uint32:
		return uintValue(KindUint32, uint64(x))
	case uint64:
		return uintValue(KindUint64, x)
	case uintptr:
		return ptrValue(x)
	case float32:
		return floatValue(float64(x))
	case float64:
		return floatValue(x)
	case string:
		return ptrValue(x)
	case []byte:
		return ptrValue(x)
	default:
		return ptrValue(a)
	}
}
