// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

// builtinEntry resolves one of the built-in type tags from spec §4.3
// without touching the custom registry's linear scan. Kind does not
// control how the argument is read (it documents which argument kind the
// C ancestor of this tag expected); our driver already knows the concrete
// Go type of every argument, so formatters here read straight from the
// resolved Value. The driver uses Kind only to pick the default alignment.
func builtinEntry(tag string) (registryEntry, bool) {
	switch tag {
	case "d", "lld", "zd":
		return registryEntry{tag: tag, kind: KindInt64, formatter: decimalSigned}, true
	case "u", "llu", "zu":
		return registryEntry{tag: tag, kind: KindUint64, formatter: decimalUnsigned}, true
	case "b", "llb", "zb":
		return registryEntry{tag: tag, kind: KindUint64, formatter: binaryUnsigned}, true
	case "o", "llo", "zo":
		return registryEntry{tag: tag, kind: KindUint64, formatter: octalUnsigned}, true
	case "x", "llx", "zx":
		return registryEntry{tag: tag, kind: KindUint64, formatter: hexLower}, true
	case "X", "llX", "zX":
		return registryEntry{tag: tag, kind: KindUint64, formatter: hexUpper}, true
	case "f":
		return registryEntry{tag: tag, kind: KindDouble, formatter: decimalFloat}, true
	case "F":
		return registryEntry{tag: tag, kind: KindDouble, formatter: decimalFloatUpper}, true
	case "s":
		return registryEntry{tag: tag, kind: KindPointer, formatter: stringFormatter}, true
	case "c":
		return registryEntry{tag: tag, kind: KindInt32, formatter: charFormatter}, true
	case "p":
		return registryEntry{tag: tag, kind: KindPointer, formatter: pointerFormatter}, true
	case "":
		return registryEntry{tag: tag, kind: KindNone, formatter: passThroughFormatter}, true
	}
	return registryEntry{}, false
}

func decimalSigned(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatInteger(buf, s.Value, 10, false, s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

func decimalUnsigned(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatInteger(buf, s.Value, 10, false, s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

func binaryUnsigned(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatInteger(buf, s.Value, 2, false, s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

func octalUnsigned(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatInteger(buf, s.Value, 8, false, s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

// hexLower implements the 'x' tag. The '!' flag still requests the
// upper-case alphabet ("{:!x}" -> "2A"), matching the generic UPPER flag
// rather than hard-coding the case the tag name suggests.
func hexLower(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	upper := s.Flags.has(FlagUpper)
	formatInteger(buf, s.Value, 16, upper, s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

func hexUpper(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatInteger(buf, s.Value, 16, true, s.Flags|FlagUpper, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

func decimalFloat(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatFloat(buf, s.Value.Float64(), s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align, false)
	return buf.Written() - before
}

func decimalFloatUpper(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatFloat(buf, s.Value.Float64(), s.Flags, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align, true)
	return buf.Written() - before
}

func charFormatter(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	formatChar(buf, s.Value, s.Width, s.WidthSet, s.Fill, s.Align)
	return buf.Written() - before
}

// stringFormatter formats the C-string/voidptr argument kind, which in
// this port is simply a Go string or []byte payload carried in the
// Value's borrowed slot, precision-truncated like spec's truncate rule.
func stringFormatter(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	text := stringBytes(s.Value.Any())
	if s.PrecSet && s.Precision < len(text) {
		text = text[:s.Precision]
	}
	if s.WidthSet && s.Width > 0 {
		writeAligned(buf, text, s.Width, s.Fill, s.Align)
	} else {
		buf.WriteBytes(text)
	}
	return buf.Written() - before
}

func stringBytes(a any) []byte {
	switch v := a.(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	default:
		return nil
	}
}

// pointerBits extracts an address-sized bit pattern for %p. This package
// deliberately never imports unsafe or reflect, so a real Go pointer
// value cannot be introspected here; callers that want to print an
// address pass it pre-converted as a uintptr (or any plain integer
// kind), exactly as a C caller would cast a pointer to a void* before
// handing it to printf.
func pointerBits(a any) uint64 {
	switch v := a.(type) {
	case uintptr:
		return uint64(v)
	case uint64:
		return v
	case uint:
		return uint64(v)
	case int64:
		return uint64(v)
	case int:
		return uint64(v)
	default:
		return 0
	}
}

// pointerFormatter implements %p: hex, lower-case, with the base prefix
// always forced on regardless of the ALT flag, per spec's built-in tag
// table ("p ... ALT forced").
func pointerFormatter(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	var addr uint64
	switch k := s.Value.Kind; {
	case k == KindPointer:
		addr = pointerBits(s.Value.Any())
	case k.signed():
		addr = uint64(s.Value.Int64())
	case k != KindDouble:
		addr = s.Value.Uint64()
	}
	v := Value{Kind: KindUint64, u64: addr}
	formatInteger(buf, v, 16, false, s.Flags|FlagAlt, s.Width, s.WidthSet, s.Precision, s.PrecSet, s.Fill, s.Align)
	return buf.Written() - before
}

// passThroughFormatter implements the empty type tag: a string or []byte
// value is written as-is, padded to the width; a value of any other kind
// is treated as empty text, so only the fill is written. The specifier
// still needs its argument to be loaded; without one nothing is emitted.
func passThroughFormatter(buf *OutputBuffer, s ResolvedSpec) int {
	before := buf.Written()
	text := stringBytes(s.Value.Any())
	if s.WidthSet && s.Width > 0 {
		writeAligned(buf, text, s.Width, s.Fill, s.Align)
	} else {
		buf.WriteBytes(text)
	}
	return buf.Written() - before
}
