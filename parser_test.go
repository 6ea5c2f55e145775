// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

import "testing"

func TestParseSpecifierImplicitIndex(t *testing.T) {
	implicit := 0
	ps, pos := parseSpecifier([]byte(":d}"), 0, &implicit)
	if !ps.valid || ps.valueIndex != 0 || ps.tagString() != "d" {
		t.Fatalf("parseSpecifier = %+v, pos=%d", ps, pos)
	}
	if implicit != 1 {
		t.Fatalf("implicit = %d, want 1", implicit)
	}
}

func TestParseSpecifierExplicitIndex(t *testing.T) {
	implicit := 0
	ps, _ := parseSpecifier([]byte("2:d}"), 0, &implicit)
	if !ps.valid || ps.valueIndex != 2 {
		t.Fatalf("parseSpecifier = %+v", ps)
	}
	// an explicit index must not advance the implicit counter.
	if implicit != 0 {
		t.Fatalf("implicit = %d, want 0", implicit)
	}
}

func TestParseSpecifierFillAlign(t *testing.T) {
	implicit := 0
	ps, _ := parseSpecifier([]byte(":$=^17s}"), 0, &implicit)
	if !ps.valid {
		t.Fatal("expected valid specifier")
	}
	if ps.fill != '=' || ps.align != padSplit {
		t.Fatalf("fill=%q align=%v, want '=' padSplit", ps.fill, ps.align)
	}
	if ps.width.literal != 17 || !ps.width.present {
		t.Fatalf("width = %+v, want literal 17", ps.width)
	}
	if ps.tagString() != "s" {
		t.Fatalf("tag = %q, want s", ps.tagString())
	}
}

func TestParseSpecifierStarWidth(t *testing.T) {
	implicit := 1
	ps, _ := parseSpecifier([]byte(":*b}"), 0, &implicit)
	// the implicit value index takes 1, so the bare '*' takes 2.
	if !ps.width.isArgIndex || ps.width.argIndex != 2 {
		t.Fatalf("width = %+v, want arg index 2", ps.width)
	}
	if implicit != 3 {
		t.Fatalf("bare '*' should advance implicit counter, got %d", implicit)
	}
}

func TestParseSpecifierStarNWidth(t *testing.T) {
	implicit := 0
	ps, _ := parseSpecifier([]byte(":*0b}"), 0, &implicit)
	if !ps.width.isArgIndex || ps.width.argIndex != 0 {
		t.Fatalf("width = %+v, want arg index 0", ps.width)
	}
	// only the implicit value index advances the counter (to 1).
	if implicit != 1 {
		t.Fatalf("'*N' must not advance implicit counter, got %d", implicit)
	}
}

func TestParseSpecifierFlagsAndPrecision(t *testing.T) {
	implicit := 0
	ps, _ := parseSpecifier([]byte(":+04.2f}"), 0, &implicit)
	if !ps.valid {
		t.Fatal("expected valid specifier")
	}
	if !ps.flags.has(FlagSign) || !ps.flags.has(FlagZero) {
		t.Fatalf("flags = %x, want SIGN|ZERO set", ps.flags)
	}
	if ps.width.literal != 4 {
		t.Fatalf("width = %+v, want 4", ps.width)
	}
	if !ps.precision.present || ps.precision.literal != 2 {
		t.Fatalf("precision = %+v, want 2", ps.precision)
	}
	if ps.tagString() != "f" {
		t.Fatalf("tag = %q, want f", ps.tagString())
	}
}

func TestParseSpecifierUnterminatedResyncsAtNextBrace(t *testing.T) {
	implicit := 0
	ps, pos := parseSpecifier([]byte(":garbage{still no closer"), 0, &implicit)
	if ps.valid {
		t.Fatal("expected invalid specifier")
	}
	// no closing '}' anywhere: resync consumes to end of input.
	if pos != len(":garbage{still no closer") {
		t.Fatalf("pos = %d, want end of input", pos)
	}
}

func TestParseSpecifierMissingColonIsInvalid(t *testing.T) {
	implicit := 0
	ps, pos := parseSpecifier([]byte("junk}"), 0, &implicit)
	if ps.valid {
		t.Fatal("expected invalid specifier (no ':' and no immediate '}')")
	}
	if pos != len("junk}") {
		t.Fatalf("pos = %d, want after resync brace", pos)
	}
}
