// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

// parseSpecifier consumes one {...} token's contents, starting just past
// the opening '{' at tpl[pos]. implicit is the driver's running implicit-
// index counter, threaded through so index/width/precision can all share
// it per spec §4.4.
//
// On success it returns a valid parsedSpecifier and the offset just past
// the closing '}'. On any grammar error it returns an invalid specifier
// and resynchronizes at the next '}' in the template (or end of template
// if none remains), per spec §7.
func parseSpecifier(tpl []byte, pos int, implicit *int) (parsedSpecifier, int) {
	n := len(tpl)
	start := pos
	var ps parsedSpecifier

	hasIndex := false
	idx := 0
	for pos < n && isDigit(tpl[pos]) {
		hasIndex = true
		idx = idx*10 + int(tpl[pos]-'0')
		pos++
	}
	if hasIndex {
		ps.valueIndex = idx
	} else {
		ps.valueIndex = *implicit
		*implicit++
	}

	if pos < n && tpl[pos] == '}' {
		ps.valid = true
		ps.endOffset = pos + 1
		return ps, pos + 1
	}
	if pos >= n || tpl[pos] != ':' {
		return invalidSpecifier(tpl, start, n)
	}
	pos++

	if pos < n && tpl[pos] == '$' {
		if pos+2 >= n {
			return invalidSpecifier(tpl, start, n)
		}
		align, ok := alignFromByte(tpl[pos+2])
		if !ok {
			return invalidSpecifier(tpl, start, n)
		}
		ps.fill = tpl[pos+1]
		ps.align = align
		pos += 3
	} else if pos < n {
		if align, ok := alignFromByte(tpl[pos]); ok {
			ps.align = align
			pos++
		}
	}

flags:
	for pos < n {
		switch tpl[pos] {
		case '#':
			ps.flags |= FlagAlt
		case '!':
			ps.flags |= FlagUpper
		case '+':
			ps.flags |= FlagSign
		case ' ':
			ps.flags |= FlagSpace
		case '0':
			ps.flags |= FlagZero
			if ps.fill == 0 {
				ps.fill = '0'
			}
		default:
			break flags
		}
		pos++
	}

	w, wpos, ok := parseWidthOrArg(tpl, pos, implicit)
	if !ok {
		return invalidSpecifier(tpl, start, n)
	}
	ps.width = w
	pos = wpos

	if pos < n && tpl[pos] == '.' {
		pos++
		p, ppos, ok := parseWidthOrArg(tpl, pos, implicit)
		if !ok {
			return invalidSpecifier(tpl, start, n)
		}
		p.present = true
		ps.precision = p
		pos = ppos
	}

	tagStart := pos
	for pos < n && tpl[pos] != '}' {
		pos++
	}
	if pos >= n {
		return invalidSpecifier(tpl, start, n)
	}
	tagLen := pos - tagStart
	if tagLen > MaxTagLen {
		return invalidSpecifier(tpl, start, n)
	}
	copy(ps.tag[:], tpl[tagStart:pos])
	ps.tagLen = tagLen

	pos++
	ps.valid = true
	ps.endOffset = pos
	return ps, pos
}

// parseWidthOrArg parses the shared width/precision grammar: a decimal
// literal, a bare '*' (next implicit arg, advances the counter), or '*N'
// (explicit arg index N, does not advance the counter). Absence of any
// of these is not an error; present is left false.
func parseWidthOrArg(tpl []byte, pos int, implicit *int) (widthOrArg, int, bool) {
	n := len(tpl)
	var w widthOrArg

	if pos < n && tpl[pos] == '*' {
		pos++
		if pos < n && isDigit(tpl[pos]) {
			idx := 0
			for pos < n && isDigit(tpl[pos]) {
				idx = idx*10 + int(tpl[pos]-'0')
				pos++
			}
			w.isArgIndex = true
			w.argIndex = idx
			w.present = true
			return w, pos, true
		}
		w.isArgIndex = true
		w.argIndex = *implicit
		*implicit++
		w.present = true
		return w, pos, true
	}

	if pos < n && isDigit(tpl[pos]) {
		val := 0
		for pos < n && isDigit(tpl[pos]) {
			val = val*10 + int(tpl[pos]-'0')
			pos++
		}
		w.literal = val
		w.present = true
		return w, pos, true
	}

	return w, pos, true
}

func alignFromByte(b byte) (Alignment, bool) {
	switch b {
	case '<':
		return padBefore, true
	case '^':
		return padSplit, true
	case '>':
		return padAfter, true
	}
	return alignDefault, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// invalidSpecifier marks the specifier beginning at start as unparseable
// and resynchronizes the scan at the next '}', per spec §7's "scanner
// resynchronizes at the next }".
func invalidSpecifier(tpl []byte, start, n int) (parsedSpecifier, int) {
	pos := start
	for pos < n && tpl[pos] != '}' {
		pos++
	}
	if pos < n {
		pos++
	}
	return parsedSpecifier{valid: false}, pos
}
