// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

// Format is the package entry point (spec §6): it scans template for
// {...} specifiers, draws arguments from cursor, and writes the result
// into output, returning the number of bytes written (excluding the
// null terminator that Format still leaves at output[bytes_written]).
//
// template need not itself be null-terminated; Format stops at
// len(template). maxArgs bounds how many argument indices are honored;
// a specifier referencing an index at or past maxArgs is treated as
// invalid, per spec §7.
func Format(template []byte, output []byte, maxArgs int, cursor ArgCursor) int {
	if maxArgs > MaxArgs {
		maxArgs = MaxArgs
	}
	if maxArgs < 0 {
		maxArgs = 0
	}
	d := driver{
		tpl:     template,
		buf:     NewOutputBuffer(output),
		cursor:  cursor,
		maxArgs: maxArgs,
	}
	d.run()
	return d.buf.Written()
}

// driver implements spec §4.6's Format Driver. Per spec §9 ("An
// implementation in a language with rich argument inspection may
// collapse this to one pass"), it runs as a single forward scan: a
// referenced argument index is resolved by pulling the cursor forward
// and caching every value along the way, so both a genuine forward
// reference ("{1:d}, {0:.2f}") and a later back-reference to an
// already-cached index are satisfied without ever rewinding the
// template or the cursor. See DESIGN.md for why this satisfies the
// two-pass contract without a literal second scan: unlike a C va_list,
// an ArgCursor's Next already carries its own concrete Kind, so there
// is no "must know the kind before the typed read" ordering constraint
// to resolve by buffering.
type driver struct {
	tpl     []byte
	buf     *OutputBuffer
	cursor  ArgCursor
	maxArgs int

	implicit int
	consumed int
	values   [MaxArgs]Value
	have     [MaxArgs]bool
}

func (d *driver) run() {
	i := 0
	n := len(d.tpl)
	for i < n {
		switch c := d.tpl[i]; {
		case c == '{' && i+1 < n && d.tpl[i+1] == '{':
			d.buf.WriteByte('{')
			i += 2
		case c == '}' && i+1 < n && d.tpl[i+1] == '}':
			d.buf.WriteByte('}')
			i += 2
		case c == '{':
			ps, next := parseSpecifier(d.tpl, i+1, &d.implicit)
			i = next
			if ps.valid {
				d.dispatch(ps)
			}
		default:
			d.buf.WriteByte(c)
			i++
		}
	}
}

// ensure pulls the cursor forward, if needed, so that values[idx] is
// populated. It reports false if idx is out of bounds or the cursor ran
// dry before reaching it.
func (d *driver) ensure(idx int) bool {
	if idx < 0 || idx >= d.maxArgs || idx >= MaxArgs {
		return false
	}
	for d.consumed <= idx {
		v, ok := d.cursor.Next()
		if !ok {
			return false
		}
		d.values[d.consumed] = v
		d.have[d.consumed] = true
		d.consumed++
	}
	return d.have[idx]
}

// resolve turns a width/precision grammar value into a concrete,
// MAX_WIDTH-clamped integer. present is false when the grammar field was
// absent; ok is false when an argument-indexed field's argument could
// not be loaded (index beyond max_args, or the cursor ran dry), which
// per spec marks the whole specifier invalid.
func (d *driver) resolve(w widthOrArg) (value int, present, ok bool) {
	if !w.present {
		return 0, false, true
	}
	val := w.literal
	if w.isArgIndex {
		if !d.ensure(w.argIndex) {
			return 0, true, false
		}
		val = d.values[w.argIndex].AsInt()
	}
	if val < 0 {
		val = 0
	}
	if val > MaxWidth {
		val = MaxWidth
	}
	return val, true, true
}

func (d *driver) dispatch(ps parsedSpecifier) {
	tag := ps.tagString()
	entry, found := resolveTag(tag)
	if !found {
		d.emitBadType(tag)
		return
	}

	width, widthSet, ok := d.resolve(ps.width)
	if !ok {
		return
	}
	precision, precSet, ok := d.resolve(ps.precision)
	if !ok {
		return
	}
	if !d.ensure(ps.valueIndex) {
		return
	}
	value := d.values[ps.valueIndex]

	align := ps.align
	if align == alignDefault {
		if entry.kind.numeric() {
			align = padBefore
		} else {
			align = padAfter
		}
	}
	fill := ps.fill
	if fill == 0 {
		fill = ' '
	}

	entry.formatter(d.buf, ResolvedSpec{
		Flags:     ps.flags,
		Width:     width,
		WidthSet:  widthSet,
		Precision: precision,
		PrecSet:   precSet,
		Fill:      fill,
		Align:     align,
		Value:     value,
	})
}

func (d *driver) emitBadType(tag string) {
	d.buf.WriteString("{bad type: ")
	d.buf.WriteString(tag)
	d.buf.WriteByte('}')
}
