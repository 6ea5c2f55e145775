// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wfmt implements a freestanding string formatter that writes into
caller-owned memory.

Format renders a brace-delimited template plus a heterogeneous argument
list into a caller-supplied byte buffer, which it never grows or
replaces. It never imports reflect or unsafe and never calls into the
standard library's fmt or strconv packages. It is not allocation-free: a
Format call makes a few small heap allocations (the OutputBuffer wrapped
around the output, the type-tag string, and string conversions for %s
and NaN/Inf), and SliceCursor boxes some argument values.

Specifiers

A specifier is a brace-delimited token:

	{ [index] [ ':' [ [ '$' fill ] align ] flags width [ '.' precision ] [type] ] }

index selects the argument, explicitly or by an implicit counter that
advances once per specifier that omits it. align is one of '<', '^', '>'
and controls where fill bytes land relative to the formatted text rather
than a left/right reading of the source grammar; see DESIGN.md for why.
flags is any combination of:

	#  alternate form: base prefix for integers, suppresses a trailing
	   ".000" fraction on floats once rounding leaves nothing after it
	!  use the upper-case alphabet/spelling a verb supports
	0  zero-pad between the sign/prefix and the digits, up to width
	+  force a sign on non-negative numbers
	   (space) use a blank where '+' would go, for non-negative numbers

width and precision each accept a decimal literal, a bare '*' (consumes
the next implicit argument), or '*N' (consumes argument N explicitly,
without touching the implicit counter).

Built-in type tags: d/lld/zd (signed decimal), u/llu/zu (unsigned
decimal), b/llb/zb (binary), o/llo/zo (octal), x/llx/zx (hex, lower),
X/llX/zX (hex, upper), f (fixed-point float), F (fixed-point float,
upper), s (string), c (character), p (pointer, hex with forced prefix),
and the empty tag (pass-through: a string value written as-is, aligned).

Custom type tags install with RegisterType, read during program
initialization only; the registry is not safe to mutate concurrently
with a Format call.

Literal braces are written with {{ and }}. A malformed specifier emits
nothing and the scanner resynchronizes at the next '}'. An unknown type
tag emits the literal "{bad type: TAG}". An index at or past the
caller's declared max_args emits nothing for that specifier. None of
this is reported as a Go error: Format's only output is the count of
bytes written, matching the C ancestor this package is modeled on.
*/
package wfmt
