// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

import "math"

var pow10 = [FloatPrecisionCap + 1]float64{
	1, 10, 100, 1000, 10000, 100000,
	1000000, 10000000, 100000000, 1000000000,
}

// formatFloat implements spec §4.2's floating-point algorithm: classify
// NaN/Inf/zero first, then a fixed-point decomposition of whole and
// fractional parts with half-to-even rounding at the requested
// precision. Scientific notation is explicitly out of scope (spec
// Non-goals), so there is exactly one output shape: "[sign]whole[.frac]".
func formatFloat(buf *OutputBuffer, v float64, flags Flags, width int, widthSet bool, precision int, precSet bool, fill byte, align Alignment, upper bool) {
	prec := DefaultFloatPrecision
	if precSet {
		prec = precision
	}
	if prec < 0 {
		prec = 0
	}
	if prec > FloatPrecisionCap {
		prec = FloatPrecisionCap
	}
	// width is only clamped to MaxWidth upstream (driver.resolve); clamp
	// again here so the scratch arrays below stay sized to a value this
	// function itself guarantees, not one it trusts the caller for.
	if width > MaxWidth {
		width = MaxWidth
	}

	if math.IsNaN(v) {
		writeText(buf, []byte(nanOrInf("nan", upper)), width, widthSet, fill, align)
		return
	}
	if math.IsInf(v, 0) {
		var text [4]byte
		n := 0
		if s := signByte(v < 0, flags); s != 0 {
			text[n] = s
			n++
		}
		n += copy(text[n:], nanOrInf("inf", upper))
		writeText(buf, text[:n], width, widthSet, fill, align)
		return
	}

	negative := math.Signbit(v)
	av := math.Abs(v)

	var digits [400]byte
	n := 0
	if s := signByte(negative, flags); s != 0 {
		digits[n] = s
		n++
	}
	signLen := n

	if av == 0 {
		digits[n] = '0'
		n++
		if !flags.has(FlagAlt) && prec > 0 {
			digits[n] = '.'
			n++
			for i := 0; i < prec; i++ {
				digits[n] = '0'
				n++
			}
		}
		emitFloat(buf, digits[:n], signLen, width, widthSet, fill, align, flags)
		return
	}

	whole := math.Trunc(av)
	scaled := (av - whole) * pow10[prec]
	frac := uint64(scaled)
	delta := scaled - float64(frac)

	switch {
	case delta > 0.5:
		frac++
	case delta == 0.5:
		if frac == 0 || frac%2 == 1 {
			frac++
		}
	}
	if limit := uint64(pow10[prec]); frac >= limit {
		frac -= limit
		whole++
	}

	n = appendWholeDigits(&digits, n, whole)
	switch {
	case prec == 0:
		// no fractional part to show
	case flags.has(FlagAlt) && frac == 0:
		// ALT omits the decimal point and fraction once rounding leaves
		// nothing after it
	default:
		digits[n] = '.'
		n++
		n = appendFracDigits(&digits, n, frac, prec)
	}

	emitFloat(buf, digits[:n], signLen, width, widthSet, fill, align, flags)
}

// writeText applies the external alignment pass only, for shapes (NaN,
// Inf) that never take ZERO-flag internal padding.
func writeText(buf *OutputBuffer, text []byte, width int, widthSet bool, fill byte, align Alignment) {
	if widthSet && width > 0 {
		writeAligned(buf, text, width, fill, align)
	} else {
		buf.WriteBytes(text)
	}
}

// emitFloat applies ZERO-flag padding (inserted right after the sign) or
// falls through to the external alignment pass, mirroring
// formatInteger's split between internal zero-fill and external align.
func emitFloat(buf *OutputBuffer, text []byte, signLen, width int, widthSet bool, fill byte, align Alignment, flags Flags) {
	if flags.has(FlagZero) && widthSet && width > len(text) {
		zeros := width - len(text)
		var out [MaxWidth + 400]byte
		n := copy(out[:], text[:signLen])
		for i := 0; i < zeros; i++ {
			out[n] = '0'
			n++
		}
		n += copy(out[n:], text[signLen:])
		buf.WriteBytes(out[:n])
		return
	}
	writeText(buf, text, width, widthSet, fill, align)
}

func signByte(negative bool, flags Flags) byte {
	switch {
	case negative:
		return '-'
	case flags.has(FlagSign):
		return '+'
	case flags.has(FlagSpace):
		return ' '
	}
	return 0
}

func nanOrInf(s string, upper bool) string {
	if !upper {
		return s
	}
	var b [3]byte
	for i := 0; i < len(s); i++ {
		b[i] = s[i] - ('a' - 'A')
	}
	return string(b[:len(s)])
}

// appendWholeDigits writes whole's decimal digits (whole has no
// fractional part) starting at dst[n], working in float64 space the
// whole way so that magnitudes beyond uint64's range still produce
// (approximate, as documented by spec's Non-goals) output instead of
// overflowing an integer conversion.
func appendWholeDigits(dst *[400]byte, n int, whole float64) int {
	if whole == 0 {
		dst[n] = '0'
		return n + 1
	}
	start := n
	for whole >= 1 {
		d := math.Mod(whole, 10)
		dst[n] = byte(d) + '0'
		n++
		whole = math.Trunc(whole / 10)
	}
	for i, j := start, n-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return n
}

// appendFracDigits writes frac zero-padded to exactly width digits.
func appendFracDigits(dst *[400]byte, n int, frac uint64, width int) int {
	if width == 0 {
		return n
	}
	start := n
	for i := 0; i < width; i++ {
		dst[n] = byte(frac%10) + '0'
		n++
		frac /= 10
	}
	for i, j := start, n-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return n
}
