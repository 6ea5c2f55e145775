// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

// writeAligned writes text into buf, padded to width with fill according
// to align. If text is already at least width bytes, it is written
// unchanged. This implements spec §4.5 and is used for the external
// alignment pass; numeric formatters apply their own internal zero-pad
// first (§4.2) and only fall through here when the ZERO flag did not
// already consume the padding.
func writeAligned(buf *OutputBuffer, text []byte, width int, fill byte, align Alignment) {
	n := len(text)
	if n >= width {
		buf.WriteBytes(text)
		return
	}
	pad := width - n
	switch align {
	case padBefore:
		buf.WriteRepeat(fill, pad)
		buf.WriteBytes(text)
	case padSplit:
		left := pad / 2
		right := pad - left
		buf.WriteRepeat(fill, left)
		buf.WriteBytes(text)
		buf.WriteRepeat(fill, right)
	default: // padAfter, alignDefault
		buf.WriteBytes(text)
		buf.WriteRepeat(fill, pad)
	}
}
