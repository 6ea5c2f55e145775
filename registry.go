// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfmt

// Formatter is the signature a custom type tag registers. It receives
// the OutputBuffer to write into and the ResolvedSpec describing width,
// precision, flags, and the value to format; it returns the number of
// bytes it wrote.
type Formatter func(buf *OutputBuffer, spec ResolvedSpec) int

// ResolvedSpec is the view of a resolved specifier handed to a custom
// Formatter: the parsed flags/width/precision/fill/align plus the value
// slot, with the type tag already resolved to this very formatter.
type ResolvedSpec struct {
	Flags     Flags
	Width     int
	WidthSet  bool
	Precision int
	PrecSet   bool
	Fill      byte
	Align     Alignment
	Value     Value
}

type registryEntry struct {
	tag       string
	formatter Formatter
	kind      Kind
}

// registry is the process-wide type tag table. Built-ins resolve without
// a table search (see builtinEntry); entries is the append-only table of
// user-registered tags, linearly searched after the built-ins. Per spec
// §5, registration is assumed to happen during initialization and is not
// safe to race with concurrent Format calls or other registrations.
type registry struct {
	entries []registryEntry
}

var globalRegistry registry

// RegisterType installs a custom formatter under tag, reachable from any
// specifier whose type tag matches it exactly. tag must be non-empty and
// at most MaxTagLen bytes; registration beyond MaxRegistryEntries or
// past the byte-length limit is silently dropped, per spec §7.
// Registering a tag that is already present replaces its entry. kind
// does not change how the argument is read (the Value comes from the
// cursor with its own Kind); the driver uses it only to pick the default
// alignment: numeric kinds pad before the text, other kinds after.
func RegisterType(tag string, kind Kind, fn Formatter) bool {
	if tag == "" || len(tag) > MaxTagLen || fn == nil {
		return false
	}
	if len(globalRegistry.entries) >= MaxRegistryEntries {
		return false
	}
	for i := range globalRegistry.entries {
		if globalRegistry.entries[i].tag == tag {
			globalRegistry.entries[i] = registryEntry{tag: tag, formatter: fn, kind: kind}
			return true
		}
	}
	globalRegistry.entries = append(globalRegistry.entries, registryEntry{tag: tag, formatter: fn, kind: kind})
	return true
}

// MustRegisterType calls RegisterType and panics on failure. It exists
// for init()-time registration, where a dropped registration is a
// programming mistake (empty or too-long tag, nil formatter, or registry
// full; a duplicate tag is not a failure, it replaces the old entry)
// that should fail loudly rather than silently degrade %tag to
// "{bad type: tag}" at the first call site that uses it.
func MustRegisterType(tag string, kind Kind, fn Formatter) {
	if !RegisterType(tag, kind, fn) {
		panic("wfmt: RegisterType(" + tag + ") failed: empty/too-long tag, nil formatter, or registry full")
	}
}

// MaxRegistryEntries bounds the number of custom (non-built-in) type tags
// the global registry holds at once.
const MaxRegistryEntries = 128

// resolveTag looks up tag, checking built-ins first (no table search)
// and falling back to the linearly-searched custom registry.
func resolveTag(tag string) (registryEntry, bool) {
	if e, ok := builtinEntry(tag); ok {
		return e, true
	}
	for i := range globalRegistry.entries {
		if globalRegistry.entries[i].tag == tag {
			return globalRegistry.entries[i], true
		}
	}
	return registryEntry{}, false
}
