// Package widechar selects the wide-character encoding used as conversion
// target.
//
// # Wide-character forms
//
// A "wide character" is the fixed-width in-memory representation of a Unicode
// code point, as opposed to UTF-8's variable-width byte sequence. Which
// representation is native depends on the platform:
//
//   - Unix-like systems use a 32-bit wchar_t, i.e. UTF-32 in host byte order
//   - Windows uses a 16-bit wchar_t, i.e. UTF-16 in host byte order
//
// The package exposes the five supported forms by name:
//
//	native    platform wchar_t representation (default)
//	utf16le   UTF-16, little-endian
//	utf16be   UTF-16, big-endian
//	utf32le   UTF-32, little-endian
//	utf32be   UTF-32, big-endian
//
// Each Form yields a golang.org/x/text encoder that converts UTF-8 input to
// the form's byte representation, plus the form's byte order mark and code
// unit width for size accounting.
package widechar
