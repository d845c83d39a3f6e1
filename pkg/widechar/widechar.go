package widechar

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Form identifies one wide-character byte representation.
type Form int

const (
	UTF16LE Form = iota
	UTF16BE
	UTF32LE
	UTF32BE
)

// Native returns the form matching the running platform's wchar_t: UTF-16 on
// Windows, UTF-32 elsewhere, both in host byte order.
func Native() Form {
	little := binary.NativeEndian.Uint16([]byte{1, 0}) == 1
	if runtime.GOOS == "windows" {
		if little {
			return UTF16LE
		}
		return UTF16BE
	}
	if little {
		return UTF32LE
	}
	return UTF32BE
}

// ParseForm resolves a form name from the command line. Names are
// case-insensitive; "native" resolves to Native().
func ParseForm(name string) (Form, error) {
	switch strings.ToLower(name) {
	case "native", "":
		return Native(), nil
	case "utf16le":
		return UTF16LE, nil
	case "utf16be":
		return UTF16BE, nil
	case "utf32le":
		return UTF32LE, nil
	case "utf32be":
		return UTF32BE, nil
	}
	return 0, fmt.Errorf("unknown wide encoding '%s' (want native, utf16le, utf16be, utf32le or utf32be)", name)
}

func (f Form) String() string {
	switch f {
	case UTF16LE:
		return "utf16le"
	case UTF16BE:
		return "utf16be"
	case UTF32LE:
		return "utf32le"
	case UTF32BE:
		return "utf32be"
	}
	return fmt.Sprintf("widechar.Form(%d)", int(f))
}

// Encoding returns the x/text encoding for the form. The encoding never emits
// a byte order mark; callers prepend BOM() themselves when asked to.
func (f Form) Encoding() encoding.Encoding {
	switch f {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	}
	panic("widechar: invalid form " + f.String())
}

// NewEncoder returns a fresh UTF-8 to wide-character encoder for the form.
func (f Form) NewEncoder() *encoding.Encoder {
	return f.Encoding().NewEncoder()
}

// NewDecoder returns the inverse decoder, wide-character bytes back to UTF-8.
func (f Form) NewDecoder() *encoding.Decoder {
	return f.Encoding().NewDecoder()
}

// BOM returns the form's byte order mark (U+FEFF in the form's own
// representation).
func (f Form) BOM() []byte {
	switch f {
	case UTF16LE:
		return []byte{0xFF, 0xFE}
	case UTF16BE:
		return []byte{0xFE, 0xFF}
	case UTF32LE:
		return []byte{0xFF, 0xFE, 0x00, 0x00}
	case UTF32BE:
		return []byte{0x00, 0x00, 0xFE, 0xFF}
	}
	panic("widechar: invalid form " + f.String())
}

// UnitSize returns the width in bytes of one code unit of the form.
func (f Form) UnitSize() int {
	if f == UTF16LE || f == UTF16BE {
		return 2
	}
	return 4
}
