package foundation

// ValidUTF8 reports whether b decodes under the UTF-8 grammar: no invalid
// start or continuation bytes, no truncated multi-byte sequences, no
// overlong encodings, no surrogate code points, nothing above U+10FFFF.
// The empty sequence is valid with zero characters.
//
// The implementation is deliberately self-contained so the acceptance
// grammar is auditable in one place; tests cross-check it against the
// standard library's decoder.
func ValidUTF8(b []byte) bool {
	n := len(b)
	i := 0
	for i < n {
		c := b[i]

		// 0xxxxxxx
		if c&0x80 == 0 {
			i++
			continue
		}

		// 110xxxxx 10xxxxxx
		if c&0xE0 == 0xC0 {
			if i+1 >= n || b[i+1]&0xC0 != 0x80 {
				return false
			}
			// Overlong: code point below U+0080.
			if c&0x1E == 0 {
				return false
			}
			i += 2
			continue
		}

		// 1110xxxx 10xxxxxx 10xxxxxx
		if c&0xF0 == 0xE0 {
			if i+2 >= n || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return false
			}
			// Overlong: code point below U+0800.
			if c == 0xE0 && b[i+1]&0x20 == 0 {
				return false
			}
			cp := uint32(c&0x0F)<<12 | uint32(b[i+1]&0x3F)<<6 | uint32(b[i+2]&0x3F)
			// Surrogate range U+D800..U+DFFF is not scalar.
			if cp >= 0xD800 && cp <= 0xDFFF {
				return false
			}
			i += 3
			continue
		}

		// 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
		if c&0xF8 == 0xF0 {
			if i+3 >= n || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 || b[i+3]&0xC0 != 0x80 {
				return false
			}
			// Overlong: code point below U+10000.
			if c == 0xF0 && b[i+1]&0x30 == 0 {
				return false
			}
			cp := uint32(c&0x07)<<18 | uint32(b[i+1]&0x3F)<<12 | uint32(b[i+2]&0x3F)<<6 | uint32(b[i+3]&0x3F)
			if cp > 0x10FFFF {
				return false
			}
			i += 4
			continue
		}

		// Invalid start byte (continuation byte or 0xF8..0xFF).
		return false
	}
	return true
}
