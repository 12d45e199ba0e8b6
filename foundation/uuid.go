package foundation

// UUIDVersion extracts the version nibble from the time_hi_and_version
// octet (byte 6).
func UUIDVersion(b [16]byte) uint8 { return b[6] >> 4 }

// UUIDHasVersion reports whether the version nibble encodes v.
func UUIDHasVersion(b [16]byte, v uint8) bool { return UUIDVersion(b) == v }

// UUIDVariantRFC4122 reports whether the two most-significant bits of the
// clock_seq_hi_and_reserved octet (byte 8) encode the RFC 4122 variant
// (10xxxxxx).
func UUIDVariantRFC4122(b [16]byte) bool { return b[8]&0xC0 == 0x80 }

// UUIDNil reports whether all 16 bytes are zero.
func UUIDNil(b [16]byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

// UUIDReport is the structured validity report for a UUID byte layout.
type UUIDReport struct {
	Version        uint8
	VariantRFC4122 bool
	Nil            bool
}

// UUIDCheck evaluates all layout properties in one pass.
func UUIDCheck(b [16]byte) UUIDReport {
	return UUIDReport{
		Version:        UUIDVersion(b),
		VariantRFC4122: UUIDVariantRFC4122(b),
		Nil:            UUIDNil(b),
	}
}
