package foundation

// MACMulticast reports whether the I/G bit (least-significant bit of the
// first octet) is set.
func MACMulticast(o [6]byte) bool { return o[0]&0x01 != 0 }

// MACUnicast is the complement of MACMulticast.
func MACUnicast(o [6]byte) bool { return !MACMulticast(o) }

// MACLocal reports whether the U/L bit (second-least-significant bit of
// the first octet) marks the address locally administered.
func MACLocal(o [6]byte) bool { return o[0]&0x02 != 0 }

// MACUniversal is the complement of MACLocal.
func MACUniversal(o [6]byte) bool { return !MACLocal(o) }

// MACBroadcast reports whether the address is ff:ff:ff:ff:ff:ff.
func MACBroadcast(o [6]byte) bool {
	for _, b := range o {
		if b != 0xFF {
			return false
		}
	}
	return true
}
