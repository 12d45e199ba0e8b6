package foundation

// IPv4Private reports whether the address is in an RFC 1918 range:
// 10.0.0.0/8, 172.16.0.0/12, or 192.168.0.0/16.
func IPv4Private(o [4]byte) bool {
	switch {
	case o[0] == 10:
		return true
	case o[0] == 172 && o[1]&0xF0 == 16:
		return true
	case o[0] == 192 && o[1] == 168:
		return true
	}
	return false
}

// IPv4Loopback reports whether the address is in 127.0.0.0/8.
func IPv4Loopback(o [4]byte) bool { return o[0] == 127 }

// IPv4Multicast reports whether the address is in 224.0.0.0/4.
func IPv4Multicast(o [4]byte) bool { return o[0]&0xF0 == 0xE0 }

// IPv4Unspecified reports whether the address is 0.0.0.0.
func IPv4Unspecified(o [4]byte) bool {
	return o[0] == 0 && o[1] == 0 && o[2] == 0 && o[3] == 0
}

// IPv4Broadcast reports whether the address is 255.255.255.255.
func IPv4Broadcast(o [4]byte) bool {
	return o[0] == 255 && o[1] == 255 && o[2] == 255 && o[3] == 255
}

// IPv4Public reports whether the address is none of private, loopback,
// multicast, unspecified, or broadcast.
func IPv4Public(o [4]byte) bool {
	return !IPv4Private(o) && !IPv4Loopback(o) && !IPv4Multicast(o) &&
		!IPv4Unspecified(o) && !IPv4Broadcast(o)
}

// IPv6UniqueLocal reports whether the address is in the RFC 4193
// unique-local prefix fc00::/7.
func IPv6UniqueLocal(o [16]byte) bool { return o[0]&0xFE == 0xFC }

// IPv6Loopback reports whether the address is ::1.
func IPv6Loopback(o [16]byte) bool {
	for i := 0; i < 15; i++ {
		if o[i] != 0 {
			return false
		}
	}
	return o[15] == 1
}

// IPv6Multicast reports whether the address is in ff00::/8.
func IPv6Multicast(o [16]byte) bool { return o[0] == 0xFF }

// IPv6Unspecified reports whether the address is ::.
func IPv6Unspecified(o [16]byte) bool {
	for _, b := range o {
		if b != 0 {
			return false
		}
	}
	return true
}

// IPv6Public reports whether the address is none of unique-local,
// loopback, multicast, or unspecified.
func IPv6Public(o [16]byte) bool {
	return !IPv6UniqueLocal(o) && !IPv6Loopback(o) && !IPv6Multicast(o) && !IPv6Unspecified(o)
}
