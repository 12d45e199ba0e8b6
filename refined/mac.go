package refined

import (
	"net"

	"github.com/promptwire/elicit/foundation"
)

func macFromHardwareAddr(hw net.HardwareAddr) ([6]byte, bool) {
	var m [6]byte
	if len(hw) != 6 {
		return m, false
	}
	copy(m[:], hw)
	return m, true
}

func macString(m [6]byte) string {
	return net.HardwareAddr(m[:]).String()
}

// MACUnicast wraps a 48-bit MAC address with the multicast bit clear.
type MACUnicast struct{ v [6]byte }

// NewMACUnicast validates the I/G bit of m is clear.
func NewMACUnicast(m [6]byte) (MACUnicast, error) {
	if !foundation.MACUnicast(m) {
		return MACUnicast{}, errf("a unicast MAC address", "%s", macString(m))
	}
	return MACUnicast{v: m}, nil
}

// ParseMACUnicast parses s as a 48-bit hardware address and routes
// through NewMACUnicast.
func ParseMACUnicast(s string) (MACUnicast, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MACUnicast{}, errf("a MAC address like 00:1a:2b:3c:4d:5e", "%q", s)
	}
	m, ok := macFromHardwareAddr(hw)
	if !ok {
		return MACUnicast{}, errf("a 48-bit MAC address", "%d-byte address %q", len(hw), s)
	}
	return NewMACUnicast(m)
}

func (w MACUnicast) Value() [6]byte  { return w.v }
func (w MACUnicast) Unwrap() [6]byte { return w.v }
func (w MACUnicast) String() string  { return macString(w.v) }

// MACMulticast wraps a 48-bit MAC address with the multicast bit set.
type MACMulticast struct{ v [6]byte }

// NewMACMulticast validates the I/G bit of m is set.
func NewMACMulticast(m [6]byte) (MACMulticast, error) {
	if !foundation.MACMulticast(m) {
		return MACMulticast{}, errf("a multicast MAC address", "%s", macString(m))
	}
	return MACMulticast{v: m}, nil
}

// ParseMACMulticast parses s as a 48-bit hardware address and routes
// through NewMACMulticast.
func ParseMACMulticast(s string) (MACMulticast, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MACMulticast{}, errf("a MAC address like 01:00:5e:00:00:01", "%q", s)
	}
	m, ok := macFromHardwareAddr(hw)
	if !ok {
		return MACMulticast{}, errf("a 48-bit MAC address", "%d-byte address %q", len(hw), s)
	}
	return NewMACMulticast(m)
}

func (w MACMulticast) Value() [6]byte  { return w.v }
func (w MACMulticast) Unwrap() [6]byte { return w.v }
func (w MACMulticast) String() string  { return macString(w.v) }

// MACUniversal wraps a MAC address with the locally-administered bit
// clear: the OUI was assigned by the IEEE.
type MACUniversal struct{ v [6]byte }

// NewMACUniversal validates the U/L bit of m is clear.
func NewMACUniversal(m [6]byte) (MACUniversal, error) {
	if !foundation.MACUniversal(m) {
		return MACUniversal{}, errf("a universally administered MAC address", "%s", macString(m))
	}
	return MACUniversal{v: m}, nil
}

// ParseMACUniversal parses s as a 48-bit hardware address and routes
// through NewMACUniversal.
func ParseMACUniversal(s string) (MACUniversal, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MACUniversal{}, errf("a MAC address like 00:1a:2b:3c:4d:5e", "%q", s)
	}
	m, ok := macFromHardwareAddr(hw)
	if !ok {
		return MACUniversal{}, errf("a 48-bit MAC address", "%d-byte address %q", len(hw), s)
	}
	return NewMACUniversal(m)
}

func (w MACUniversal) Value() [6]byte  { return w.v }
func (w MACUniversal) Unwrap() [6]byte { return w.v }
func (w MACUniversal) String() string  { return macString(w.v) }

// MACLocal wraps a MAC address with the locally-administered bit set.
type MACLocal struct{ v [6]byte }

// NewMACLocal validates the U/L bit of m is set.
func NewMACLocal(m [6]byte) (MACLocal, error) {
	if !foundation.MACLocal(m) {
		return MACLocal{}, errf("a locally administered MAC address", "%s", macString(m))
	}
	return MACLocal{v: m}, nil
}

// ParseMACLocal parses s as a 48-bit hardware address and routes
// through NewMACLocal.
func ParseMACLocal(s string) (MACLocal, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MACLocal{}, errf("a MAC address like 02:00:00:00:00:01", "%q", s)
	}
	m, ok := macFromHardwareAddr(hw)
	if !ok {
		return MACLocal{}, errf("a 48-bit MAC address", "%d-byte address %q", len(hw), s)
	}
	return NewMACLocal(m)
}

func (w MACLocal) Value() [6]byte  { return w.v }
func (w MACLocal) Unwrap() [6]byte { return w.v }
func (w MACLocal) String() string  { return macString(w.v) }
