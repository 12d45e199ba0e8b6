package refined

import (
	"net/netip"

	"github.com/promptwire/elicit/foundation"
)

// AddrPortPrivileged wraps an address:port pair whose port is in the
// privileged range 0-1023.
type AddrPortPrivileged struct{ v netip.AddrPort }

// NewAddrPortPrivileged validates the port of ap is <= 1023.
func NewAddrPortPrivileged(ap netip.AddrPort) (AddrPortPrivileged, error) {
	if !ap.IsValid() {
		return AddrPortPrivileged{}, errf("a valid address:port pair", "%s", ap)
	}
	if !foundation.PrivilegedPort(ap.Port()) {
		return AddrPortPrivileged{}, errf("a privileged port (0-1023)", "port %d", ap.Port())
	}
	return AddrPortPrivileged{v: ap}, nil
}

// ParseAddrPortPrivileged parses s ("host:port") and routes through
// NewAddrPortPrivileged.
func ParseAddrPortPrivileged(s string) (AddrPortPrivileged, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return AddrPortPrivileged{}, errf("an address:port pair", "%q", s)
	}
	return NewAddrPortPrivileged(ap)
}

func (w AddrPortPrivileged) Value() netip.AddrPort  { return w.v }
func (w AddrPortPrivileged) Unwrap() netip.AddrPort { return w.v }
func (w AddrPortPrivileged) String() string         { return w.v.String() }

// AddrPortUnprivileged wraps an address:port pair whose port is outside
// the privileged range.
type AddrPortUnprivileged struct{ v netip.AddrPort }

// NewAddrPortUnprivileged validates the port of ap is >= 1024.
func NewAddrPortUnprivileged(ap netip.AddrPort) (AddrPortUnprivileged, error) {
	if !ap.IsValid() {
		return AddrPortUnprivileged{}, errf("a valid address:port pair", "%s", ap)
	}
	if foundation.PrivilegedPort(ap.Port()) {
		return AddrPortUnprivileged{}, errf("an unprivileged port (1024-65535)", "port %d", ap.Port())
	}
	return AddrPortUnprivileged{v: ap}, nil
}

// ParseAddrPortUnprivileged parses s ("host:port") and routes through
// NewAddrPortUnprivileged.
func ParseAddrPortUnprivileged(s string) (AddrPortUnprivileged, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return AddrPortUnprivileged{}, errf("an address:port pair", "%q", s)
	}
	return NewAddrPortUnprivileged(ap)
}

func (w AddrPortUnprivileged) Value() netip.AddrPort  { return w.v }
func (w AddrPortUnprivileged) Unwrap() netip.AddrPort { return w.v }
func (w AddrPortUnprivileged) String() string         { return w.v.String() }

// AddrPortNonZero wraps an address:port pair whose port is not zero, so
// it can actually be dialed.
type AddrPortNonZero struct{ v netip.AddrPort }

// NewAddrPortNonZero validates the port of ap is not zero.
func NewAddrPortNonZero(ap netip.AddrPort) (AddrPortNonZero, error) {
	if !ap.IsValid() {
		return AddrPortNonZero{}, errf("a valid address:port pair", "%s", ap)
	}
	if ap.Port() == 0 {
		return AddrPortNonZero{}, errf("a non-zero port", "port 0")
	}
	return AddrPortNonZero{v: ap}, nil
}

// ParseAddrPortNonZero parses s ("host:port") and routes through
// NewAddrPortNonZero.
func ParseAddrPortNonZero(s string) (AddrPortNonZero, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return AddrPortNonZero{}, errf("an address:port pair", "%q", s)
	}
	return NewAddrPortNonZero(ap)
}

func (w AddrPortNonZero) Value() netip.AddrPort  { return w.v }
func (w AddrPortNonZero) Unwrap() netip.AddrPort { return w.v }
func (w AddrPortNonZero) String() string         { return w.v.String() }
