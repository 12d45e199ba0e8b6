package refined

import (
	"net/netip"

	"github.com/promptwire/elicit/foundation"
)

// IPv4Private wraps an IPv4 address inside one of the RFC 1918 blocks.
type IPv4Private struct{ v netip.Addr }

// NewIPv4Private validates a as an RFC 1918 address.
func NewIPv4Private(a netip.Addr) (IPv4Private, error) {
	if !a.Is4() {
		return IPv4Private{}, errf("an IPv4 address", "%s", a)
	}
	if !foundation.IPv4Private(a.As4()) {
		return IPv4Private{}, errf("an RFC 1918 private IPv4 address", "%s", a)
	}
	return IPv4Private{v: a}, nil
}

// ParseIPv4Private parses s and routes through NewIPv4Private.
func ParseIPv4Private(s string) (IPv4Private, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv4Private{}, errf("an IPv4 address in dotted-quad form", "%q", s)
	}
	return NewIPv4Private(a)
}

func (p IPv4Private) Value() netip.Addr  { return p.v }
func (p IPv4Private) Unwrap() netip.Addr { return p.v }
func (p IPv4Private) String() string     { return p.v.String() }

// IPv4Public wraps a globally routable IPv4 address: not private,
// loopback, multicast, unspecified, or broadcast.
type IPv4Public struct{ v netip.Addr }

// NewIPv4Public validates a as a public IPv4 address.
func NewIPv4Public(a netip.Addr) (IPv4Public, error) {
	if !a.Is4() {
		return IPv4Public{}, errf("an IPv4 address", "%s", a)
	}
	if !foundation.IPv4Public(a.As4()) {
		return IPv4Public{}, errf("a publicly routable IPv4 address", "%s", a)
	}
	return IPv4Public{v: a}, nil
}

// ParseIPv4Public parses s and routes through NewIPv4Public.
func ParseIPv4Public(s string) (IPv4Public, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv4Public{}, errf("an IPv4 address in dotted-quad form", "%q", s)
	}
	return NewIPv4Public(a)
}

func (p IPv4Public) Value() netip.Addr  { return p.v }
func (p IPv4Public) Unwrap() netip.Addr { return p.v }
func (p IPv4Public) String() string     { return p.v.String() }

// IPv4Loopback wraps an address inside 127.0.0.0/8.
type IPv4Loopback struct{ v netip.Addr }

// NewIPv4Loopback validates a as a loopback IPv4 address.
func NewIPv4Loopback(a netip.Addr) (IPv4Loopback, error) {
	if !a.Is4() {
		return IPv4Loopback{}, errf("an IPv4 address", "%s", a)
	}
	if !foundation.IPv4Loopback(a.As4()) {
		return IPv4Loopback{}, errf("a loopback IPv4 address (127.0.0.0/8)", "%s", a)
	}
	return IPv4Loopback{v: a}, nil
}

// ParseIPv4Loopback parses s and routes through NewIPv4Loopback.
func ParseIPv4Loopback(s string) (IPv4Loopback, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv4Loopback{}, errf("an IPv4 address in dotted-quad form", "%q", s)
	}
	return NewIPv4Loopback(a)
}

func (p IPv4Loopback) Value() netip.Addr  { return p.v }
func (p IPv4Loopback) Unwrap() netip.Addr { return p.v }
func (p IPv4Loopback) String() string     { return p.v.String() }

// IPv6Private wraps a unique-local IPv6 address (fc00::/7).
type IPv6Private struct{ v netip.Addr }

// NewIPv6Private validates a as a unique-local IPv6 address.
func NewIPv6Private(a netip.Addr) (IPv6Private, error) {
	if !a.Is6() || a.Is4In6() {
		return IPv6Private{}, errf("an IPv6 address", "%s", a)
	}
	if !foundation.IPv6UniqueLocal(a.As16()) {
		return IPv6Private{}, errf("a unique-local IPv6 address (fc00::/7)", "%s", a)
	}
	return IPv6Private{v: a}, nil
}

// ParseIPv6Private parses s and routes through NewIPv6Private.
func ParseIPv6Private(s string) (IPv6Private, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv6Private{}, errf("an IPv6 address", "%q", s)
	}
	return NewIPv6Private(a)
}

func (p IPv6Private) Value() netip.Addr  { return p.v }
func (p IPv6Private) Unwrap() netip.Addr { return p.v }
func (p IPv6Private) String() string     { return p.v.String() }

// IPv6Public wraps a globally routable IPv6 address.
type IPv6Public struct{ v netip.Addr }

// NewIPv6Public validates a as a public IPv6 address.
func NewIPv6Public(a netip.Addr) (IPv6Public, error) {
	if !a.Is6() || a.Is4In6() {
		return IPv6Public{}, errf("an IPv6 address", "%s", a)
	}
	if !foundation.IPv6Public(a.As16()) {
		return IPv6Public{}, errf("a publicly routable IPv6 address", "%s", a)
	}
	return IPv6Public{v: a}, nil
}

// ParseIPv6Public parses s and routes through NewIPv6Public.
func ParseIPv6Public(s string) (IPv6Public, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv6Public{}, errf("an IPv6 address", "%q", s)
	}
	return NewIPv6Public(a)
}

func (p IPv6Public) Value() netip.Addr  { return p.v }
func (p IPv6Public) Unwrap() netip.Addr { return p.v }
func (p IPv6Public) String() string     { return p.v.String() }

// IPv6Loopback wraps the single IPv6 loopback address ::1.
type IPv6Loopback struct{ v netip.Addr }

// NewIPv6Loopback validates a == ::1.
func NewIPv6Loopback(a netip.Addr) (IPv6Loopback, error) {
	if !a.Is6() || a.Is4In6() {
		return IPv6Loopback{}, errf("an IPv6 address", "%s", a)
	}
	if !foundation.IPv6Loopback(a.As16()) {
		return IPv6Loopback{}, errf("the IPv6 loopback address ::1", "%s", a)
	}
	return IPv6Loopback{v: a}, nil
}

// ParseIPv6Loopback parses s and routes through NewIPv6Loopback.
func ParseIPv6Loopback(s string) (IPv6Loopback, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv6Loopback{}, errf("an IPv6 address", "%q", s)
	}
	return NewIPv6Loopback(a)
}

func (p IPv6Loopback) Value() netip.Addr  { return p.v }
func (p IPv6Loopback) Unwrap() netip.Addr { return p.v }
func (p IPv6Loopback) String() string     { return p.v.String() }
