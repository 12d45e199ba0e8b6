package refined

import (
	"strconv"

	"github.com/promptwire/elicit/foundation"
)

// WellKnownPort wraps a port in the IANA well-known range 0-1023.
type WellKnownPort struct{ v uint16 }

// NewWellKnownPort validates p <= 1023.
func NewWellKnownPort(p uint16) (WellKnownPort, error) {
	if foundation.ClassifyPort(p) != foundation.PortWellKnown {
		return WellKnownPort{}, errf("a well-known port (0-1023)", "%d", p)
	}
	return WellKnownPort{v: p}, nil
}

// ParseWellKnownPort parses s as a decimal port number and routes
// through NewWellKnownPort.
func ParseWellKnownPort(s string) (WellKnownPort, error) {
	p, err := parsePort(s)
	if err != nil {
		return WellKnownPort{}, err
	}
	return NewWellKnownPort(p)
}

func (w WellKnownPort) Value() uint16  { return w.v }
func (w WellKnownPort) Unwrap() uint16 { return w.v }

// RegisteredPort wraps a port in the IANA registered range 1024-49151.
type RegisteredPort struct{ v uint16 }

// NewRegisteredPort validates 1024 <= p <= 49151.
func NewRegisteredPort(p uint16) (RegisteredPort, error) {
	if foundation.ClassifyPort(p) != foundation.PortRegistered {
		return RegisteredPort{}, errf("a registered port (1024-49151)", "%d", p)
	}
	return RegisteredPort{v: p}, nil
}

// ParseRegisteredPort parses s as a decimal port number and routes
// through NewRegisteredPort.
func ParseRegisteredPort(s string) (RegisteredPort, error) {
	p, err := parsePort(s)
	if err != nil {
		return RegisteredPort{}, err
	}
	return NewRegisteredPort(p)
}

func (w RegisteredPort) Value() uint16  { return w.v }
func (w RegisteredPort) Unwrap() uint16 { return w.v }

// DynamicPort wraps a port in the ephemeral range 49152-65535.
type DynamicPort struct{ v uint16 }

// NewDynamicPort validates p >= 49152.
func NewDynamicPort(p uint16) (DynamicPort, error) {
	if foundation.ClassifyPort(p) != foundation.PortDynamic {
		return DynamicPort{}, errf("a dynamic port (49152-65535)", "%d", p)
	}
	return DynamicPort{v: p}, nil
}

// ParseDynamicPort parses s as a decimal port number and routes through
// NewDynamicPort.
func ParseDynamicPort(s string) (DynamicPort, error) {
	p, err := parsePort(s)
	if err != nil {
		return DynamicPort{}, err
	}
	return NewDynamicPort(p)
}

func (w DynamicPort) Value() uint16  { return w.v }
func (w DynamicPort) Unwrap() uint16 { return w.v }

func parsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errf("a decimal port number in 0-65535", "%q", s)
	}
	return uint16(n), nil
}
