package foundation

// PortClass partitions the 16-bit port space per IANA.
type PortClass int

const (
	// PortWellKnown covers 0-1023.
	PortWellKnown PortClass = iota
	// PortRegistered covers 1024-49151.
	PortRegistered
	// PortDynamic covers 49152-65535.
	PortDynamic
)

func (c PortClass) String() string {
	switch c {
	case PortWellKnown:
		return "well-known"
	case PortRegistered:
		return "registered"
	case PortDynamic:
		return "dynamic"
	}
	return "unknown"
}

// ClassifyPort returns the IANA class of p.
func ClassifyPort(p uint16) PortClass {
	switch {
	case p <= 1023:
		return PortWellKnown
	case p <= 49151:
		return PortRegistered
	default:
		return PortDynamic
	}
}

// PrivilegedPort reports whether binding p conventionally requires
// elevated privileges (0-1023).
func PrivilegedPort(p uint16) bool { return p <= 1023 }
