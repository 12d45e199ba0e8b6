package refined

// The layering registry records, for every wrapper in this package,
// which foundation validators (and which earlier wrappers) its
// constructor composes. Entries may only reference foundation names or
// wrappers declared earlier in the registry, so the whole table forms a
// dependency DAG by construction; TestLayeringRegistry enforces this.

// Foundation validator names as they appear in Layer.Composes. Each
// corresponds to one exported predicate in the foundation package.
const (
	FoundationUTF8        = "foundation.ValidUTF8"
	FoundationIPv4Class   = "foundation.IPv4 classification"
	FoundationIPv6Class   = "foundation.IPv6 classification"
	FoundationMACBits     = "foundation.MAC bit tests"
	FoundationUUIDBits    = "foundation.UUID bit tests"
	FoundationPortClass   = "foundation.ClassifyPort"
	FoundationPathText    = "foundation.PathNullFree"
	FoundationURLScheme   = "foundation.ValidScheme"
	FoundationRegexLayers = "foundation.CheckRegex"

	// Trusted terminal steps outside the foundation package. They sit
	// below the structural checks and are never the first gate.
	TerminalRegexpCompile = "regexp.Compile"
	TerminalFilesystem    = "filesystem metadata probe"
)

// Obligation names one of the four properties every wrapper's test
// suite must discharge.
type Obligation int

const (
	// ConstructionSafety: the constructor succeeds on every input
	// satisfying the predicate.
	ConstructionSafety Obligation = iota
	// InvalidRejection: the constructor fails with a *ValidationError
	// on every input violating the predicate.
	InvalidRejection
	// AccessorCorrectness: Value returns the constructed input
	// unmodified.
	AccessorCorrectness
	// UnwrapCorrectness: Unwrap returns the constructed input
	// unmodified.
	UnwrapCorrectness
)

func (o Obligation) String() string {
	switch o {
	case ConstructionSafety:
		return "construction-safety"
	case InvalidRejection:
		return "invalid-rejection"
	case AccessorCorrectness:
		return "accessor-correctness"
	case UnwrapCorrectness:
		return "unwrap-correctness"
	default:
		return "unknown"
	}
}

// Obligations lists the four properties in the order they are usually
// discharged.
func Obligations() []Obligation {
	return []Obligation{ConstructionSafety, InvalidRejection, AccessorCorrectness, UnwrapCorrectness}
}

// Layer records one wrapper and the validators its constructor
// composes.
type Layer struct {
	Wrapper  string
	Composes []string
}

var registry = []Layer{
	{"NonEmptyString", []string{FoundationUTF8}},
	{"True", nil},
	{"False", nil},
	{"Positive", nil},
	{"NonNegative", nil},
	{"NonZero", nil},
	{"InRange", nil},
	{"NonEmptySlice", nil},
	{"Some", nil},
	{"IPv4Private", []string{FoundationIPv4Class}},
	{"IPv4Public", []string{FoundationIPv4Class}},
	{"IPv4Loopback", []string{FoundationIPv4Class}},
	{"IPv6Private", []string{FoundationIPv6Class}},
	{"IPv6Public", []string{FoundationIPv6Class}},
	{"IPv6Loopback", []string{FoundationIPv6Class}},
	{"MACUnicast", []string{FoundationMACBits}},
	{"MACMulticast", []string{FoundationMACBits}},
	{"MACUniversal", []string{FoundationMACBits}},
	{"MACLocal", []string{FoundationMACBits}},
	{"UUIDv4", []string{FoundationUUIDBits}},
	{"UUIDv7", []string{FoundationUUIDBits}},
	{"UUIDNonNil", []string{FoundationUUIDBits}},
	{"WellKnownPort", []string{FoundationPortClass}},
	{"RegisteredPort", []string{FoundationPortClass}},
	{"DynamicPort", []string{FoundationPortClass}},
	{"AddrPortPrivileged", []string{FoundationPortClass}},
	{"AddrPortUnprivileged", []string{FoundationPortClass}},
	{"AddrPortNonZero", nil},
	{"URLWithHost", nil},
	{"URLHTTP", []string{"URLWithHost"}},
	{"URLHTTPS", []string{"URLWithHost"}},
	{"URLCanBeBase", []string{"URLWithHost"}},
	{"URLAbsolute", []string{FoundationURLScheme}},
	{"PathExists", []string{FoundationPathText, TerminalFilesystem}},
	{"PathIsDir", []string{FoundationPathText, TerminalFilesystem}},
	{"PathIsFile", []string{FoundationPathText, TerminalFilesystem}},
	{"PathReadable", []string{FoundationPathText, TerminalFilesystem}},
	{"ValidRegex", []string{FoundationRegexLayers, TerminalRegexpCompile}},
}

// Layers returns the full registry in declaration order.
func Layers() []Layer {
	out := make([]Layer, len(registry))
	copy(out, registry)
	return out
}

// Composition returns what the named wrapper composes, or false if the
// wrapper is not registered.
func Composition(wrapper string) ([]string, bool) {
	for _, l := range registry {
		if l.Wrapper == wrapper {
			return l.Composes, true
		}
	}
	return nil, false
}
