package refined

import (
	"regexp"

	"github.com/promptwire/elicit/foundation"
)

// ValidRegex wraps a pattern that passed the layered structural checks
// and then compiled. The layered checks run first so a rejection names
// the earliest broken layer instead of an opaque compiler message; the
// compile is the trusted terminal step that catches whatever the
// structural layers do not model.
type ValidRegex struct {
	src string
	re  *regexp.Regexp
}

// NewValidRegex validates pattern layer by layer, then compiles it.
func NewValidRegex(pattern string) (ValidRegex, error) {
	if v := foundation.CheckRegex(pattern); !v.OK {
		return ValidRegex{}, errf("a structurally valid pattern", "%q (failed %s check)", pattern, v.Failed)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ValidRegex{}, errf("a compilable pattern", "%q (%v)", pattern, err)
	}
	return ValidRegex{src: pattern, re: re}, nil
}

// Value returns the original pattern text.
func (w ValidRegex) Value() string { return w.src }

// Unwrap returns the pattern text; the wrapper is spent.
func (w ValidRegex) Unwrap() string { return w.src }

// Compiled returns the compiled form produced during validation.
func (w ValidRegex) Compiled() *regexp.Regexp { return w.re }

func (w ValidRegex) String() string { return w.src }
