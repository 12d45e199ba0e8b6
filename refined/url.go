package refined

import (
	"net/url"
	"strings"

	"github.com/promptwire/elicit/foundation"
)

// The URL wrappers hold the parsed *url.URL rather than the raw string:
// the parse already happened to validate, so callers get it for free.
// Value and Unwrap return a copy so the wrapper stays immutable.

func cloneURL(u *url.URL) *url.URL {
	cp := *u
	if u.User != nil {
		user := *u.User
		cp.User = &user
	}
	return &cp
}

// URLHTTP wraps a URL known to use the http scheme (not https) and to
// carry a host.
type URLHTTP struct{ v *url.URL }

// NewURLHTTP validates u has scheme "http" and a non-empty host. Host
// presence is delegated to NewURLWithHost; this wrapper layers the
// scheme check on top.
func NewURLHTTP(u *url.URL) (URLHTTP, error) {
	if u == nil {
		return URLHTTP{}, errf("a URL", "nil")
	}
	if !strings.EqualFold(u.Scheme, "http") {
		return URLHTTP{}, errf("an http URL", "scheme %q", u.Scheme)
	}
	hosted, err := NewURLWithHost(u)
	if err != nil {
		return URLHTTP{}, err
	}
	return URLHTTP{v: hosted.Unwrap()}, nil
}

// ParseURLHTTP parses s and routes through NewURLHTTP.
func ParseURLHTTP(s string) (URLHTTP, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URLHTTP{}, errf("a parseable URL", "%q", s)
	}
	return NewURLHTTP(u)
}

func (w URLHTTP) Value() *url.URL  { return cloneURL(w.v) }
func (w URLHTTP) Unwrap() *url.URL { return w.v }
func (w URLHTTP) String() string   { return w.v.String() }

// URLHTTPS wraps a URL known to use the https scheme and to carry a
// host.
type URLHTTPS struct{ v *url.URL }

// NewURLHTTPS validates u has scheme "https" and a non-empty host,
// layering on NewURLWithHost like NewURLHTTP does.
func NewURLHTTPS(u *url.URL) (URLHTTPS, error) {
	if u == nil {
		return URLHTTPS{}, errf("a URL", "nil")
	}
	if !strings.EqualFold(u.Scheme, "https") {
		return URLHTTPS{}, errf("an https URL", "scheme %q", u.Scheme)
	}
	hosted, err := NewURLWithHost(u)
	if err != nil {
		return URLHTTPS{}, err
	}
	return URLHTTPS{v: hosted.Unwrap()}, nil
}

// ParseURLHTTPS parses s and routes through NewURLHTTPS.
func ParseURLHTTPS(s string) (URLHTTPS, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URLHTTPS{}, errf("a parseable URL", "%q", s)
	}
	return NewURLHTTPS(u)
}

func (w URLHTTPS) Value() *url.URL  { return cloneURL(w.v) }
func (w URLHTTPS) Unwrap() *url.URL { return w.v }
func (w URLHTTPS) String() string   { return w.v.String() }

// URLWithHost wraps a URL of any scheme that names a host.
type URLWithHost struct{ v *url.URL }

// NewURLWithHost validates u carries a non-empty host component.
func NewURLWithHost(u *url.URL) (URLWithHost, error) {
	if u == nil {
		return URLWithHost{}, errf("a URL", "nil")
	}
	if u.Host == "" {
		return URLWithHost{}, errf("a URL with a host", "%s", u)
	}
	return URLWithHost{v: cloneURL(u)}, nil
}

// ParseURLWithHost parses s and routes through NewURLWithHost.
func ParseURLWithHost(s string) (URLWithHost, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URLWithHost{}, errf("a parseable URL", "%q", s)
	}
	return NewURLWithHost(u)
}

func (w URLWithHost) Value() *url.URL  { return cloneURL(w.v) }
func (w URLWithHost) Unwrap() *url.URL { return w.v }
func (w URLWithHost) String() string   { return w.v.String() }

// URLCanBeBase wraps a URL that can serve as a base for resolving
// relative references: absolute, hierarchical (not opaque like
// mailto:), and carrying a host.
type URLCanBeBase struct{ v *url.URL }

// NewURLCanBeBase validates u as a usable resolution base.
func NewURLCanBeBase(u *url.URL) (URLCanBeBase, error) {
	if u == nil {
		return URLCanBeBase{}, errf("a URL", "nil")
	}
	if u.Scheme == "" {
		return URLCanBeBase{}, errf("an absolute URL", "relative reference %q", u.String())
	}
	if u.Opaque != "" {
		return URLCanBeBase{}, errf("a hierarchical URL", "opaque form %q", u.String())
	}
	hosted, err := NewURLWithHost(u)
	if err != nil {
		return URLCanBeBase{}, err
	}
	return URLCanBeBase{v: hosted.Unwrap()}, nil
}

// ParseURLCanBeBase parses s and routes through NewURLCanBeBase.
func ParseURLCanBeBase(s string) (URLCanBeBase, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URLCanBeBase{}, errf("a parseable URL", "%q", s)
	}
	return NewURLCanBeBase(u)
}

func (w URLCanBeBase) Value() *url.URL  { return cloneURL(w.v) }
func (w URLCanBeBase) Unwrap() *url.URL { return w.v }
func (w URLCanBeBase) String() string   { return w.v.String() }

// Resolve interprets ref relative to the wrapped base.
func (w URLCanBeBase) Resolve(ref *url.URL) *url.URL {
	return w.v.ResolveReference(ref)
}

// URLAbsolute wraps a URL known to carry a scheme conforming to the
// RFC 3986 scheme grammar. Relative references are rejected.
type URLAbsolute struct{ v *url.URL }

// NewURLAbsolute validates u is absolute and its scheme is well-formed.
func NewURLAbsolute(u *url.URL) (URLAbsolute, error) {
	if u == nil {
		return URLAbsolute{}, errf("a URL", "nil")
	}
	if u.Scheme == "" {
		return URLAbsolute{}, errf("an absolute URL", "relative reference %q", u.String())
	}
	if !foundation.ValidScheme(u.Scheme) {
		return URLAbsolute{}, errf("a well-formed URL scheme", "%q", u.Scheme)
	}
	return URLAbsolute{v: cloneURL(u)}, nil
}

// ParseURLAbsolute parses s and routes through NewURLAbsolute.
func ParseURLAbsolute(s string) (URLAbsolute, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URLAbsolute{}, errf("a parseable URL", "%q", s)
	}
	return NewURLAbsolute(u)
}

func (w URLAbsolute) Value() *url.URL  { return cloneURL(w.v) }
func (w URLAbsolute) Unwrap() *url.URL { return w.v }
func (w URLAbsolute) String() string   { return w.v.String() }
