package refined

import (
	"net/url"
	"testing"
)

func TestURLHTTPWrapper(t *testing.T) {
	w, err := ParseURLHTTP("http://example.com/path?q=1")
	if err != nil {
		t.Fatal(err)
	}
	if w.Value().Host != "example.com" {
		t.Fatalf("host %q", w.Value().Host)
	}
	if _, err := ParseURLHTTP("https://example.com"); err == nil {
		t.Fatal("https accepted by http wrapper")
	}
	if _, err := ParseURLHTTP("http://"); err == nil {
		t.Fatal("hostless URL accepted")
	}
}

func TestURLHTTPSWrapper(t *testing.T) {
	if _, err := ParseURLHTTPS("https://example.com"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseURLHTTPS("http://example.com"); err == nil {
		t.Fatal("http accepted by https wrapper")
	}
}

func TestURLWithHostWrapper(t *testing.T) {
	if _, err := ParseURLWithHost("postgres://db.internal:5432/app"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseURLWithHost("mailto:user@example.com"); err == nil {
		t.Fatal("opaque URL without host accepted")
	}
	if _, err := ParseURLWithHost("/relative/path"); err == nil {
		t.Fatal("relative reference accepted")
	}
}

func TestURLAbsoluteWrapper(t *testing.T) {
	for _, s := range []string{"http://example.com", "git+ssh://host/repo", "mailto:user@example.com"} {
		if _, err := ParseURLAbsolute(s); err != nil {
			t.Fatalf("%s rejected: %v", s, err)
		}
	}
	if _, err := ParseURLAbsolute("/relative/path"); err == nil {
		t.Fatal("relative reference accepted as absolute")
	}
}

func TestURLCanBeBaseWrapper(t *testing.T) {
	base, err := ParseURLCanBeBase("https://example.com/a/b")
	if err != nil {
		t.Fatal(err)
	}
	ref, _ := url.Parse("../c")
	if got := base.Resolve(ref).String(); got != "https://example.com/c" {
		t.Fatalf("resolved %q", got)
	}
	for _, s := range []string{"mailto:user@example.com", "/relative", "data:text/plain,hi"} {
		if _, err := ParseURLCanBeBase(s); err == nil {
			t.Fatalf("%q accepted as a base", s)
		}
	}
}

func TestURLWrapperImmutability(t *testing.T) {
	w, err := ParseURLHTTPS("https://example.com/a")
	if err != nil {
		t.Fatal(err)
	}
	got := w.Value()
	got.Host = "evil.example"
	if w.String() != "https://example.com/a" {
		t.Fatal("mutation through accessor leaked into the wrapper")
	}
	if _, err := NewURLHTTPS((*url.URL)(nil)); err == nil {
		t.Fatal("nil URL accepted")
	}
}
