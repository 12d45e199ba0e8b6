package refined

import (
	"os"

	"github.com/promptwire/elicit/foundation"
)

// The filesystem wrappers are the one family whose predicates are not
// pure: they consult the filesystem at construction time. The property
// they certify held at the moment of construction and can be
// invalidated by concurrent filesystem activity afterwards.

func checkPathText(p string) error {
	if p == "" {
		return errf("a non-empty path", "empty string")
	}
	if !foundation.PathNullFree(p) {
		return errf("a path without NUL bytes", "%q", p)
	}
	return nil
}

// PathExists wraps a path that named an existing filesystem entry when
// constructed.
type PathExists struct{ v string }

// NewPathExists validates that p names an existing entry.
func NewPathExists(p string) (PathExists, error) {
	if err := checkPathText(p); err != nil {
		return PathExists{}, err
	}
	if _, err := os.Stat(p); err != nil {
		return PathExists{}, errf("a path naming an existing entry", "%q (%v)", p, err)
	}
	return PathExists{v: p}, nil
}

func (w PathExists) Value() string  { return w.v }
func (w PathExists) Unwrap() string { return w.v }
func (w PathExists) String() string { return w.v }

// PathIsDir wraps a path that named a directory when constructed.
type PathIsDir struct{ v string }

// NewPathIsDir validates that p names a directory.
func NewPathIsDir(p string) (PathIsDir, error) {
	if err := checkPathText(p); err != nil {
		return PathIsDir{}, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return PathIsDir{}, errf("a path naming a directory", "%q (%v)", p, err)
	}
	if !fi.IsDir() {
		return PathIsDir{}, errf("a path naming a directory", "%q (not a directory)", p)
	}
	return PathIsDir{v: p}, nil
}

func (w PathIsDir) Value() string  { return w.v }
func (w PathIsDir) Unwrap() string { return w.v }
func (w PathIsDir) String() string { return w.v }

// PathIsFile wraps a path that named a regular file when constructed.
type PathIsFile struct{ v string }

// NewPathIsFile validates that p names a regular file.
func NewPathIsFile(p string) (PathIsFile, error) {
	if err := checkPathText(p); err != nil {
		return PathIsFile{}, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return PathIsFile{}, errf("a path naming a regular file", "%q (%v)", p, err)
	}
	if !fi.Mode().IsRegular() {
		return PathIsFile{}, errf("a path naming a regular file", "%q (mode %s)", p, fi.Mode())
	}
	return PathIsFile{v: p}, nil
}

func (w PathIsFile) Value() string  { return w.v }
func (w PathIsFile) Unwrap() string { return w.v }
func (w PathIsFile) String() string { return w.v }

// PathReadable wraps a path that the current process could open for
// reading when constructed.
type PathReadable struct{ v string }

// NewPathReadable validates that p can be opened for reading. The probe
// handle is closed immediately; the wrapper holds no descriptor.
func NewPathReadable(p string) (PathReadable, error) {
	if err := checkPathText(p); err != nil {
		return PathReadable{}, err
	}
	f, err := os.Open(p)
	if err != nil {
		return PathReadable{}, errf("a readable path", "%q (%v)", p, err)
	}
	f.Close()
	return PathReadable{v: p}, nil
}

func (w PathReadable) Value() string  { return w.v }
func (w PathReadable) Unwrap() string { return w.v }
func (w PathReadable) String() string { return w.v }
