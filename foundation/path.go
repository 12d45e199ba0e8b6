package foundation

import "path/filepath"

// PathNullFree reports whether p contains no embedded NUL byte. Paths
// with NUL bytes are rejected on every platform.
func PathNullFree(p string) bool {
	for i := 0; i < len(p); i++ {
		if p[i] == 0 {
			return false
		}
	}
	return true
}

// PathAbsolute reports whether p begins with the platform's root marker.
func PathAbsolute(p string) bool { return filepath.IsAbs(p) }

// PathRelative reports whether p is NUL-free and not absolute.
func PathRelative(p string) bool { return PathNullFree(p) && !PathAbsolute(p) }
