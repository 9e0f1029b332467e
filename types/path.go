package types

import (
	"path/filepath"
)

// PathLike is implemented by values that can be used as a filesystem path.
// Create accepts any PathLike as a path-backed source.
type PathLike interface {
	// FSPath returns the path in the platform's native form.
	FSPath() string
}

// Path is a normalized filesystem path.
//
// A Path built with NewPath is cleaned with filepath.Clean. Converting a
// string directly (Path("a/b")) skips normalization; Create stores such a
// value unchanged.
type Path string

// NewPath returns the normalized Path for p.
func NewPath(p string) Path {
	return Path(filepath.Clean(p))
}

// FSPath implements PathLike.
func (p Path) FSPath() string {
	return string(p)
}

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

// hasBase reports whether the path has a final component usable as a name.
func (p Path) hasBase() bool {
	if p == "" {
		return false
	}
	base := p.Base()
	return base != "." && base != ".." && base != string(filepath.Separator)
}

var _ PathLike = Path("")
