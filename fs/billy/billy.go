package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/szio/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
// Relative names are resolved against the base directory, which defaults to
// the process working directory at the time of each call.
type LocalFS struct {
	filesystem
	baseDir string
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
// Names are used as given, after cleaning.
type MemoryFS struct {
	filesystem
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	baseDir string
}

// WithBaseDir resolves relative names of a LocalFS against dir instead of the
// working directory. It has no effect on MemoryFS.
func WithBaseDir(dir string) Option {
	return func(c *config) {
		c.baseDir = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
func NewLocal(opts ...Option) *LocalFS {
	cfg := newConfig(opts)
	lfs := &LocalFS{baseDir: cfg.baseDir}
	lfs.filesystem = filesystem{bfs: osfs.New("/"), resolve: lfs.resolve}
	return lfs
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		filesystem: filesystem{bfs: memfs.New(), resolve: normalize},
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Type returns core.FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns core.FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// resolve makes name absolute so the osfs root of "/" does not reinterpret
// relative names.
func (lfs *LocalFS) resolve(name string) string {
	if !filepath.IsAbs(name) {
		base := lfs.baseDir
		if base == "" {
			if wd, err := os.Getwd(); err == nil {
				base = wd
			}
		}
		name = filepath.Join(base, name)
	}
	return normalize(name)
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// filesystem holds the operations shared by LocalFS and MemoryFS.
type filesystem struct {
	bfs     billy.Filesystem
	resolve func(string) string
}

// Unwrap returns the underlying billy.Filesystem.
func (f *filesystem) Unwrap() billy.Filesystem {
	return f.bfs
}

// Open opens the named file for reading.
// Returns a *File, which implements fs.File and io.Seeker.
func (f *filesystem) Open(name string) (fs.File, error) {
	name = f.resolve(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: unwrapPathError(err)}
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (f *filesystem) Stat(name string) (fs.FileInfo, error) {
	name = f.resolve(name)
	info, err := f.bfs.Stat(name)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: unwrapPathError(err)}
	}
	return info, nil
}

// ReadFile reads the named file and returns its contents.
func (f *filesystem) ReadFile(name string) ([]byte, error) {
	file, err := f.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return io.ReadAll(file)
}

// Exists reports whether the named file or directory exists.
func (f *filesystem) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(f.resolve(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *filesystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	bf, err := f.bfs.OpenFile(f.resolve(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = bf.Write(data)
	if closeErr := bf.Close(); err == nil {
		err = closeErr
	}
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *filesystem) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(f.resolve(path), perm)
}

// unwrapPathError strips an existing *fs.PathError so errors are not
// reported with the path twice.
func unwrapPathError(err error) error {
	if pe, ok := err.(*fs.PathError); ok {
		return pe.Err
	}
	return err
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
