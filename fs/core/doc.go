// Package core defines the filesystem interfaces that path-backed data
// sources are read through.
//
// A data source never touches storage when it is created; it only records a
// path and the SourceFS it will be opened against. Keeping that filesystem
// behind an interface lets the same data source code read from local disk in
// production and from memory in tests.
//
// # Interface Hierarchy
//
//   - ReadFS: Open, Stat, ReadFile, Exists
//   - SourceFS: ReadFS plus Type, the contract data sources depend on
//   - WriteFS: WriteFile, MkdirAll, used to seed filesystems
//   - FS: SourceFS and WriteFS together, embedding fs.FS
//
// # Usage Example
//
//	func checksum(fsys core.ReadFS, name string) (digest.Digest, error) {
//	    f, err := fsys.Open(name)
//	    if err != nil {
//	        return "", err
//	    }
//	    defer func() { _ = f.Close() }()
//	    return digest.FromReader(f)
//	}
//
// # Stdlib Compatibility
//
// FS embeds fs.FS, so providers also work with fs.ReadFile, fs.WalkDir and
// friends. Errors follow the io/fs conventions: a missing file is reported
// with an error matching fs.ErrNotExist, which the re-exported ErrNotExist
// also matches.
//
// # Provider Implementations
//
// This package contains only interface definitions. The go-billy backed
// LocalFS and MemoryFS live in github.com/jmgilman/go/szio/fs/billy.
package core
