// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps osfs and reads from disk; MemoryFS wraps memfs and is meant
// for tests and for callers that assemble content in memory before handing
// path-backed data sources to other code.
//
// Usage:
//
//	// Local disk, relative names resolved against the working directory
//	local := billy.NewLocal()
//
//	// Local disk, relative names resolved against a fixed directory
//	scoped := billy.NewLocal(billy.WithBaseDir("/srv/data"))
//
//	// In memory
//	mem := billy.NewMemory()
//	err := mem.WriteFile("input.bin", payload, 0o644)
//
//	src, err := types.Create("input.bin", types.WithFS(mem))
//
// # Errors
//
// Open and Stat always report failures as *fs.PathError carrying the
// resolved name, so errors.Is(err, fs.ErrNotExist) works for both backends.
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
