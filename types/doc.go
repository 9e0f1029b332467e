// Package types provides DataSource, a single value type for binary content
// that lives either at a filesystem path or in a byte slice.
//
// Callers that serialize or upload content accept a DataSource and call Open
// without caring where the bytes come from:
//
//	src, err := types.Create("testdata/payload.bin")
//	if err != nil {
//	    return err
//	}
//	err = src.With(func(s types.Stream) error {
//	    _, err := io.Copy(dst, s)
//	    return err
//	})
//
// # Construction
//
// Create accepts a string, a Path, any PathLike, or a []byte together with
// WithName. Paths are normalized and named after their last element; nothing
// is read or checked on disk until Open. Byte slices are kept as given.
// Unsupported types fail with errors.CodeUnsupportedType and a message
// containing "Unsupported source type".
//
// # Reading
//
// Open returns a new Stream starting at offset zero on every call. Path-backed
// sources re-open the file each time. With and ReadAll close the stream on
// every exit path.
//
// # Inspection
//
// Size, Digest, MediaType and Describe report on the content. Digests use the
// canonical algorithm of github.com/opencontainers/go-digest, media types are
// sniffed with github.com/h2non/filetype.
//
// # Filesystems
//
// Path-backed sources read from the local disk by default. WithFS points them
// at any core.SourceFS, such as an in-memory billy.MemoryFS.
package types
