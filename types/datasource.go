package types

import (
	"fmt"
	"reflect"

	"github.com/jmgilman/go/szio/errors"
	"github.com/jmgilman/go/szio/fs/billy"
	"github.com/jmgilman/go/szio/fs/core"
)

// Kind identifies where the content of a DataSource lives.
type Kind int

const (
	// KindUnknown is the Kind of the zero DataSource.
	KindUnknown Kind = iota
	// KindPath marks a source that reads from a filesystem path.
	KindPath
	// KindBuffer marks a source that holds its bytes in memory.
	KindBuffer
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the strings
// produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "path":
		*k = KindPath
	case "buffer":
		*k = KindBuffer
	case "unknown":
		*k = KindUnknown
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "unknown data source kind %q", text),
			"kind", string(text),
		)
	}
	return nil
}

// localFS is the filesystem path-backed sources open against unless WithFS
// says otherwise.
var localFS core.SourceFS = billy.NewLocal()

// DataSource references binary content either by filesystem path or by an
// in-memory buffer. It is an immutable value: construct it with Create and
// read it with Open.
//
// Exactly one of Filepath and Data is meaningful, depending on Kind. The zero
// DataSource is not usable; Open on it fails.
type DataSource struct {
	kind     Kind
	filepath Path
	data     []byte
	name     string
	fsys     core.SourceFS
}

// Option configures Create.
type Option func(*options)

type options struct {
	name string
	fsys core.SourceFS
}

// WithName sets the name of a buffer-backed source. It is required for byte
// slices and ignored for paths, whose name is always their base name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithFS sets the filesystem a path-backed source is opened against.
// A nil fsys keeps the default local filesystem. Ignored for byte slices.
func WithFS(fsys core.SourceFS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// Create normalizes source into a DataSource.
//
// Accepted sources:
//
//   - string: path-backed; the string is cleaned into a Path
//   - Path: path-backed; stored exactly as given
//   - PathLike: path-backed; FSPath() is cleaned into a Path
//   - []byte: buffer-backed; requires WithName, stored without copying
//
// Any other type fails with errors.CodeUnsupportedType. Create never touches
// the filesystem; a missing file is reported by Open.
func Create(source any, opts ...Option) (DataSource, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch s := source.(type) {
	case Path:
		return newPathSource(s, o)
	case string:
		return newPathSource(NewPath(s), o)
	case []byte:
		return newBufferSource(s, o)
	case PathLike:
		if isNilPointer(s) {
			return DataSource{}, unsupportedType("nil " + fmt.Sprintf("%T", source))
		}
		return newPathSource(NewPath(s.FSPath()), o)
	default:
		return DataSource{}, unsupportedType(fmt.Sprintf("%T", source))
	}
}

func unsupportedType(typeName string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeUnsupportedType, "Unsupported source type: %s", typeName),
		"type", typeName,
	)
}

// isNilPointer reports whether v is a typed nil pointer, whose FSPath method
// would dereference nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// FromPath is Create for a path string.
func FromPath(path string, opts ...Option) (DataSource, error) {
	return Create(path, opts...)
}

// FromBytes is Create for a byte slice and its name.
func FromBytes(data []byte, name string) (DataSource, error) {
	return Create(data, WithName(name))
}

// MustCreate is like Create but panics on error.
// It is intended for tests and package-level tables.
func MustCreate(source any, opts ...Option) DataSource {
	ds, err := Create(source, opts...)
	if err != nil {
		panic(err)
	}
	return ds
}

func newPathSource(p Path, o options) (DataSource, error) {
	if !p.hasBase() {
		return DataSource{}, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "path %q does not name a file", p),
			"path", p.String(),
		)
	}

	return DataSource{
		kind:     KindPath,
		filepath: p,
		name:     p.Base(),
		fsys:     o.fsys,
	}, nil
}

func newBufferSource(data []byte, o options) (DataSource, error) {
	if o.name == "" {
		return DataSource{}, errors.New(errors.CodeInvalidInput, "name is required for buffer-backed data sources")
	}

	return DataSource{
		kind: KindBuffer,
		data: data,
		name: o.name,
	}, nil
}

// Kind returns whether the source is path- or buffer-backed.
func (d DataSource) Kind() Kind {
	return d.kind
}

// Name returns the display name: the base name of the path for path-backed
// sources, the name given to Create for buffer-backed ones.
func (d DataSource) Name() string {
	return d.name
}

// Filepath returns the path of a path-backed source, or "" otherwise.
func (d DataSource) Filepath() Path {
	return d.filepath
}

// Data returns the bytes of a buffer-backed source, or nil otherwise.
// The returned slice is the one passed to Create.
func (d DataSource) Data() []byte {
	return d.data
}

// FS returns the filesystem a path-backed source is opened against, or nil
// for other kinds.
func (d DataSource) FS() core.SourceFS {
	if d.kind != KindPath {
		return nil
	}
	if d.fsys == nil {
		return localFS
	}
	return d.fsys
}

// String returns "path:<path>" or "buffer:<name> (<n> bytes)".
func (d DataSource) String() string {
	switch d.kind {
	case KindPath:
		return "path:" + d.filepath.String()
	case KindBuffer:
		return fmt.Sprintf("buffer:%s (%d bytes)", d.name, len(d.data))
	default:
		return "unknown"
	}
}

// annotate attaches the fields identifying d to err.
func (d DataSource) annotate(err error) errors.PlatformError {
	ctx := map[string]interface{}{"name": d.name, "kind": d.kind.String()}
	if d.kind == KindPath {
		ctx["path"] = d.filepath.String()
	}
	return errors.WithContextMap(err, ctx)
}

func errUninitialized() errors.PlatformError {
	return errors.New(errors.CodeInvalidInput, "data source is not initialized; use Create")
}
