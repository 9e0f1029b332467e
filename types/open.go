package types

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/jmgilman/go/szio/errors"
)

// Stream is a readable, seekable handle on the content of a DataSource.
// It must be closed when no longer needed. Streams are not safe for
// concurrent use.
type Stream interface {
	io.ReadSeekCloser
}

// Open returns a new Stream positioned at the start of the content.
//
// For a path-backed source the file is opened on every call, so changes on
// disk are visible to later opens. A missing file fails with
// errors.CodeNotFound (matching fs.ErrNotExist), a permission problem with
// errors.CodeForbidden, and a directory with errors.CodeInvalidInput.
//
// For a buffer-backed source the stream reads the buffer and holds no OS
// resource, but it still must be closed: reads after Close fail with
// fs.ErrClosed, as they would for a file.
func (d DataSource) Open() (Stream, error) {
	switch d.kind {
	case KindPath:
		return d.openPath()
	case KindBuffer:
		return newBufferStream(d.data), nil
	default:
		return nil, errUninitialized()
	}
}

func (d DataSource) openPath() (Stream, error) {
	name := d.filepath.String()

	f, err := d.FS().Open(name)
	if err != nil {
		return nil, d.annotate(errors.FromFSf(err, "failed to open data source %q", name))
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, d.annotate(errors.FromFSf(err, "failed to stat data source %q", name))
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, d.annotate(errors.Newf(errors.CodeInvalidInput, "data source %q is a directory", name))
	}

	if stream, ok := f.(Stream); ok {
		return stream, nil
	}
	return &unseekableStream{File: f}, nil
}

// With opens the source, passes the stream to fn and closes the stream when
// fn returns or panics. An error from fn takes precedence over an error from
// Close.
func (d DataSource) With(fn func(Stream) error) (err error) {
	stream, err := d.Open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil && err == nil {
			err = d.annotate(errors.FromFS(closeErr, "failed to close data source"))
		}
	}()

	return fn(stream)
}

// ReadAll opens the source and reads it to the end.
func (d DataSource) ReadAll() ([]byte, error) {
	var data []byte
	err := d.With(func(s Stream) error {
		var err error
		data, err = io.ReadAll(s)
		if err != nil {
			return d.annotate(errors.FromFS(err, "failed to read data source"))
		}
		return nil
	})
	return data, err
}

// bufferStream is the Stream of a buffer-backed source.
type bufferStream struct {
	r      *bytes.Reader
	closed bool
}

func newBufferStream(data []byte) *bufferStream {
	return &bufferStream{r: bytes.NewReader(data)}
}

func (b *bufferStream) Read(p []byte) (int, error) {
	if b.closed {
		return 0, fs.ErrClosed
	}
	return b.r.Read(p)
}

func (b *bufferStream) Seek(offset int64, whence int) (int64, error) {
	if b.closed {
		return 0, fs.ErrClosed
	}
	return b.r.Seek(offset, whence)
}

// Close releases the stream. Closing twice is a no-op.
func (b *bufferStream) Close() error {
	b.closed = true
	return nil
}

// unseekableStream adapts an fs.File without io.Seeker, as returned by a
// SourceFS outside this module.
type unseekableStream struct {
	fs.File
}

func (u *unseekableStream) Seek(int64, int) (int64, error) {
	return 0, errors.New(errors.CodeIO, "stream does not support seeking")
}

var (
	_ Stream = (*bufferStream)(nil)
	_ Stream = (*unseekableStream)(nil)
)
