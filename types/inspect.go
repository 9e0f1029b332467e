package types

import (
	"io"

	"github.com/h2non/filetype"
	"github.com/opencontainers/go-digest"

	"github.com/jmgilman/go/szio/errors"
)

// DefaultMediaType is reported for content whose type cannot be sniffed.
const DefaultMediaType = "application/octet-stream"

// sniffLen is the number of leading bytes filetype needs to match every
// type it knows.
const sniffLen = 262

// Info describes the content of a DataSource.
type Info struct {
	Name      string        `json:"name" yaml:"name"`
	Kind      Kind          `json:"kind" yaml:"kind"`
	Path      string        `json:"path,omitempty" yaml:"path,omitempty"`
	Size      int64         `json:"size" yaml:"size"`
	Digest    digest.Digest `json:"digest" yaml:"digest"`
	MediaType string        `json:"mediaType" yaml:"mediaType"`
}

// Exists reports whether the content is available. Buffer-backed sources
// always exist; path-backed sources ask their filesystem.
func (d DataSource) Exists() (bool, error) {
	switch d.kind {
	case KindPath:
		ok, err := d.FS().Exists(d.filepath.String())
		if err != nil {
			return false, d.annotate(errors.FromFS(err, "failed to check data source"))
		}
		return ok, nil
	case KindBuffer:
		return true, nil
	default:
		return false, errUninitialized()
	}
}

// Size returns the content length in bytes. Path-backed sources are sized
// with a stat and are not read.
func (d DataSource) Size() (int64, error) {
	switch d.kind {
	case KindPath:
		name := d.filepath.String()
		info, err := d.FS().Stat(name)
		if err != nil {
			return 0, d.annotate(errors.FromFSf(err, "failed to stat data source %q", name))
		}
		if info.IsDir() {
			return 0, d.annotate(errors.Newf(errors.CodeInvalidInput, "data source %q is a directory", name))
		}
		return info.Size(), nil
	case KindBuffer:
		return int64(len(d.data)), nil
	default:
		return 0, errUninitialized()
	}
}

// Digest returns the canonical (sha256) digest of the content.
func (d DataSource) Digest() (digest.Digest, error) {
	if d.kind == KindBuffer {
		return digest.FromBytes(d.data), nil
	}

	var dgst digest.Digest
	err := d.With(func(s Stream) error {
		var err error
		dgst, err = digest.FromReader(s)
		if err != nil {
			return d.annotate(errors.FromFS(err, "failed to digest data source"))
		}
		return nil
	})
	return dgst, err
}

// MediaType sniffs the media type from the leading bytes of the content.
// Content of an unknown type, including empty content, is reported as
// DefaultMediaType.
func (d DataSource) MediaType() (string, error) {
	var mediaType string
	err := d.With(func(s Stream) error {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(s, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return d.annotate(errors.FromFS(err, "failed to read data source"))
		}
		mediaType = sniff(head[:n])
		return nil
	})
	return mediaType, err
}

// Describe reads the content once and reports its size, digest and media
// type.
func (d DataSource) Describe() (Info, error) {
	info := Info{
		Name: d.name,
		Kind: d.kind,
		Path: d.filepath.String(),
	}

	err := d.With(func(s Stream) error {
		digester := digest.Canonical.Digester()
		head := &headWriter{buf: make([]byte, 0, sniffLen)}

		n, err := io.Copy(io.MultiWriter(digester.Hash(), head), s)
		if err != nil {
			return d.annotate(errors.FromFS(err, "failed to read data source"))
		}

		info.Size = n
		info.Digest = digester.Digest()
		info.MediaType = sniff(head.buf)
		return nil
	})
	if err != nil {
		return Info{}, err
	}
	return info, nil
}

func sniff(head []byte) string {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return DefaultMediaType
	}
	return kind.MIME.Value
}

// headWriter keeps the first cap(buf) bytes written to it and discards the rest.
type headWriter struct {
	buf []byte
}

func (h *headWriter) Write(p []byte) (int, error) {
	if room := cap(h.buf) - len(h.buf); room > 0 {
		if len(p) < room {
			room = len(p)
		}
		h.buf = append(h.buf, p[:room]...)
	}
	return len(p), nil
}
