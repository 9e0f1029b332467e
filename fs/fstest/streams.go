package fstest

import (
	"bytes"
	"io"
	"testing"

	"github.com/jmgilman/go/szio/fs/core"
)

// TestStreams tests the handle semantics data sources depend on: every Open
// returns an independent handle starting at offset zero, handles can seek,
// and a rewritten file is re-read on the next Open.
func TestStreams(t *testing.T, filesystem core.FS) {
	seed(t, filesystem)

	t.Run("IndependentHandles", func(t *testing.T) {
		testStreamsIndependent(t, filesystem)
	})
	t.Run("Seek", func(t *testing.T) {
		testStreamsSeek(t, filesystem)
	})
	t.Run("ReopenSeesNewContent", func(t *testing.T) {
		testStreamsReopen(t, filesystem)
	})
}

func testStreamsIndependent(t *testing.T, filesystem core.FS) {
	first, err := filesystem.Open(testFile)
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", testFile, err)
	}
	defer func() { _ = first.Close() }()

	prefix := make([]byte, 4)
	if _, err := io.ReadFull(first, prefix); err != nil {
		t.Fatalf("ReadFull(): got error %v, want nil", err)
	}

	second, err := filesystem.Open(testFile)
	if err != nil {
		t.Fatalf("Open(%q) second time: got error %v, want nil", testFile, err)
	}
	defer func() { _ = second.Close() }()

	data, err := io.ReadAll(second)
	if err != nil {
		t.Fatalf("ReadAll(second): got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(second): got %q, want %q", data, testContent)
	}

	rest, err := io.ReadAll(first)
	if err != nil {
		t.Fatalf("ReadAll(first): got error %v, want nil", err)
	}
	if !bytes.Equal(rest, testContent[4:]) {
		t.Errorf("ReadAll(first): got %q, want %q", rest, testContent[4:])
	}
}

func testStreamsSeek(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Open(testFile)
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", testFile, err)
	}
	defer func() { _ = f.Close() }()

	seeker, ok := f.(io.Seeker)
	if !ok {
		t.Fatalf("Open(%q): handle %T does not implement io.Seeker", testFile, f)
	}

	if _, err := io.ReadAll(f); err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	pos, err := seeker.Seek(0, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
	}
	if pos != 0 {
		t.Errorf("Seek(0, SeekStart): got position %d, want 0", pos)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() after seek: got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll() after seek: got %q, want %q", data, testContent)
	}
}

func testStreamsReopen(t *testing.T, filesystem core.FS) {
	const name = "testdir/rewritten.txt"
	updated := []byte("second version")

	if err := filesystem.WriteFile(name, []byte("first version"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
	if _, err := filesystem.ReadFile(name); err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if err := filesystem.WriteFile(name, updated, 0o644); err != nil {
		t.Fatalf("WriteFile(%q) again: got error %v, want nil", name, err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q) again: got error %v, want nil", name, err)
	}
	if !bytes.Equal(data, updated) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, data, updated)
	}
}
