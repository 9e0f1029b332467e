package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/szio/fs/core"
)

const (
	testDir  = "testdir"
	testFile = "testdir/testfile.txt"
)

var testContent = []byte("test file content")

// seed writes the shared fixture into filesystem.
func seed(t *testing.T, filesystem core.FS) {
	t.Helper()

	if err := filesystem.MkdirAll(testDir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", testDir, err)
	}
	if err := filesystem.WriteFile(testFile, testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", testFile, err)
	}
}

// TestReadFS tests Open, Stat, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	seed(t, filesystem)

	t.Run("Open", func(t *testing.T) {
		testReadFSOpen(t, filesystem)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem)
	})
	t.Run("StatNotExist", func(t *testing.T) {
		testReadFSStatNotExist(t, filesystem)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem)
	})
	t.Run("ExistsFile", func(t *testing.T) {
		testReadFSExists(t, filesystem, testFile, true)
	})
	t.Run("ExistsDir", func(t *testing.T) {
		testReadFSExists(t, filesystem, testDir, true)
	})
	t.Run("ExistsNotExist", func(t *testing.T) {
		testReadFSExists(t, filesystem, "nonexistent", false)
	})
}

func testReadFSOpen(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Open(testFile)
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", testFile, err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(): got %q, want %q", data, testContent)
	}
}

func testReadFSStatFile(t *testing.T, filesystem core.FS) {
	info, err := filesystem.Stat(testFile)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", testFile, err)
		return
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", testFile)
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", testFile, info.Size(), len(testContent))
	}
	if info.Name() != "testfile.txt" {
		t.Errorf("Stat(%q): Name() = %q, want %q", testFile, info.Name(), "testfile.txt")
	}
}

func testReadFSStatNotExist(t *testing.T, filesystem core.FS) {
	_, err := filesystem.Stat("nonexistent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
	}
}

func testReadFSReadFile(t *testing.T, filesystem core.FS) {
	data, err := filesystem.ReadFile(testFile)
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", testFile, err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", testFile, data, testContent)
	}
}

func testReadFSOpenNotExist(t *testing.T, filesystem core.FS) {
	_, err := filesystem.Open("nonexistent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
	}
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want core.ErrNotExist", "nonexistent", err)
	}
}

func testReadFSExists(t *testing.T, filesystem core.FS, name string, want bool) {
	exists, err := filesystem.Exists(name)
	if err != nil {
		t.Errorf("Exists(%q): got error %v, want nil", name, err)
		return
	}
	if exists != want {
		t.Errorf("Exists(%q): got %v, want %v", name, exists, want)
	}
}
