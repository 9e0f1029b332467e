package billy

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/szio/fs/core"
	"github.com/jmgilman/go/szio/fs/fstest"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewLocal(WithBaseDir(t.TempDir()))
	})
}

func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return NewMemory()
	})
}

func TestLocalFS_Type(t *testing.T) {
	require.Equal(t, core.FSTypeLocal, NewLocal().Type())
}

func TestMemoryFS_Type(t *testing.T) {
	require.Equal(t, core.FSTypeMemory, NewMemory().Type())
}

func TestUnwrap(t *testing.T) {
	require.NotNil(t, NewLocal().Unwrap())

	mfs := NewMemory()
	bf, err := mfs.Unwrap().Create("direct.txt")
	require.NoError(t, err)
	_, err = bf.Write([]byte("direct"))
	require.NoError(t, err)
	require.NoError(t, bf.Close())

	data, err := mfs.ReadFile("direct.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("direct"), data)
}

func TestLocalFS_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.txt")
	require.NoError(t, os.WriteFile(path, []byte("absolute"), 0o644))

	// The base directory does not apply to absolute names.
	lfs := NewLocal(WithBaseDir(t.TempDir()))
	data, err := lfs.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("absolute"), data)
}

func TestLocalFS_RelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "rel.txt"), []byte("relative"), 0o644))

	lfs := NewLocal(WithBaseDir(dir))
	data, err := lfs.ReadFile("nested/rel.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("relative"), data)

	data, err = lfs.ReadFile("nested/../nested/rel.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("relative"), data)
}

func TestLocalFS_RelativeToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cwd.txt"), []byte("cwd"), 0o644))
	t.Chdir(dir)

	data, err := NewLocal().ReadFile("cwd.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("cwd"), data)
}

func TestOpen_NotExistIsPathError(t *testing.T) {
	for _, fsys := range []core.FS{NewLocal(WithBaseDir(t.TempDir())), NewMemory()} {
		_, err := fsys.Open("missing.txt")
		require.Error(t, err)

		var pathErr *iofs.PathError
		require.True(t, errors.As(err, &pathErr))
		require.Equal(t, "open", pathErr.Op)
		require.True(t, errors.Is(err, iofs.ErrNotExist))
		require.Equal(t, "missing.txt", filepath.Base(pathErr.Path))
	}
}

func TestStat_NotExistIsPathError(t *testing.T) {
	_, err := NewMemory().Stat("missing.txt")

	var pathErr *iofs.PathError
	require.True(t, errors.As(err, &pathErr))
	require.Equal(t, "stat", pathErr.Op)
	require.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestFile_Accessors(t *testing.T) {
	mfs := NewMemory()
	require.NoError(t, mfs.WriteFile("dir/file.bin", []byte("0123456789"), 0o644))

	f, err := mfs.Open("dir/./file.bin")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	file, ok := f.(*File)
	require.True(t, ok)
	require.Equal(t, "dir/file.bin", file.Name())

	info, err := file.Stat()
	require.NoError(t, err)
	require.Equal(t, int64(10), info.Size())

	pos, err := file.Seek(5, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(5), pos)

	rest, err := io.ReadAll(file)
	require.NoError(t, err)
	require.Equal(t, []byte("56789"), rest)
}

func TestWriteFile_Truncates(t *testing.T) {
	mfs := NewMemory()
	require.NoError(t, mfs.WriteFile("f.txt", []byte("long content"), 0o644))
	require.NoError(t, mfs.WriteFile("f.txt", []byte("short"), 0o644))

	data, err := mfs.ReadFile("f.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("short"), data)
}
