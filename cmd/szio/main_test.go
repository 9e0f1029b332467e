package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/szio/errors"
	"github.com/jmgilman/go/szio/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// run executes the app with args and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"szio"}, args...))
	return out.String(), err
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestInspect_JSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "alpha"})

	out, err := run(t, "", "inspect", "--format", "json", filepath.Join(dir, "a.txt"))
	require.NoError(t, err)

	var infos []types.Info
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	require.Equal(t, "a.txt", infos[0].Name)
	require.Equal(t, int64(5), infos[0].Size)
	require.Equal(t, digest.FromString("alpha"), infos[0].Digest)
	require.Equal(t, types.KindPath, infos[0].Kind)
}

func TestInspect_YAMLWithStdin(t *testing.T) {
	out, err := run(t, "from stdin", "inspect", "--format", "yaml", "--stdin", "piped.txt")
	require.NoError(t, err)

	var infos []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	require.Equal(t, "piped.txt", infos[0]["name"])
	require.Equal(t, "buffer", infos[0]["kind"])
	require.Equal(t, 10, infos[0]["size"])
}

func TestInspect_Text(t *testing.T) {
	dir := writeFiles(t, map[string]string{"report.csv": "id,total\n1,2\n"})

	out, err := run(t, "", "inspect", filepath.Join(dir, "report.csv"))
	require.NoError(t, err)

	// Header, separator, one row.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "NAME")
	require.Contains(t, lines[0], "MEDIA TYPE")
	require.Contains(t, lines[2], "report.csv")
	require.Contains(t, lines[2], "path")
	require.Contains(t, lines[2], "13B")
	require.Contains(t, lines[2], types.DefaultMediaType)
	require.Contains(t, lines[2], digest.FromString("id,total\n1,2\n").String())
}

func TestInspect_Glob(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"data/b.bin":       "b",
		"data/a.bin":       "a",
		"data/deep/c.bin":  "c",
		"data/skip.txt":    "skip",
		"data/deep/d.json": "{}",
	})

	out, err := run(t, "", "inspect", "--format", "json", "--jobs", "2", filepath.Join(dir, "data", "**", "*.bin"))
	require.NoError(t, err)

	var infos []types.Info
	require.NoError(t, json.Unmarshal([]byte(out), &infos))

	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	require.Equal(t, []string{"a.bin", "b.bin", "c.bin"}, names)
}

func TestInspect_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "", "inspect")
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = run(t, "", "inspect", filepath.Join(dir, "missing.txt"))
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = run(t, "", "inspect", filepath.Join(dir, "*.nothing"))
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	writeFile := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(writeFile, []byte("x"), 0o644))
	_, err = run(t, "", "inspect", "--format", "xml", writeFile)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestCat(t *testing.T) {
	dir := writeFiles(t, map[string]string{"hello.txt": "hello, world\n"})

	out, err := run(t, "", "cat", filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello, world\n", out)
}

func TestCat_Verbose(t *testing.T) {
	dir := writeFiles(t, map[string]string{"hello.txt": "hi"})

	var out string
	var err error
	require.NotPanics(t, func() {
		out, err = run(t, "", "--verbose", "cat", filepath.Join(dir, "hello.txt"))
	})
	require.NoError(t, err)
	require.Equal(t, "hi", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	require.Contains(t, out, "szio version")
}

func TestInspect_LiteralNameWithGlobCharacters(t *testing.T) {
	dir := writeFiles(t, map[string]string{"report[1].csv": "a,b\n"})

	out, err := run(t, "", "inspect", "--format", "json", filepath.Join(dir, "report[1].csv"))
	require.NoError(t, err)

	var infos []types.Info
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	require.Equal(t, "report[1].csv", infos[0].Name)
}

func TestLogFailure(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	err := errors.WithContext(
		errors.Wrap(os.ErrNotExist, errors.CodeNotFound, "data source not found"),
		"path", "a.txt",
	)
	logFailure(log, err)

	line := buf.String()
	require.Contains(t, line, `msg="data source not found"`)
	require.Contains(t, line, "code=NOT_FOUND")
	require.Contains(t, line, "classification=PERMANENT")
	require.Contains(t, line, "path=a.txt")
	require.NotContains(t, line, "file does not exist")
}

func TestExitCode(t *testing.T) {
	require.Equal(t, exitUsage, exitCode(errors.New(errors.CodeInvalidInput, "x")))
	require.Equal(t, exitUsage, exitCode(errors.New(errors.CodeUnsupportedType, "x")))
	require.Equal(t, exitFailure, exitCode(errors.New(errors.CodeNotFound, "x")))
	require.Equal(t, exitFailure, exitCode(io.ErrUnexpectedEOF))
}

func TestCat_Errors(t *testing.T) {
	_, err := run(t, "", "cat")
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = run(t, "", "cat", filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestResolveSources_PlainArgumentsAreLazy(t *testing.T) {
	sources, err := resolveSources([]string{"does/not/exist.bin"}, "", nil, discardLogger())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Equal(t, "exist.bin", sources[0].Name())
}

func TestResolveSources_UnmatchedPatternIsLiteral(t *testing.T) {
	sources, err := resolveSources([]string{filepath.Join(t.TempDir(), "*.nothing")}, "", nil, discardLogger())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Equal(t, "*.nothing", sources[0].Name())
}

func TestDescribeAll_PreservesOrder(t *testing.T) {
	var sources []types.DataSource
	for _, name := range []string{"one", "two", "three", "four", "five"} {
		sources = append(sources, types.MustCreate([]byte(name), types.WithName(name)))
	}

	infos, err := describeAll(context.Background(), sources, 2, discardLogger())
	require.NoError(t, err)
	require.Len(t, infos, 5)
	for i, src := range sources {
		require.Equal(t, src.Name(), infos[i].Name)
	}
}

func TestDescribeAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := describeAll(ctx, []types.DataSource{types.MustCreate([]byte("x"), types.WithName("x"))}, 0, discardLogger())
	require.ErrorIs(t, err, context.Canceled)
}
