// Command szio inspects and streams data sources from the command line.
package main

import (
	"log/slog"
	"maps"
	"os"
	"runtime/debug"
	"slices"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/jmgilman/go/szio/errors"
)

const fallbackVersion = "v0.1.0-dev"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logFailure(newLogger(false), err)
		os.Exit(exitCode(err))
	}
}

// logFailure logs the serializable form of err, without its cause chain.
func logFailure(log *slog.Logger, err error) {
	resp := errors.ToJSON(err)
	attrs := []any{
		"code", resp.Code,
		"classification", resp.Classification,
	}
	for _, k := range slices.Sorted(maps.Keys(resp.Context)) {
		attrs = append(attrs, k, resp.Context[k])
	}
	log.Error(resp.Message, attrs...)
}

// exitCode maps usage errors to exitUsage and everything else to
// exitFailure.
func exitCode(err error) int {
	if errors.HasCode(err, errors.CodeInvalidInput) || errors.HasCode(err, errors.CodeUnsupportedType) {
		return exitUsage
	}
	return exitFailure
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "szio",
		Version: determineVersion(),
		Usage:   "Inspects and streams files and in-memory buffers as data sources",
		Commands: []*cli.Command{
			inspectCmd,
			catCmd,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log debug output to stderr",
				EnvVars: []string{"SZIO_VERBOSE"},
			},
		},
		Suggest: true,
	}
}

// newLogger returns a text logger on stderr at info level, or debug level
// when verbose is set.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// determineVersion returns the module version from the build info when the
// binary was installed with a version, then the VCS revision, then
// fallbackVersion.
func determineVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok &&
		info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	if v := versioninfo.Revision; v != "unknown" && v != "" {
		if versioninfo.DirtyBuild {
			v += "-dirty"
		}
		return v
	}
	return fallbackVersion
}
