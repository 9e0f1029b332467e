package main

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/szio/errors"
	"github.com/jmgilman/go/szio/types"
)

// globMeta are the characters that make an argument a doublestar pattern.
const globMeta = "*?[{"

// resolveSources turns command-line arguments into data sources. Plain
// arguments become path-backed sources without touching the disk; patterns
// are expanded to the files they match. A pattern that is invalid or matches
// nothing is taken as a literal path. When stdinName is set, stdin is read
// into a buffer-backed source with that name, appended last.
func resolveSources(args []string, stdinName string, stdin io.Reader, log *slog.Logger) ([]types.DataSource, error) {
	var sources []types.DataSource

	for _, arg := range args {
		for _, path := range expandArg(arg, log) {
			src, err := types.Create(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		}
	}

	if stdinName != "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.FromFS(err, "failed to read standard input")
		}
		src, err := types.Create(data, types.WithName(stdinName))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// expandArg returns the sorted files matched by arg when it is a pattern that
// matches something, and arg itself otherwise.
func expandArg(arg string, log *slog.Logger) []string {
	if !strings.ContainsAny(arg, globMeta) {
		return []string{arg}
	}

	matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
	if err != nil || len(matches) == 0 {
		// A file may carry glob characters in its name, as in
		// "report[1].csv"; a missing one is reported when it is read.
		log.Debug("pattern matched no files, using it as a path", "pattern", arg, "error", err)
		return []string{arg}
	}

	sort.Strings(matches)
	log.Debug("expanded pattern", "pattern", arg, "matches", len(matches))
	return matches
}

// describeAll describes sources concurrently, at most jobs at a time, and
// returns the results in the order of sources.
func describeAll(ctx context.Context, sources []types.DataSource, jobs int, log *slog.Logger) ([]types.Info, error) {
	if jobs < 1 {
		jobs = 1
	}

	infos := make([]types.Info, len(sources))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, src := range sources {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			log.Debug("describing data source", "source", src.String())
			info, err := src.Describe()
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}
