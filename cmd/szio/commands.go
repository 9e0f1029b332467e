package main

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/jmgilman/go/szio/errors"
	"github.com/jmgilman/go/szio/types"
)

var inspectCmd = &cli.Command{
	Name:      "inspect",
	Usage:     "Prints the name, size, media type and digest of data sources",
	ArgsUsage: "[path or pattern]...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   formatText,
			Usage:   "Output format: text, json or yaml",
			EnvVars: []string{"SZIO_FORMAT"},
		},
		&cli.StringFlag{
			Name:  "stdin",
			Usage: "Also read standard input as an in-memory data source with this name",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Value:   4,
			Usage:   "Maximum number of data sources read at the same time",
			EnvVars: []string{"SZIO_JOBS"},
		},
	},
	Action: func(c *cli.Context) error {
		log := newLogger(c.Bool("verbose"))

		if c.NArg() == 0 && c.String("stdin") == "" {
			return errors.New(errors.CodeInvalidInput, "at least one path, pattern or --stdin is required")
		}

		sources, err := resolveSources(c.Args().Slice(), c.String("stdin"), c.App.Reader, log)
		if err != nil {
			return err
		}

		infos, err := describeAll(c.Context, sources, c.Int("jobs"), log)
		if err != nil {
			return err
		}
		return printInfos(c.App.Writer, c.String("format"), infos)
	},
}

var catCmd = &cli.Command{
	Name:      "cat",
	Usage:     "Writes the content of a file to standard output",
	ArgsUsage: "path",
	Action: func(c *cli.Context) error {
		log := newLogger(c.Bool("verbose"))

		if c.NArg() != 1 {
			return errors.Newf(errors.CodeInvalidInput, "cat takes exactly one path, got %d", c.NArg())
		}

		src, err := types.Create(c.Args().First())
		if err != nil {
			return err
		}
		log.Debug("streaming data source", "source", src.String())

		return src.With(func(s types.Stream) error {
			if _, err := io.Copy(c.App.Writer, s); err != nil {
				return errors.FromFS(err, "failed to copy data source")
			}
			return nil
		})
	},
}
