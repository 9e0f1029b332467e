package main

import (
	"encoding/json"
	"io"

	"github.com/docker/go-units"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/szio/errors"
	"github.com/jmgilman/go/szio/types"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func printInfos(w io.Writer, format string, infos []types.Info) error {
	switch format {
	case formatText:
		printTable(w, infos)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "unknown output format %q", format),
			"format", format,
		)
	}
}

func printTable(w io.Writer, infos []types.Info) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Kind", "Size", "Media Type", "Digest"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Name,
			info.Kind,
			units.HumanSize(float64(info.Size)),
			info.MediaType,
			info.Digest,
		})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}
