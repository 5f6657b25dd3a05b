package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/csvsplit/pkg/csv"
)

// fileOutput is the rendered result of one parsed file.
type fileOutput struct {
	Path    string     `json:"path" yaml:"path"`
	Headers []string   `json:"headers,omitempty" yaml:"headers,omitempty"`
	Records [][]string `json:"records" yaml:"records"`
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse CSV files into records",
		Long: "Parse each file into records and fields. Files that fail to parse are " +
			"logged and skipped; the command exits non-zero if any file failed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runParse(args)
		},
	}
}

func (a *app) runParse(paths []string) error {
	opts, err := a.cfg.FileOptions()
	if err != nil {
		return err
	}

	a.logger.Debug("parsing files",
		"files", len(paths),
		"delimiter", opts.Delimiter.String(),
		"encoding", csv.EncodingName(opts.Encoding))

	outputs := make([]fileOutput, 0, len(paths))
	failed := 0
	for _, res := range csv.ParseFiles(paths, opts) {
		if res.Err != nil {
			failed++
			a.logger.Error("parse failed",
				"path", res.Path,
				"kind", csv.KindOf(res.Err).String(),
				"err", res.Err)
			continue
		}

		out := fileOutput{Path: res.Path, Records: res.Records}
		if a.cfg.Header {
			out.Headers, out.Records = splitHeader(res.Records)
		}
		a.logger.Debug("parsed", "path", res.Path, "records", len(out.Records))
		outputs = append(outputs, out)
	}

	if err := writeFiles(a.stdout, a.cfg.Output, outputs); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// splitHeader separates the first record as column names.
func splitHeader(records [][]string) ([]string, [][]string) {
	doc := csv.NewDocument()
	for _, record := range records {
		doc.AddRecord(record)
	}
	doc.UseFirstRecordAsHeaders()

	rows := make([][]string, 0, doc.RecordCount())
	for _, record := range doc.Records() {
		rows = append(rows, record.Fields())
	}
	return doc.Headers(), rows
}
