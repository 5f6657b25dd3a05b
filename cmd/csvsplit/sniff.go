package main

import (
	"github.com/spf13/cobra"

	"github.com/shapestone/csvsplit/pkg/csv"
)

// sniffOutput is the rendered result of the sniff command.
type sniffOutput struct {
	Path      string        `json:"path" yaml:"path"`
	Delimiter csv.Delimiter `json:"delimiter" yaml:"delimiter"`
	Header    bool          `json:"header" yaml:"header"`
}

func newSniffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sniff FILE",
		Short: "Guess the delimiter and header row of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runSniff(args[0])
		},
	}
}

func (a *app) runSniff(path string) error {
	opts, err := a.cfg.FileOptions()
	if err != nil {
		return err
	}

	f, err := csv.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sniffer, err := csv.SniffReader(f, opts.Encoding)
	if err != nil {
		return &csv.FileError{Path: path, Err: err}
	}

	out := sniffOutput{
		Path:      path,
		Delimiter: sniffer.DetectDelimiter(),
		Header:    sniffer.HasHeader(),
	}
	a.logger.Debug("sniffed", "path", path, "delimiter", out.Delimiter.String(), "header", out.Header)
	return writeValue(a.stdout, a.cfg.Output, out)
}
