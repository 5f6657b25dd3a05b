package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/shapestone/csvsplit/internal/config"
	"github.com/shapestone/csvsplit/pkg/textfmt"
)

// writeValue renders v as JSON or YAML. Table output falls back to YAML
// for values without a tabular shape.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

func writeFiles(w io.Writer, format string, files []fileOutput) error {
	if format != config.OutputTable {
		return writeValue(w, format, files)
	}

	for i, f := range files {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "==> %s <==\n", f.Path); err != nil {
			return err
		}
		rows := f.Records
		if len(f.Headers) > 0 {
			rows = append([][]string{f.Headers}, rows...)
		}
		if err := writeTable(w, rows); err != nil {
			return err
		}
	}
	return nil
}

func writeFields(w io.Writer, format string, fields []string) error {
	if format != config.OutputTable {
		return writeValue(w, format, fields)
	}

	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{strconv.Itoa(i), f}
	}
	return writeTable(w, rows)
}

func writeTable(w io.Writer, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = tableCell(cell)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// tableCell quotes cells that would break the table layout.
func tableCell(s string) string {
	if strings.ContainsAny(s, "\t\r\n") {
		return strconv.Quote(s)
	}
	if strings.ContainsRune(s, '"') {
		return textfmt.Quote(s)
	}
	return s
}
