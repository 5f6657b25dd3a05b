package main

import (
	"github.com/spf13/cobra"

	"github.com/shapestone/csvsplit/pkg/csv"
)

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields TEXT",
		Short: "Split one record's text into fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fields, err := csv.ParseFieldsFromText(args[0], a.cfg.Delimiter)
			if err != nil {
				a.logger.Error("split failed", "kind", csv.KindOf(err).String(), "err", err)
				return err
			}
			return writeFields(a.stdout, a.cfg.Output, fields)
		},
	}
}
