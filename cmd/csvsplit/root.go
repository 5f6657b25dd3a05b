package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shapestone/csvsplit/internal/config"
	"github.com/shapestone/csvsplit/internal/version"
	"github.com/shapestone/csvsplit/pkg/csv"
)

// errUsage marks errors caused by bad flags or configuration.
var errUsage = errors.New("usage error")

// exitCode maps a command error to a process exit status.
func exitCode(err error) int {
	if errors.Is(err, errUsage) {
		return 2
	}
	return 1
}

// app carries state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	delimiter  string
	encoding   string
	output     string
	header     bool
	logLevel   string
	workers    int

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "csvsplit",
		Short:         "Split CSV text into records and fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with default settings")
	pf.StringVarP(&a.delimiter, "delimiter", "d", "comma", "field delimiter: comma, tab or semicolon")
	pf.StringVarP(&a.encoding, "encoding", "e", "utf-8", "text encoding of input files (WHATWG name)")
	pf.StringVarP(&a.output, "output", "o", config.OutputJSON, "output format: json, yaml or table")
	pf.BoolVar(&a.header, "header", false, "treat the first record as column names")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.IntVar(&a.workers, "workers", 0, "files parsed at once (0 = GOMAXPROCS)")

	root.AddCommand(
		newParseCmd(a),
		newFieldsCmd(a),
		newSniffCmd(a),
		newVersionCmd(a),
	)
	return root
}

// configure loads the config file, then applies flags the user set.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		d, err := csv.ParseDelimiter(a.delimiter)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		cfg.Delimiter = d
	}
	if flags.Changed("encoding") {
		cfg.Encoding = a.encoding
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("header") {
		cfg.Header = a.header
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.logger = setupLogger(a.stderr, level)
	return nil
}

func setupLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}
	return slog.New(slog.NewTextHandler(w, opts)).With(
		"service", "csvsplit",
		"version", version.Current,
	)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the csvsplit version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.Current)
			return err
		},
	}
}
