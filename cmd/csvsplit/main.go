// Command csvsplit splits CSV files into records and fields.
//
// Usage:
//
//	csvsplit parse [--delimiter comma|tab|semicolon] [--encoding NAME] [--output json|yaml|table] FILE...
//	csvsplit fields [--delimiter ...] TEXT
//	csvsplit sniff [--encoding NAME] FILE
//	csvsplit version
//
// Defaults can be kept in a YAML file passed with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "csvsplit: %v\n", err)
		os.Exit(exitCode(err))
	}
}
