// Package cliutil holds small flag-parsing helpers shared by cmd/vfgb and
// cmd/vfgb-report.
package cliutil

import (
	"flag"
	"log"
	"strings"
)

// ParseWarnUnknown parses args against fs, warning and skipping any
// unrecognized flag instead of exiting (spec.md §6.2: "unknown keys warn
// but continue"). fs must be constructed with flag.ContinueOnError so a
// bad flag surfaces as an error here instead of calling os.Exit itself.
func ParseWarnUnknown(fs *flag.FlagSet, args []string) error {
	const prefix = "flag provided but not defined: "
	for {
		err := fs.Parse(args)
		if err == nil {
			return nil
		}
		msg := err.Error()
		if !strings.HasPrefix(msg, prefix) {
			return err
		}
		log.Printf("warning: unknown flag %q ignored", strings.TrimPrefix(msg, prefix))
		args = fs.Args()
	}
}
