// Command vfgb-report runs the same command-language pipeline as vfgb but,
// instead of printing the basis, renders an HTML chart of each id's
// Buchberger telemetry (basis size and pair-queue length per iteration).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"vFGB/algebra"
	"vFGB/groebner"
	"vFGB/internal/cliutil"
	"vFGB/lang"
	"vFGB/preprocess"
	"vFGB/report"
)

func main() {
	fs := flag.NewFlagSet("vfgb-report", flag.ContinueOnError)
	var simplifyLevel, timeoutMS int
	var outPath string
	fs.IntVar(&simplifyLevel, "simplify", 0, "preprocessing level 0/1/2")
	fs.IntVar(&timeoutMS, "simplify_timeout", 60000, "Buchberger deadline in milliseconds")
	fs.StringVar(&outPath, "out", "vfgb-report.html", "output HTML path")

	// spec.md §6.2: unknown keys warn but continue, rather than the
	// default flag.ExitOnError behavior.
	if err := cliutil.ParseWarnUnknown(fs, os.Args[1:]); err != nil {
		log.Fatalf("vfgb-report: %v", err)
	}

	programs, err := splitPrograms(os.Stdin)
	if err != nil {
		log.Fatalf("vfgb-report: reading input: %v", err)
	}

	var runs []report.Run
	for id, lines := range programs {
		snapshots := runOne(lines, simplifyLevel, timeoutMS)
		runs = append(runs, report.Run{Label: fmt.Sprintf("id %d", id), Snapshots: snapshots})
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("vfgb-report: %v", err)
	}
	defer f.Close()
	if err := report.WriteHTML(f, runs); err != nil {
		log.Fatalf("vfgb-report: %v", err)
	}
	log.Printf("vfgb-report: wrote %s", outPath)
}

func splitPrograms(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	var programs [][]string
	var cur []string
	for scanner.Scan() {
		line := scanner.Text()
		cur = append(cur, line)
		if t := strings.ToLower(strings.TrimSpace(line)); t == "end" || t == "e" {
			programs = append(programs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		programs = append(programs, cur)
	}
	return programs, scanner.Err()
}

func runOne(lines []string, simplifyLevel, timeoutMS int) []groebner.Snapshot {
	ar := algebra.NewArena()
	sess := lang.NewSession(ar)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := sess.ExecuteLine(line); err != nil {
			continue
		}
	}
	hyps := preprocess.Expand(ar, sess.Hyps, simplifyLevel)
	eng := groebner.New(ar, groebner.NewDeadline(timeoutMS))
	res := eng.Run(hyps)
	return res.Snapshots
}
