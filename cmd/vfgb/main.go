// Command vfgb drives the core through the line-based command language
// (spec.md §6): it reads one or more "id" programs from stdin, each
// terminated by its own `end`, fans them out across a worker pool (one
// independent Arena per id, never shared), and writes per-id output in
// ascending id order.
package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"vFGB/algebra"
	"vFGB/groebner"
	"vFGB/internal/cliutil"
	"vFGB/lang"
	"vFGB/preprocess"
)

type config struct {
	groebner  bool
	pretty    bool
	randomize bool
	simplify  int
	timeoutMS int
}

func main() {
	fs := flag.NewFlagSet("vfgb", flag.ContinueOnError)

	groebnerOn, prettyOn, randomizeOn := true, true, false
	fs.Var(&truthyFlag{&groebnerOn}, "groebner", "run Buchberger; false skips it")
	fs.Var(&truthyFlag{&prettyOn}, "pretty", "label outputs with h<i>:/s<i>:/b<i>:")
	fs.Var(&truthyFlag{&randomizeOn}, "randomize", "echo hypotheses via the scrambled pretty-printer")
	fs.Var(&truthyFlag{&randomizeOn}, "rand", "alias of randomize")

	var simplifyLevel int
	fs.IntVar(&simplifyLevel, "simplify", 0, "preprocessing level 0/1/2")
	fs.IntVar(&simplifyLevel, "simp", 0, "alias of simplify")

	var timeoutMS int
	fs.IntVar(&timeoutMS, "simplify_timeout", 60000, "Buchberger deadline in milliseconds")
	fs.IntVar(&timeoutMS, "simp_timeout", 60000, "alias of simplify_timeout")

	var batchSize int
	fs.IntVar(&batchSize, "batch_size", 1, "number of independent problems in one input stream")

	var threads int
	fs.IntVar(&threads, "threads", 1, "worker count for batch fan-out")

	// spec.md §6.2: unknown keys warn but continue, rather than the
	// default flag.ExitOnError behavior.
	if err := cliutil.ParseWarnUnknown(fs, os.Args[1:]); err != nil {
		log.Fatalf("vfgb: %v", err)
	}

	if batchSize < 0 {
		log.Fatalf("vfgb: batch_size must be >= 0")
	}
	if threads < 1 {
		threads = 1
	}

	programs, err := splitPrograms(os.Stdin, batchSize)
	if err != nil {
		log.Fatalf("vfgb: reading input: %v", err)
	}

	cfg := config{groebner: groebnerOn, pretty: prettyOn, randomize: randomizeOn, simplify: simplifyLevel, timeoutMS: timeoutMS}
	buffers := make([]string, len(programs))

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, threads)
	for id, lines := range programs {
		id, lines := id, lines
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()
			buffers[id] = runProgram(id, lines, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("vfgb: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, b := range buffers {
		out.WriteString(b)
	}
}

// splitPrograms groups input lines into independent programs, each ending
// at its own `end`/`e` line (spec.md §6.1/§6.2). batchSize == 0 means read
// until EOF with no cap on the number of programs.
func splitPrograms(r io.Reader, batchSize int) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	var programs [][]string
	var cur []string
	for scanner.Scan() {
		line := scanner.Text()
		cur = append(cur, line)
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "end", "e":
			programs = append(programs, cur)
			cur = nil
			if batchSize > 0 && len(programs) >= batchSize {
				return programs, nil
			}
		}
	}
	if len(cur) > 0 {
		programs = append(programs, cur)
	}
	return programs, scanner.Err()
}

// runProgram runs one id's full pipeline — parse, optional echo/randomize,
// optional preprocessing, optional Buchberger — against its own Arena, and
// returns the complete output for that id (spec.md §6.3's output format).
func runProgram(id int, lines []string, cfg config) string {
	ar := algebra.NewArena()
	sess := lang.NewSession(ar)

	var rnd *lang.Randomizer
	if cfg.randomize {
		var seed [8]byte
		binary.BigEndian.PutUint64(seed[:], uint64(id)+1)
		var err error
		rnd, err = lang.NewRandomizer(seed[:])
		if err != nil {
			cfg.randomize = false
		}
	}

	var out strings.Builder
	hypIdx := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		before := len(sess.Hyps)
		_, err := sess.ExecuteLine(line)
		if err != nil {
			if errors.Is(err, lang.ErrEnd) {
				break
			}
			fmt.Fprintf(&out, " Error: %v\n", err)
			continue
		}
		for i := before; i < len(sess.Hyps); i++ {
			hypIdx++
			h := sess.Hyps[i]
			if cfg.pretty {
				fmt.Fprintf(&out, "h%d: %s\n", hypIdx, h.String())
			}
			if cfg.randomize {
				fmt.Fprintf(&out, "h%d: %s\n", hypIdx, rnd.Scramble(h))
			}
		}
	}

	hyps := preprocess.Expand(ar, sess.Hyps, cfg.simplify)
	if cfg.simplify > 0 {
		fmt.Fprintf(&out, "Expanded to %d hypotheses.\n", len(hyps))
		for i, h := range hyps {
			writeLabeled(&out, cfg.pretty, "s", i+1, h.String())
		}
	}

	if cfg.groebner {
		eng := groebner.New(ar, groebner.NewDeadline(cfg.timeoutMS))
		res := eng.Run(hyps)
		if res.Finished {
			out.WriteString("Finished.\n")
		} else {
			fmt.Fprintf(&out, "Terminated after %dms.\n", cfg.timeoutMS)
		}
		for i, b := range res.Basis {
			label := fmt.Sprintf("b%d [weight=%s]", i+1, b.Stats.Weight.String())
			writeLabeled(&out, cfg.pretty, label, 0, b.String())
		}
	}

	return out.String()
}

func writeLabeled(out *strings.Builder, pretty bool, prefix string, idx int, expr string) {
	if !pretty {
		fmt.Fprintf(out, "%s\n", expr)
		return
	}
	if idx > 0 {
		fmt.Fprintf(out, "%s%d: %s\n", prefix, idx, expr)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", prefix, expr)
}
