// Command coalesce reads one propositional formula from the command
// line and searches for a classical proof by n-dimensional token
// coalescence, per spec.md §6's CLI contract. Exit status equals the
// dimension at which a proof closed, or -1 on failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/segmentio/encoding/json"
	"go.uber.org/zap"

	"github.com/adamlassiter/coalescence/formula"
	"github.com/adamlassiter/coalescence/parse"
	"github.com/adamlassiter/coalescence/pretty"
	"github.com/adamlassiter/coalescence/search"
)

type jsonReport struct {
	Success      bool   `json:"success"`
	Dimension    int    `json:"dimension"`
	ElapsedMicro int64  `json:"elapsed_micro"`
	Formula      string `json:"formula"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("coalesce", flag.ContinueOnError)
	fs.SetOutput(stderr)

	topOptimise := fs.Bool("t", false, "enable the subproof-substitution optimisation")
	latexMode := fs.Bool("latex", false, "print formulas and substitutions in LaTeX form")
	jsonOut := fs.Bool("json", false, "emit a JSON report instead of text")
	verbose := fs.Bool("v", false, "log per-dimension search progress")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: coalesce [-t] [-latex] [-json] [-v] <formula>")
		return 1
	}

	f, err := parse.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "parse error: %v\n", err)
		return 1
	}

	logger := zap.NewNop()
	if *verbose {
		built, buildErr := zap.NewDevelopment()
		if buildErr == nil {
			logger = built
		}
		defer logger.Sync()
	}

	opts := search.Options{
		TopOptimise: *topOptimise,
		Suppress:    !(*topOptimise || *latexMode),
		Hook:        pretty.SubstitutionHook(stdout, *latexMode),
		OnProgress: func(n int, current *formula.Node) {
			logger.Info("attempting dimension",
				zap.Int("dimension", n),
				zap.String("formula", pretty.Print(current, false)))
		},
	}

	start := time.Now()
	res := search.Search(f, opts)
	elapsed := time.Since(start)

	if *jsonOut {
		report := jsonReport{
			Success:      res.Success(),
			Dimension:    res.Dimension,
			ElapsedMicro: elapsed.Microseconds(),
			Formula:      pretty.Print(f, *latexMode),
		}
		enc := json.NewEncoder(stdout)
		enc.Encode(report)
	} else {
		printReport(stdout, res, elapsed)
	}

	if res.Success() {
		return res.Dimension
	}
	return -1
}

func printReport(w io.Writer, res search.Result, elapsed time.Duration) {
	if res.Success() {
		color.New(color.FgGreen, color.Bold).Fprintf(w, "Solution in %d dimensions.\n", res.Dimension)
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(w, "No solution found (up to %d dimensions).\n", -res.Dimension-1)
	}
	fmt.Fprintf(w, "Time taken: %s\n", elapsed)
}
