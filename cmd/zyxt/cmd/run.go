package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zyxtlang/zyxt-go/internal/config"
	"github.com/zyxtlang/zyxt-go/internal/debug"
	"github.com/zyxtlang/zyxt-go/internal/interp"
	"github.com/zyxtlang/zyxt-go/internal/pipeline"
	"github.com/zyxtlang/zyxt-go/internal/samples"
)

var (
	demoName    string
	dumpAST     string
	trace       bool
	noTypeCheck bool
	noColor     bool
	configPath  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a catalogued demo program",
	Long: `Run evaluates one of the pre-built sample programs in internal/samples,
standing in for a parser this repository doesn't implement (see "zyxt demos"
for the full catalogue).

Examples:
  # Run the default demo
  zyxt run --demo arithmetic

  # Run with a text AST dump
  zyxt run --demo if-else --dump-ast

  # Run with a JSON AST dump and execution trace
  zyxt run --demo procedure-return --dump-ast=json --trace`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&demoName, "demo", "arithmetic", "name of the catalogued demo program to run")
	runCmd.Flags().StringVar(&dumpAST, "dump-ast", "", `dump the program's AST before running ("text" or "json"; bare --dump-ast means "text")`)
	runCmd.Flags().Lookup("dump-ast").NoOptDefVal = "text"
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace evaluation step by step")
	runCmd.Flags().BoolVar(&noTypeCheck, "no-type-check", false, "skip type checking and evaluate directly")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color in error output")
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML options file (overrides the flags above)")
}

func runDemo(_ *cobra.Command, _ []string) error {
	pr, ok := samples.Get(demoName)
	if !ok {
		names := make([]string, 0, len(samples.All()))
		for _, p := range samples.All() {
			names = append(names, p.Name)
		}
		return fmt.Errorf("unknown demo %q (available: %s)", demoName, strings.Join(names, ", "))
	}

	opts := config.Default()
	opts.TypeCheck = !noTypeCheck
	opts.Color = !noColor
	opts.Trace = trace
	opts.DumpAST = dumpAST
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		opts = loaded
	}

	e := pr.Build()

	if opts.DumpAST != "" {
		doc, err := debug.DumpElement(&e)
		if err != nil {
			return fmt.Errorf("failed to dump AST: %w", err)
		}
		if opts.DumpAST == "json" {
			fmt.Println(doc)
		} else {
			fmt.Println(debug.Get(doc, "@pretty").String())
		}
	}

	var out bytes.Buffer
	ip := interp.New(&out)
	ip.Trace = opts.Trace

	res := pipeline.Run(&e, ip, !opts.TypeCheck)
	os.Stdout.Write(out.Bytes())

	report := pipeline.Report(res, opts.Color, "", demoName)
	if len(res.CheckErrors) > 0 || res.RuntimeErr != nil {
		fmt.Fprint(os.Stderr, report)
		fmt.Fprintf(os.Stderr, "Error: evaluation of demo %q failed\n", demoName)
		os.Exit(0)
		return nil
	}
	fmt.Print(report)
	return nil
}
