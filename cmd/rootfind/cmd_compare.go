package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rootfind/internal/compare"
	"rootfind/internal/config"
	"rootfind/internal/format"
	"rootfind/internal/render"
	"rootfind/pkg/rootfind"
)

type compareOptions struct {
	scenario     string
	scenarioFile string
	parallel     int
	format       string
	series       bool
	conclusions  bool
	methods      []string
	trace        bool
}

func newCompareCmd() *cobra.Command {
	var opts compareOptions
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every method on every function of a scenario and print the comparison",
		Long: `Compare runs bisection (trying each candidate interval in order),
Newton's method and the secant method on every function of a scenario,
then prints per-function results, the comparison table and conclusions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, &opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.scenario, "scenario", config.DefaultScenario, "Built-in scenario name; default $ROOTFIND_SCENARIO")
	f.StringVar(&opts.scenarioFile, "scenario-file", "", "Scenario file (YAML or JSON); overrides --scenario")
	f.IntVar(&opts.parallel, "parallel", 1, "Number of parallel engine runs (1 = serial); default $ROOTFIND_PARALLEL")
	f.StringVar(&opts.format, "format", "ascii", "Output format (ascii, markdown, csv, json)")
	f.BoolVar(&opts.series, "series", false, "Include the per-iterate convergence series of every run")
	f.BoolVar(&opts.conclusions, "conclusions", true, "Include the conclusions footer")
	f.StringSliceVar(&opts.methods, "methods", nil, "Methods to run (bisection, newton, secant); default all")
	f.BoolVar(&opts.trace, "trace", false, "Log every iterate at debug level")
	return cmd
}

func runCompare(cmd *cobra.Command, opts *compareOptions) error {
	sc, err := resolveScenario(cmd, opts)
	if err != nil {
		return err
	}
	methods, err := parseMethods(opts.methods)
	if err != nil {
		return err
	}
	parallel := opts.parallel
	if !cmd.Flags().Changed("parallel") {
		if parallel, err = envInt(envParallel, opts.parallel); err != nil {
			return err
		}
	}

	report, err := compare.Compare(cmd.Context(), compare.Config{
		Scenario: sc,
		Methods:  methods,
		Parallel: parallel,
		Trace:    opts.trace,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	mode, err := format.ParseMode(opts.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, render.Report(report, render.Options{
		Mode:        mode,
		Series:      opts.series,
		Conclusions: opts.conclusions,
	}))
	return err
}

func resolveScenario(cmd *cobra.Command, opts *compareOptions) (*config.Scenario, error) {
	if opts.scenarioFile != "" {
		return config.LoadFromPath(opts.scenarioFile)
	}
	name := opts.scenario
	if !cmd.Flags().Changed("scenario") {
		if v := os.Getenv(envScenario); v != "" {
			name = v
		}
	}
	return config.LoadScenario(name)
}

func parseMethods(names []string) ([]rootfind.Method, error) {
	methods := make([]rootfind.Method, 0, len(names))
	for _, n := range names {
		m, err := rootfind.ParseMethod(n)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}
