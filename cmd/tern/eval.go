package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tern/internal/driver"
	"tern/internal/eval"
	"tern/internal/render"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <program.tast> [more.tast...]",
	Short: "Evaluate encoded tern programs",
	Long:  `Load msgpack-encoded tern ASTs, evaluate them and print per-statement results and diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Int("jobs", 0, "parallel workers for multiple programs (0 = GOMAXPROCS)")
	evalCmd.Flags().Bool("strict", false, "escalate all silent-empty paths to diagnostics")
}

func runEval(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}

	opts, err := optionsFor(cmd, args[0], strict)
	if err != nil {
		return err
	}

	results, err := driver.RunAll(cmd.Context(), args, opts, jobs)
	if err != nil {
		return err
	}

	hadErrors := false
	for _, res := range results {
		if !quiet && len(results) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s\n", res.Path)
		}
		for i, v := range res.Values {
			fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i, v)
		}
		bag := res.Evaluator.Bag()
		bag.Sort()
		render.WriteDiagnostics(os.Stderr, bag, res.FileSet)
		if bag.HasErrors() {
			hadErrors = true
		}
	}
	if hadErrors {
		os.Exit(1)
	}
	return nil
}

// optionsFor merges the manifest next to the first program with CLI flags.
func optionsFor(cmd *cobra.Command, firstPath string, strict bool) (eval.Options, error) {
	cfg, err := driver.LoadOptions(firstPath)
	if err != nil {
		return eval.Options{}, err
	}
	opts := cfg.Options()

	if maxDiags, err := cmd.Flags().GetInt("max-diagnostics"); err == nil && maxDiags > 0 {
		opts.MaxDiagnostics = maxDiags
	}
	if strict {
		opts.Strict = eval.Strictness{
			UnresolvedIdents: true,
			CallTargets:      true,
			MemberAccess:     true,
			Operands:         true,
			RecordFields:     true,
			IntegerDivision:  true,
		}
	}
	return opts, nil
}
