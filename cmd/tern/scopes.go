package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tern/internal/driver"
	"tern/internal/render"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes [flags] <program.tast>",
	Short: "Evaluate a program and dump its final scope graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runScopes,
}

func init() {
	scopesCmd.Flags().Bool("strict", false, "escalate all silent-empty paths to diagnostics")
}

func runScopes(cmd *cobra.Command, args []string) error {
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}

	opts, err := optionsFor(cmd, args[0], strict)
	if err != nil {
		return err
	}

	res, err := driver.Run(args[0], opts)
	if err != nil {
		return err
	}

	render.WriteTree(cmd.OutOrStdout(), res.Evaluator.ScopeTree())

	bag := res.Evaluator.Bag()
	bag.Sort()
	render.WriteDiagnostics(os.Stderr, bag, res.FileSet)
	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
