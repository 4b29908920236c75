// Package cmd wires the gobasic CLI's Cobra commands; grounded on go-dws's
// cmd/dwscript/cmd package shape (a package-scoped rootCmd plus one file per
// subcommand registered from init()).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the CLI's reported version, overridable via -ldflags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:     "gobasic",
	Short:   "gobasic interpreter and REPL",
	Long:    "gobasic runs programs written in a small dynamically-typed scripting language: numbers, strings, lists, closures, conditionals, and loops.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gobasic version %s\n", Version))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
