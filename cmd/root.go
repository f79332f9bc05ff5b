package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/griezmannFromJavic/scheme-interpreter/repl"
)

// rootCmd represents the base command when called without any subcommands.
// By default an interactive session is started.
var rootCmd = &cobra.Command{
	Use:   "scheme-interpreter",
	Short: "A small scheme interpreter",
	Long: `scheme-interpreter is a minimal interpreter for a scheme dialect with
numbers, symbols, pairs and lexically scoped procedures.  Without arguments an
interactive session is started.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run("> ")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
