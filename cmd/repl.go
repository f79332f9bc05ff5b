package cmd

import (
	"github.com/spf13/cobra"

	"github.com/griezmannFromJavic/scheme-interpreter/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Start an interactive read-eval-print loop.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run("> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
