package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scheme code",
	Long:  `Run scheme code supplied via the command line or files.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		lerr := lisp.InitializeUserEnv(env, lisp.WithReader(parser.NewReader()))
		if lerr.Type == lisp.LError {
			fmt.Fprintln(os.Stderr, lisp.GoError(lerr))
			os.Exit(1)
		}
		for i := range exprs {
			forms, err := parser.Parse(runNames(args, i), exprs[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, form := range forms {
				v := env.Eval(form)
				if v.Type == lisp.LError {
					fmt.Fprintln(os.Stderr, lisp.GoError(v))
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(v)
				}
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func runNames(args []string, i int) string {
	if runExpression {
		return "argument"
	}
	return args[i]
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
