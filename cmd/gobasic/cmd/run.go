package cmd

import (
	"fmt"
	"os"

	"github.com/rshaporenkov/gobasic/internal/interp"
	"github.com/rshaporenkov/gobasic/internal/lexer"
	"github.com/rshaporenkov/gobasic/internal/parser"
	"github.com/rshaporenkov/gobasic/pkg/basic"
	"github.com/spf13/cobra"
)

var (
	evalExpr     string
	dumpTokens   bool
	dumpAST      bool
	maxCallDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a gobasic program",
	Long: `Execute a gobasic program from a file or inline expression.

Examples:
  # Run a script file
  gobasic run script.basic

  # Evaluate an inline expression
  gobasic run -e 'print("hello")'

  # Inspect the token stream or parsed AST without executing
  gobasic run --dump-tokens -e "1 + 2"
  gobasic run --dump-ast -e "1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the lexed token stream and exit")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST and exit")
	runCmd.Flags().IntVar(&maxCallDepth, "max-call-depth", interp.DefaultMaxCallDepth, "maximum function call recursion depth")
}

func runScript(_ *cobra.Command, args []string) error {
	source, fileName, err := readSource(args)
	if err != nil {
		return err
	}

	if dumpTokens || dumpAST {
		return dumpOnly(fileName, source)
	}

	engine := basic.New(basic.WithMaxCallDepth(maxCallDepth))
	value, runErr := engine.Run(fileName, source)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		return fmt.Errorf("execution failed")
	}
	if value != nil {
		fmt.Println(value.Render())
	}
	return nil
}

func readSource(args []string) (source, fileName string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func dumpOnly(fileName, source string) error {
	tokens, lexErr := lexer.New(fileName, source).Tokenize()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Error())
		return fmt.Errorf("lexing failed")
	}
	if dumpTokens {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
	}
	if dumpAST {
		root, parseErr := parser.Parse(tokens)
		if parseErr != nil {
			fmt.Fprintln(os.Stderr, parseErr.Error())
			return fmt.Errorf("parsing failed")
		}
		fmt.Printf("%#v\n", root)
	}
	return nil
}
