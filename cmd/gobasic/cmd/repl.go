package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rshaporenkov/gobasic/pkg/basic"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive gobasic session",
	Long: `Read, evaluate, and print gobasic expressions one line at a time.

The session shares one global symbol table across every line entered, so a
variable or function defined on one line is visible on the next.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	engine := basic.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("basic> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			value, err := engine.Run("<stdin>", line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
			} else if value != nil {
				fmt.Println(value.Render())
			}
		}
		fmt.Print("basic> ")
	}
	fmt.Println()
	return scanner.Err()
}
