package main

import (
	"fmt"
	"os"

	"github.com/rshaporenkov/gobasic/cmd/gobasic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
