package main

import (
	"fmt"
	"os"

	"github.com/flarebyte/timers/cmd"
	"github.com/flarebyte/timers/internal/cliargs"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cliargs.Describe(err))
		os.Exit(1)
	}
}
