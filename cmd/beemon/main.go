// main is the entry point for the beemon CLI.
package main

import (
	"fmt"
	"os"

	"github.com/beemon/beemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
