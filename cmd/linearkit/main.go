// Command linearkit runs the linearkit algorithms from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linearkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linearkit:", err)
		os.Exit(1)
	}
}
