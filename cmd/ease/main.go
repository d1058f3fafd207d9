// Command ease sorts decoded documents stably and writes deduplicated
// debug logs.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/ease/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
