// ccmerge - Merge Claude Code settings files
// Source: https://github.com/ariel-frischer/ccperms

package main

import (
	"os"

	"github.com/ariel-frischer/ccperms/internal/cli"
)

func main() {
	if err := cli.ExecuteMerge(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
