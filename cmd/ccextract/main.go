// ccextract - Extract permission patterns from markdown catalogs
// Source: https://github.com/ariel-frischer/ccperms

package main

import (
	"os"

	"github.com/ariel-frischer/ccperms/internal/cli"
)

func main() {
	if err := cli.ExecuteExtract(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
