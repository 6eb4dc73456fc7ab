// c4validate - C4 framework validator

package main

import (
	"os"

	"github.com/c4framework/c4validate/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
