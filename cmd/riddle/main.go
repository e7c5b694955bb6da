// Command riddle is the RiDDLe language frontend's CLI: lex, parse,
// check, run, and repl subcommands over the internal/riddle elaborator
// and the bundled reference solver backend.
package main

import (
	"os"

	"github.com/ratioSolver/riddle/cmd/riddle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
