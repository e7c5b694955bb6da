package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	riddleerrors "github.com/ratioSolver/riddle/internal/errors"
	"github.com/ratioSolver/riddle/internal/riddle"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive RiDDLe session",
	Long: `Start a line-editing REPL over a single shared Core: types,
predicates, and fields declared on one line remain visible to the
next. Each submitted line is read as its own compilation unit and
elaborated immediately against the reference backend.

Type an empty line to exit, or press Ctrl-D.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	useColor, _ := cmd.Flags().GetBool("color")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	backend := riddle.NewReference()
	core := riddle.New(backend)

	fmt.Println("riddle repl — empty line or Ctrl-D to exit")
	for {
		input, err := line.Prompt("riddle> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			return err
		}

		if strings.TrimSpace(input) == "" {
			return nil
		}
		line.AppendHistory(input)

		if err := core.Read(input); err != nil {
			diag := riddleerrors.FromError(err, input, "<repl>")
			fmt.Fprintln(os.Stderr, diag.Format(useColor))
			continue
		}
		fmt.Printf("ok (facts: %d, disjunctions: %d, atoms: %d)\n",
			backend.FactCount(), backend.BranchCount(), backend.AtomCount())
	}
}
