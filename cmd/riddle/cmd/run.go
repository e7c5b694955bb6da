package cmd

import (
	"fmt"
	"os"

	"github.com/ratioSolver/riddle/internal/errors"
	"github.com/ratioSolver/riddle/internal/riddle"
	"github.com/spf13/cobra"
)

var (
	evalExpr     string
	runManifest  string
	showCounters bool
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run a RiDDLe program against the reference backend",
	Long: `Run a RiDDLe program: parse, elaborate (declare, refine,
refine_predicates, execute), and evaluate it against the bundled
reference Factory backend.

The reference backend has no real search or constraint propagation —
it folds constant expressions and records facts, disjunction branches,
and atoms as they're asserted, so it can drive the frontend end to end
without a real solver wired in.

Examples:
  # Run one or more files
  riddle run domain.rddl problem.rddl

  # Evaluate inline source
  riddle run -e "int x = 1; fact f = new P(a: x);"

  # Run every file listed in riddle.yaml
  riddle run`,
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading files")
	runCmd.Flags().StringVar(&runManifest, "manifest", "riddle.yaml", "project manifest to read file list from when no files are given")
	runCmd.Flags().BoolVar(&showCounters, "counters", true, "print a summary of facts/branches/atoms recorded by the backend")
}

func runProgram(cmd *cobra.Command, args []string) error {
	backend := riddle.NewReference()
	core := riddle.New(backend)

	if evalExpr != "" {
		if err := core.Read(evalExpr); err != nil {
			reportElaborationError(cmd, err, evalExpr, "<eval>")
			return fmt.Errorf("execution failed")
		}
	} else {
		paths, err := resolveSourcePaths(args, runManifest)
		if err != nil {
			return err
		}
		if err := core.ReadFiles(paths); err != nil {
			reportElaborationError(cmd, err, "", "")
			return fmt.Errorf("execution failed")
		}
	}

	if showCounters {
		fmt.Printf("facts: %d, disjunctions: %d, atoms: %d\n",
			backend.FactCount(), backend.BranchCount(), backend.AtomCount())
	}
	return nil
}

func reportElaborationError(cmd *cobra.Command, err error, source, file string) {
	useColor, _ := cmd.Flags().GetBool("color")
	diag := errors.FromError(err, source, file)
	fmt.Fprintln(os.Stderr, diag.Format(useColor))
}
