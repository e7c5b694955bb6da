package cmd

import (
	"fmt"
	"os"

	"github.com/ratioSolver/riddle/internal/config"
	"github.com/ratioSolver/riddle/internal/errors"
	"github.com/ratioSolver/riddle/internal/riddle"
	"github.com/spf13/cobra"
)

var checkManifest string

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate a RiDDLe program's types and predicates",
	Long: `Run the declare, refine, and refine_predicates passes over one or
more RiDDLe files without executing their top-level statements.

Use this to catch duplicate names, unresolved references, and type
mismatches before committing to a full run.

Examples:
  # Check a single file
  riddle check domain.rddl

  # Check every file listed in riddle.yaml
  riddle check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "riddle.yaml", "project manifest to read file list from when no files are given")
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths, err := resolveSourcePaths(args, checkManifest)
	if err != nil {
		return err
	}

	core := riddle.New(riddle.NewReference())
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		if err := core.Check(string(data)); err != nil {
			useColor, _ := cmd.Flags().GetBool("color")
			diag := errors.FromError(err, string(data), path)
			fmt.Fprintln(os.Stderr, diag.Format(useColor))
			return fmt.Errorf("check failed on %s", path)
		}
	}

	fmt.Printf("OK: %d file(s) checked\n", len(paths))
	return nil
}

// resolveSourcePaths resolves the set of files a multi-file command
// operates on: explicit arguments win, otherwise riddle.yaml's file
// list is read as sugar.
func resolveSourcePaths(args []string, manifestPath string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	m, err := config.LoadIfExists(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}
	if m == nil || len(m.Files) == 0 {
		return nil, fmt.Errorf("no files given and no %s manifest found", manifestPath)
	}
	return m.Files, nil
}
