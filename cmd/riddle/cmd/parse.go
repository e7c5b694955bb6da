package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/errors"
	"github.com/ratioSolver/riddle/internal/lexer"
	"github.com/ratioSolver/riddle/internal/parser"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a RiDDLe source file and print its AST",
	Long: `Parse RiDDLe source code and display the parsed compilation unit.

If no file is provided, reads from stdin. Use -e to parse a single
inline source string. Use --dump-ast to show the tree structure
instead of the re-printed source form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the compilation unit's tree structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readParseInput(args)
	if err != nil {
		return err
	}

	unit, err := parser.New(lexer.New(input)).Parse()
	if err != nil {
		diag := errors.FromError(err, input, filename)
		useColor, _ := cmd.Flags().GetBool("color")
		fmt.Fprintln(os.Stderr, diag.Format(useColor))
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("CompilationUnit:")
		dumpUnit(unit)
	} else {
		fmt.Println(unit.String())
	}
	return nil
}

// readParseInput resolves parse's input from -e, a single file
// argument, or stdin, in that order of precedence.
func readParseInput(args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}

func dumpUnit(unit *ast.CompilationUnit) {
	indent := "  "
	for _, d := range unit.Types {
		dumpDeclaration(d, 1)
	}
	for _, p := range unit.Predicates {
		dumpDeclaration(p, 1)
	}
	for _, m := range unit.Methods {
		dumpDeclaration(m, 1)
	}
	for _, s := range unit.Body {
		fmt.Printf("%sStatement: %s\n", indent, s.String())
	}
}

func dumpDeclaration(d ast.Declaration, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := d.(type) {
	case *ast.ClassDeclaration:
		fmt.Printf("%sClass %s\n", indent, n.Name)
		for _, f := range n.Fields {
			fmt.Printf("%s  Field: %s %s\n", indent, f.Type, f.Name)
		}
		for _, c := range n.Constructors {
			fmt.Printf("%s  Constructor: %s\n", indent, c.String())
		}
		for _, m := range n.Methods {
			fmt.Printf("%s  Method: %s\n", indent, m.String())
		}
		for _, p := range n.Predicates {
			dumpDeclaration(p, depth+1)
		}
		for _, t := range n.Types {
			dumpDeclaration(t, depth+1)
		}
	case *ast.PredicateDeclaration:
		fmt.Printf("%sPredicate %s\n", indent, n.String())
	case *ast.MethodDeclaration:
		fmt.Printf("%sMethod %s\n", indent, n.String())
	default:
		fmt.Printf("%s%T: %s\n", indent, d, d.String())
	}
}
