package riddle

import (
	"os"
	"sync"

	"github.com/ratioSolver/riddle/internal/ast"
	"github.com/ratioSolver/riddle/internal/lexer"
	"github.com/ratioSolver/riddle/internal/parser"
	"github.com/sourcegraph/conc/pool"
)

// Read parses a single compilation unit and elaborates it against
// core, per §6. It is a no-op on success other than growing core's
// state, and fails at the first duplicate-name error on a re-read of
// the same source.
func (c *Core) Read(source string) error {
	unit, err := parser.New(lexer.New(source)).Parse()
	if err != nil {
		return err
	}
	return Elaborate([]*ast.CompilationUnit{unit}, c)
}

// Check parses source and runs only the declare/refine/refine_predicates
// passes against core, leaving its top-level body statements
// unexecuted. It validates a program's types and predicates without
// asserting anything to the Factory.
func (c *Core) Check(source string) error {
	unit, err := parser.New(lexer.New(source)).Parse()
	if err != nil {
		return err
	}
	return ElaborateTypes([]*ast.CompilationUnit{unit}, c)
}

// ReadFiles parses every path concurrently — parsing has no shared
// mutable state, so a worker pool is safe here — then runs the four
// elaboration passes sequentially across the resulting units as a
// batch, in input order. A missing or unreadable file fails with
// IoError.
func (c *Core) ReadFiles(paths []string) error {
	units := make([]*ast.CompilationUnit, len(paths))
	errs := make([]error, len(paths))

	p := pool.New().WithMaxGoroutines(len(paths))
	var mu sync.Mutex
	for i, path := range paths {
		i, path := i, path
		p.Go(func() {
			data, err := os.ReadFile(path)
			if err != nil {
				mu.Lock()
				errs[i] = &IoError{Path: path, Err: err}
				mu.Unlock()
				return
			}
			unit, err := parser.New(lexer.New(string(data))).Parse()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[i] = err
				return
			}
			units[i] = unit
		})
	}
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return Elaborate(units, c)
}
