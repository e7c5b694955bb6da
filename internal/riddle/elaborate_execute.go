package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// executePass runs the top-level body of every unit against the root
// scope and env, in source order within a unit and input order across
// units.
func executePass(units []*ast.CompilationUnit, core *Core) error {
	for _, u := range units {
		for _, stmt := range u.Body {
			if err := execStatement(stmt, &core.Scope, &core.Env); err != nil {
				return err
			}
		}
	}
	return nil
}

// ElaborateTypes runs the first three passes (declare, refine,
// refine_predicates) without executing any top-level body statement,
// for callers that want to validate a program's types and predicates
// without asserting anything to the Factory.
func ElaborateTypes(units []*ast.CompilationUnit, core *Core) error {
	if err := declarePass(units, core); err != nil {
		return err
	}
	if err := refinePass(units, core); err != nil {
		return err
	}
	return refinePredicatesPass(units, core)
}

// Elaborate runs the four passes over units against core, in order,
// stopping at the first error.
func Elaborate(units []*ast.CompilationUnit, core *Core) error {
	if err := ElaborateTypes(units, core); err != nil {
		return err
	}
	return executePass(units, core)
}
