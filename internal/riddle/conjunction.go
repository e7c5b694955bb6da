package riddle

import "github.com/ratioSolver/riddle/internal/ast"

// ConjunctionValue is one branch of a disjunction statement: a cost
// expression (evaluated lazily, defaulting to 1 when absent) and a body
// of statements executed only if the branch is chosen by the solver.
type ConjunctionValue struct {
	scope *Scope
	env   *Env
	cost  ast.Expression // nil means the default cost of 1
	body  []ast.Statement
}

// NewConjunctionValue captures scope and env at the point the
// disjunction statement is elaborated, per §4.11: the branch body runs
// later, against this captured env, not whatever env is live when the
// solver eventually chooses the branch.
func NewConjunctionValue(scope *Scope, env *Env, cost ast.Expression, body []ast.Statement) *ConjunctionValue {
	return &ConjunctionValue{scope: scope, env: env, cost: cost, body: body}
}

// Cost evaluates the branch's cost expression, defaulting to a
// constant 1 when none was written.
func (c *ConjunctionValue) Cost() (*ArithItem, error) {
	if c.cost == nil {
		return c.scope.Core().Factory.NewIntValue(1)
	}
	item, err := evalExpression(c.cost, c.scope, c.env)
	if err != nil {
		return nil, err
	}
	arith, ok := item.(*ArithItem)
	if !ok {
		return nil, &TypeMismatchError{Message: "disjunction branch cost must be arithmetic"}
	}
	return arith, nil
}

// Execute runs the branch's body against its captured env.
func (c *ConjunctionValue) Execute() error {
	for _, stmt := range c.body {
		if err := execStatement(stmt, c.scope, c.env); err != nil {
			return err
		}
	}
	return nil
}
