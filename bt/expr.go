package bt

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// NewExprCondition compiles an expr source into a Condition leaf evaluated
// against a ConditionEnv each tick. Compilation errors surface at tree
// construction; runtime errors follow the usual condition policy and convert
// to Failure.
func NewExprCondition(name, src string) (*Condition, error) {
	prog, err := expr.Compile(src, expr.Env(ConditionEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile condition %q: %w", name, err)
	}
	return NewCondition(name, exprPredicate(prog)), nil
}

// MustExprCondition is the panicking variant for statically-known sources
// (the built-in tree); the panic fires at startup, never during evaluation.
func MustExprCondition(name, src string) *Condition {
	c, err := NewExprCondition(name, src)
	if err != nil {
		panic(err)
	}
	return c
}

func exprPredicate(prog *vm.Program) ConditionFunc {
	return func(bb *Blackboard) (bool, error) {
		out, err := vm.Run(prog, envFrom(bb))
		if err != nil {
			return false, err
		}
		match, ok := out.(bool)
		return ok && match, nil
	}
}
