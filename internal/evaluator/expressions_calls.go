package evaluator

import (
	"github.com/ashlang/ash/internal/ast"
)

func (e *Evaluator) evalCall(node *ast.CallExpression, env *Environment) Object {
	fn := e.Eval(node.Function, env)
	if isError(fn) {
		return fn
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return e.applyFunction(fn, args)
}

// evalChain runs 'value -> f(args)': the chained value becomes the leading
// argument of the call on the right.
func (e *Evaluator) evalChain(node *ast.ChainExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}

	switch right := node.Right.(type) {
	case *ast.CallExpression:
		fn := e.Eval(right.Function, env)
		if isError(fn) {
			return fn
		}
		rest := e.evalExpressions(right.Arguments, env)
		if len(rest) == 1 && isError(rest[0]) {
			return rest[0]
		}
		args := append([]Object{left}, rest...)
		return e.applyFunction(fn, args)

	case *ast.Identifier:
		fn := e.Eval(right, env)
		if isError(fn) {
			return fn
		}
		return e.applyFunction(fn, []Object{left})
	}

	return newError("right side of '->' must be a function call")
}

func (e *Evaluator) applyFunction(fn Object, args []Object) Object {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Fn(e, args...)
	case *Function:
		return e.callFunction(fn, args)
	}
	return newError("not a function: %s", fn.Type())
}
