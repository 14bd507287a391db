package evaluator

import (
	"github.com/ashlang/ash/internal/ast"
)

// evalFuncStatement binds 'fn name(params) { body }' in the current scope.
// The function closes over the environment it was declared in, so it can see
// its own binding and recurse.
func (e *Evaluator) evalFuncStatement(node *ast.FuncStatement, env *Environment) Object {
	fn := &Function{
		Name:   node.Name.Value,
		Params: node.Params,
		Body:   node.Body,
		Env:    env,
	}
	if !env.Declare(node.Name.Value, fn, true) {
		return newError("'%s' is already declared in this scope", node.Name.Value)
	}
	return ABSENT
}

func (e *Evaluator) evalReturn(node *ast.ReturnStatement, env *Environment) Object {
	if node.Value == nil {
		return &ReturnSignal{Value: ABSENT}
	}
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	return &ReturnSignal{Value: value}
}

// callFunction runs a user-defined function body in a fresh scope enclosing
// the closure environment. A body that finishes without 'return' yields
// <absent>.
func (e *Evaluator) callFunction(fn *Function, args []Object) Object {
	if len(args) != len(fn.Params) {
		name := fn.Name
		if name == "" {
			name = "function"
		}
		return newError("'%s' expects %d arguments, got %d", name, len(fn.Params), len(args))
	}

	callEnv := NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		callEnv.Declare(param.Value, args[i], true)
	}

	result := e.evalBlock(fn.Body, callEnv)
	switch result := result.(type) {
	case *ReturnSignal:
		return result.Value
	case *Error:
		return result
	case *BreakSignal, *ContinueSignal:
		return newError("'%s' outside of a loop", result.Inspect())
	}
	return ABSENT
}
