package evaluator

import (
	"github.com/ashlang/ash/internal/ast"
)

// evalFallible runs '? expr'. A classified fault raised anywhere inside the
// operand yields [<absent>, false]; success yields [value, true]. Fatal
// errors pass through untouched.
func (e *Evaluator) evalFallible(node *ast.FallibleExpression, env *Environment) Object {
	result := e.Eval(node.Inner, env)

	if isFault(result) {
		return &List{Elements: []Object{ABSENT, FALSE}}
	}
	if isError(result) {
		return result
	}
	return &List{Elements: []Object{result, TRUE}}
}
