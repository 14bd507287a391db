package evaluator

import (
	"math"

	"github.com/ashlang/ash/internal/ast"
)

func (e *Evaluator) evalPrefixExpression(operator string, right Object) Object {
	switch operator {
	case "!":
		b, ok := right.(*Boolean)
		if !ok {
			return newError("'!' expects a bool, got %s", right.Type())
		}
		return nativeBoolToBooleanObject(!b.Value)
	case "-":
		i, ok := right.(*Integer)
		if !ok {
			return newError("'-' expects an int, got %s", right.Type())
		}
		if i.Value == math.MinInt64 {
			return newFault(FaultArithmeticOverflow, "arithmetic overflow: -(%d)", i.Value)
		}
		return &Integer{Value: -i.Value}
	}
	return newError("unknown operator: %s%s", operator, right.Type())
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	// && and || short-circuit: the right side is only evaluated when the
	// left side doesn't already decide the result.
	if node.Operator == "&&" || node.Operator == "||" {
		return e.evalLogical(node, env)
	}

	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	return e.evalBinaryOp(node.Operator, left, right)
}

func (e *Evaluator) evalLogical(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	lb, ok := left.(*Boolean)
	if !ok {
		return newFault(FaultTypeMismatch, "'%s' expects bool operands, got %s",
			node.Operator, left.Type())
	}

	if node.Operator == "&&" && !lb.Value {
		return FALSE
	}
	if node.Operator == "||" && lb.Value {
		return TRUE
	}

	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}
	rb, ok := right.(*Boolean)
	if !ok {
		return newFault(FaultTypeMismatch, "'%s' expects bool operands, got %s",
			node.Operator, right.Type())
	}
	return nativeBoolToBooleanObject(rb.Value)
}

func (e *Evaluator) evalBinaryOp(operator string, left, right Object) Object {
	switch operator {
	case "==":
		eq := objectsEqual(left, right)
		if isError(eq) {
			return eq
		}
		return eq
	case "!=":
		eq := objectsEqual(left, right)
		if isError(eq) {
			return eq
		}
		return nativeBoolToBooleanObject(!eq.(*Boolean).Value)
	}

	switch {
	case left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ:
		return evalIntegerInfix(operator, left.(*Integer), right.(*Integer))
	case operator == "+" && left.Type() == STRING_OBJ && right.Type() == STRING_OBJ:
		return &Str{Value: left.(*Str).Value + right.(*Str).Value}
	case operator == "+" && left.Type() == LIST_OBJ && right.Type() == LIST_OBJ:
		l, r := left.(*List), right.(*List)
		elements := make([]Object, 0, len(l.Elements)+len(r.Elements))
		elements = append(elements, l.Elements...)
		elements = append(elements, r.Elements...)
		return &List{Elements: elements}
	}

	return newFault(FaultTypeMismatch, "unsupported operand types for '%s': %s and %s",
		operator, left.Type(), right.Type())
}

func evalIntegerInfix(operator string, left, right *Integer) Object {
	l, r := left.Value, right.Value

	switch operator {
	case "+":
		if v, ok := checkedAdd(l, r); ok {
			return &Integer{Value: v}
		}
		return newFault(FaultArithmeticOverflow, "arithmetic overflow: %d + %d", l, r)
	case "-":
		if v, ok := checkedSub(l, r); ok {
			return &Integer{Value: v}
		}
		return newFault(FaultArithmeticOverflow, "arithmetic overflow: %d - %d", l, r)
	case "*":
		if v, ok := checkedMul(l, r); ok {
			return &Integer{Value: v}
		}
		return newFault(FaultArithmeticOverflow, "arithmetic overflow: %d * %d", l, r)
	case "/":
		if v, ok := checkedDiv(l, r); ok {
			return &Integer{Value: v}
		}
		return newFault(FaultArithmeticOverflow, "arithmetic overflow: %d / %d", l, r)
	case "%":
		if v, ok := checkedMod(l, r); ok {
			return &Integer{Value: v}
		}
		return newFault(FaultArithmeticOverflow, "arithmetic overflow: %d %% %d", l, r)
	case "<":
		return nativeBoolToBooleanObject(l < r)
	case ">":
		return nativeBoolToBooleanObject(l > r)
	case "<=":
		return nativeBoolToBooleanObject(l <= r)
	case ">=":
		return nativeBoolToBooleanObject(l >= r)
	}

	return newError("unknown operator: %s %s %s", INTEGER_OBJ, operator, INTEGER_OBJ)
}

func checkedAdd(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func checkedSub(a, b int64) (int64, bool) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, false
	}
	return diff, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 || b == 1 {
			return math.MinInt64, true
		}
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// checkedDiv treats division by zero and MinInt64 / -1 as overflow.
func checkedDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

func checkedMod(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a % b, true
}

// objectsEqual compares two values of the same variant structurally.
// Comparing values of different variants, at any depth, is a type mismatch
// fault rather than false.
func objectsEqual(left, right Object) Object {
	if left.Type() != right.Type() {
		return newFault(FaultTypeMismatch, "cannot compare %s with %s",
			left.Type(), right.Type())
	}

	switch l := left.(type) {
	case *Integer:
		return nativeBoolToBooleanObject(l.Value == right.(*Integer).Value)
	case *Str:
		return nativeBoolToBooleanObject(l.Value == right.(*Str).Value)
	case *Boolean:
		return nativeBoolToBooleanObject(l.Value == right.(*Boolean).Value)
	case *Absent:
		return TRUE
	case *List:
		r := right.(*List)
		if len(l.Elements) != len(r.Elements) {
			return FALSE
		}
		for i := range l.Elements {
			eq := objectsEqual(l.Elements[i], r.Elements[i])
			if isError(eq) {
				return eq
			}
			if !eq.(*Boolean).Value {
				return FALSE
			}
		}
		return TRUE
	case *Map:
		r := right.(*Map)
		if l.Len() != r.Len() {
			return FALSE
		}
		for _, key := range l.Keys() {
			rv, ok := r.Get(key)
			if !ok {
				return FALSE
			}
			lv, _ := l.Get(key)
			eq := objectsEqual(lv, rv)
			if isError(eq) {
				return eq
			}
			if !eq.(*Boolean).Value {
				return FALSE
			}
		}
		return TRUE
	case *Process:
		return nativeBoolToBooleanObject(l.ID == right.(*Process).ID)
	case *Builtin:
		return nativeBoolToBooleanObject(l == right.(*Builtin))
	case *Function:
		return nativeBoolToBooleanObject(l == right.(*Function))
	}

	return newFault(FaultTypeMismatch, "cannot compare %s values", left.Type())
}
