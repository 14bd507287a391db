package evaluator

import (
	"github.com/ashlang/ash/internal/ast"
)

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}
	return indexObject(left, index)
}

// evalPropertyExpression handles 'x.name', which reads the string key "name"
// from a map or process.
func (e *Evaluator) evalPropertyExpression(node *ast.PropertyExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	return indexObject(left, &Str{Value: node.Name})
}

// indexObject is the single read path for xs[i], m["k"] and p.out. Negative
// list and string indices are out of bounds, not wraparound.
func indexObject(left, index Object) Object {
	switch container := left.(type) {
	case *List:
		idx, ok := index.(*Integer)
		if !ok {
			return newFault(FaultTypeMismatch, "list indices must be ints, got %s", index.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(container.Elements)) {
			return newFault(FaultIndexOutOfBounds, "index %d out of bounds for list of length %d",
				idx.Value, len(container.Elements))
		}
		return container.Elements[idx.Value]

	case *Str:
		idx, ok := index.(*Integer)
		if !ok {
			return newFault(FaultTypeMismatch, "string indices must be ints, got %s", index.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(container.Value)) {
			return newFault(FaultIndexOutOfBounds, "index %d out of bounds for string of length %d",
				idx.Value, len(container.Value))
		}
		return &Str{Value: container.Value[idx.Value : idx.Value+1]}

	case *Map:
		key, ok := index.(*Str)
		if !ok {
			return newFault(FaultTypeMismatch, "map keys must be strings, got %s", index.Type())
		}
		value, found := container.Get(key.Value)
		if !found {
			return newFault(FaultKeyNotFound, "key '%s' not found", key.Value)
		}
		return value

	case *Process:
		key, ok := index.(*Str)
		if !ok {
			return newFault(FaultTypeMismatch, "process fields are named by strings, got %s", index.Type())
		}
		switch key.Value {
		case "out":
			return &Str{Value: container.Out}
		case "code":
			return &Integer{Value: container.Code()}
		case "codes":
			codes := make([]Object, len(container.Codes))
			for i, c := range container.Codes {
				codes[i] = &Integer{Value: c}
			}
			return &List{Elements: codes}
		case "id":
			return &Str{Value: container.ID}
		}
		return newFault(FaultKeyNotFound, "process has no field '%s'", key.Value)
	}

	return newFault(FaultTypeMismatch, "cannot index into %s", left.Type())
}
