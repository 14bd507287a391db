package evaluator

import (
	"fmt"
	"os"

	"github.com/ashlang/ash/internal/ast"
)

func (e *Evaluator) traceStatement(stmt ast.Statement) {
	if !e.Trace {
		return
	}
	tok := stmt.GetToken()
	fmt.Fprintf(os.Stderr, "trace: %s:%d:%d %T\n", e.CurrentFile, tok.Line, tok.Column, stmt)
}

func (e *Evaluator) evalDeclare(node *ast.DeclareStatement, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}

	switch node.Target.Kind {
	case ast.TargetName:
		name := node.Target.Name.Value
		if !env.Declare(name, value, true) {
			return newError("'%s' is already declared in this scope", name)
		}
		return ABSENT

	case ast.TargetDestructure:
		return e.destructure(node.Target, value, env, true)

	case ast.TargetPath:
		return e.assignPath(node.Target.Path, value, env, true)
	}

	return newError("unknown declaration target")
}

func (e *Evaluator) evalAssign(node *ast.AssignStatement, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}

	switch node.Target.Kind {
	case ast.TargetName:
		return e.assignName(node.Target.Name.Value, value, env)

	case ast.TargetDestructure:
		return e.destructure(node.Target, value, env, false)

	case ast.TargetPath:
		return e.assignPath(node.Target.Path, value, env, false)
	}

	return newError("unknown assignment target")
}

func (e *Evaluator) evalOpAssign(node *ast.OpAssignStatement, env *Environment) Object {
	rhs := e.Eval(node.Value, env)
	if isError(rhs) {
		return rhs
	}

	switch node.Target.Kind {
	case ast.TargetName:
		name := node.Target.Name.Value
		current, ok := env.Get(name)
		if !ok {
			return newError("identifier not found: %s", name)
		}
		updated := e.evalBinaryOp(node.Operator, current, rhs)
		if isError(updated) {
			return updated
		}
		return e.assignName(name, updated, env)

	case ast.TargetPath:
		// Resolve the container and key once so a side-effecting key
		// expression runs a single time for the read and the write.
		container, key, errObj := e.resolvePath(node.Target.Path, env)
		if errObj != nil {
			return errObj
		}
		current := indexObject(container, key)
		if isError(current) {
			return current
		}
		updated := e.evalBinaryOp(node.Operator, current, rhs)
		if isError(updated) {
			return updated
		}
		return writePath(container, key, updated, false)
	}

	return newError("unknown assignment target")
}

func (e *Evaluator) assignName(name string, value Object, env *Environment) Object {
	switch env.Assign(name, value) {
	case Assigned:
		return ABSENT
	case AssignImmutable:
		return newError("cannot assign to built-in '%s'", name)
	default:
		return newError("identifier not found: %s", name)
	}
}

// destructure binds '[a, b] := expr'. The value must be a list whose length
// matches the target exactly; a shape mismatch aborts the script.
func (e *Evaluator) destructure(target *ast.Target, value Object, env *Environment, declare bool) Object {
	list, ok := value.(*List)
	if !ok {
		return newError("cannot destructure %s into names", value.Type())
	}
	if len(list.Elements) != len(target.Names) {
		return newError("destructuring mismatch: %d names but %d values",
			len(target.Names), len(list.Elements))
	}

	for i, name := range target.Names {
		if declare {
			if !env.Declare(name.Value, list.Elements[i], true) {
				return newError("'%s' is already declared in this scope", name.Value)
			}
			continue
		}
		if result := e.assignName(name.Value, list.Elements[i], env); isError(result) {
			return result
		}
	}

	return ABSENT
}

// resolvePath evaluates the container and key of an index or property
// target exactly once. The third return value is non-nil on failure.
func (e *Evaluator) resolvePath(path ast.Expression, env *Environment) (Object, Object, Object) {
	switch p := path.(type) {
	case *ast.IndexExpression:
		container := e.Eval(p.Left, env)
		if isError(container) {
			return nil, nil, container
		}
		key := e.Eval(p.Index, env)
		if isError(key) {
			return nil, nil, key
		}
		return container, key, nil
	case *ast.PropertyExpression:
		container := e.Eval(p.Left, env)
		if isError(container) {
			return nil, nil, container
		}
		return container, &Str{Value: p.Name}, nil
	}
	return nil, nil, newError("cannot assign to this expression")
}

// assignPath writes through an index or property target such as m["k"] or
// xs[0]. Declaration requires the final map key to be new; plain assignment
// requires it to exist already.
func (e *Evaluator) assignPath(path ast.Expression, value Object, env *Environment, declare bool) Object {
	container, key, errObj := e.resolvePath(path, env)
	if errObj != nil {
		return errObj
	}
	return writePath(container, key, value, declare)
}

func writePath(container, key, value Object, declare bool) Object {
	switch c := container.(type) {
	case *Map:
		k, ok := key.(*Str)
		if !ok {
			return newError("map keys must be strings, got %s", key.Type())
		}
		_, exists := c.Get(k.Value)
		if declare && exists {
			return newError("key '%s' already exists", k.Value)
		}
		if !declare && !exists {
			return newError("key '%s' not found", k.Value)
		}
		c.Set(k.Value, value)
		return ABSENT

	case *List:
		if declare {
			return newError("cannot declare a list element; assign with '='")
		}
		idx, ok := key.(*Integer)
		if !ok {
			return newError("list indices must be integers, got %s", key.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(c.Elements)) {
			return newError("index %d out of bounds for list of length %d",
				idx.Value, len(c.Elements))
		}
		c.Elements[idx.Value] = value
		return ABSENT
	}

	return newError("cannot assign into %s", container.Type())
}

func (e *Evaluator) evalIf(node *ast.IfStatement, env *Environment) Object {
	for _, branch := range node.Branches {
		cond := e.Eval(branch.Cond, env)
		if isError(cond) {
			return cond
		}
		b, ok := cond.(*Boolean)
		if !ok {
			return newError("if condition must be a bool, got %s", cond.Type())
		}
		if b.Value {
			return e.evalBlock(branch.Body, NewEnclosedEnvironment(env))
		}
	}
	if node.Else != nil {
		return e.evalBlock(node.Else, NewEnclosedEnvironment(env))
	}
	return ABSENT
}

func (e *Evaluator) evalWhile(node *ast.WhileStatement, env *Environment) Object {
	for {
		cond := e.Eval(node.Cond, env)
		if isError(cond) {
			return cond
		}
		b, ok := cond.(*Boolean)
		if !ok {
			return newError("while condition must be a bool, got %s", cond.Type())
		}
		if !b.Value {
			return ABSENT
		}

		result := e.evalBlock(node.Body, NewEnclosedEnvironment(env))
		switch result.(type) {
		case *Error, *ReturnSignal:
			return result
		case *BreakSignal:
			return ABSENT
		}
	}
}

func (e *Evaluator) evalFor(node *ast.ForStatement, env *Environment) Object {
	iter := e.Eval(node.Iter, env)
	if isError(iter) {
		return iter
	}

	runBody := func(bind func(*Environment) Object) Object {
		loopEnv := NewEnclosedEnvironment(env)
		if result := bind(loopEnv); isError(result) {
			return result
		}
		return e.evalBlock(node.Body, loopEnv)
	}

	switch it := iter.(type) {
	case *List:
		if node.Name == nil {
			return newError("list iteration binds a single name")
		}
		for _, el := range it.Elements {
			el := el
			result := runBody(func(env *Environment) Object {
				env.Declare(node.Name.Value, el, true)
				return ABSENT
			})
			switch result.(type) {
			case *Error, *ReturnSignal:
				return result
			case *BreakSignal:
				return ABSENT
			}
		}
		return ABSENT

	case *Map:
		for _, key := range it.Keys() {
			key := key
			result := runBody(func(env *Environment) Object {
				if node.Name != nil {
					env.Declare(node.Name.Value, &Str{Value: key}, true)
					return ABSENT
				}
				if len(node.Names) != 2 {
					return newError("map iteration binds a key or a '[key, value]' pair")
				}
				value, _ := it.Get(key)
				env.Declare(node.Names[0].Value, &Str{Value: key}, true)
				env.Declare(node.Names[1].Value, value, true)
				return ABSENT
			})
			switch result.(type) {
			case *Error, *ReturnSignal:
				return result
			case *BreakSignal:
				return ABSENT
			}
		}
		return ABSENT

	case *Str:
		if node.Name == nil {
			return newError("string iteration binds a single name")
		}
		for i := 0; i < len(it.Value); i++ {
			ch := &Str{Value: it.Value[i : i+1]}
			result := runBody(func(env *Environment) Object {
				env.Declare(node.Name.Value, ch, true)
				return ABSENT
			})
			switch result.(type) {
			case *Error, *ReturnSignal:
				return result
			case *BreakSignal:
				return ABSENT
			}
		}
		return ABSENT
	}

	return newError("cannot iterate over %s", iter.Type())
}
