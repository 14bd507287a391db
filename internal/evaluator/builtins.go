package evaluator

import (
	"fmt"

	"github.com/ashlang/ash/internal/config"
)

var builtins = map[string]*Builtin{
	config.PrintFuncName: {
		Name: config.PrintFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			parts := make([]interface{}, len(args))
			for i, arg := range args {
				parts[i] = Render(arg)
			}
			fmt.Fprintln(e.Out, parts...)
			return ABSENT
		},
	},
	config.LenFuncName: {
		Name: config.LenFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError("len expects 1 argument, got %d", len(args))
			}
			switch arg := args[0].(type) {
			case *Str:
				return &Integer{Value: int64(len(arg.Value))}
			case *List:
				return &Integer{Value: int64(len(arg.Elements))}
			case *Map:
				return &Integer{Value: int64(arg.Len())}
			}
			return newFault(FaultTypeMismatch, "len does not support %s", args[0].Type())
		},
	},
	config.TypeFuncName: {
		Name: config.TypeFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError("type expects 1 argument, got %d", len(args))
			}
			return &Str{Value: typeName(args[0])}
		},
	},
}

func typeName(obj Object) string {
	switch obj.(type) {
	case *Integer:
		return "int"
	case *Str:
		return "str"
	case *Boolean:
		return "bool"
	case *List:
		return "list"
	case *Map:
		return "map"
	case *Process:
		return "process"
	case *Absent:
		return "absent"
	case *Builtin, *Function:
		return "func"
	}
	return "unknown"
}

// RegisterBuiltins installs the built-in functions as immutable bindings in
// the given environment.
func RegisterBuiltins(env *Environment) {
	for name, builtin := range builtins {
		env.Declare(name, builtin, false)
	}
}
