package evaluator

import (
	"fmt"
	"strconv"

	"github.com/ashlang/ash/internal/ast"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	STRING_OBJ   = "STRING"
	BOOLEAN_OBJ  = "BOOLEAN"
	LIST_OBJ     = "LIST"
	MAP_OBJ      = "MAP"
	PROCESS_OBJ  = "PROCESS"
	ABSENT_OBJ   = "ABSENT"
	BUILTIN_OBJ  = "BUILTIN"
	FUNCTION_OBJ = "FUNCTION"
	ERROR_OBJ    = "ERROR"

	BREAK_SIGNAL_OBJ    = "BREAK_SIGNAL"
	CONTINUE_SIGNAL_OBJ = "CONTINUE_SIGNAL"
	RETURN_SIGNAL_OBJ   = "RETURN_SIGNAL"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Str struct {
	Value string
}

func (s *Str) Type() ObjectType { return STRING_OBJ }
func (s *Str) Inspect() string  { return strconv.Quote(s.Value) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// Absent is the single "no value" result produced by statements and by
// failed fallible expressions.
type Absent struct{}

func (a *Absent) Type() ObjectType { return ABSENT_OBJ }
func (a *Absent) Inspect() string  { return "<absent>" }

var (
	TRUE   = &Boolean{Value: true}
	FALSE  = &Boolean{Value: false}
	ABSENT = &Absent{}
)

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// Process is the result of a finished spawn or pipeline: the captured
// stdout and the exit code of every stage.
type Process struct {
	ID      string
	Program string
	Out     string
	Codes   []int64
}

func (p *Process) Type() ObjectType { return PROCESS_OBJ }
func (p *Process) Inspect() string {
	return fmt.Sprintf("<process '%s' code=%d>", p.Program, p.Code())
}

// Code is the exit code of the last stage.
func (p *Process) Code() int64 {
	if len(p.Codes) == 0 {
		return 0
	}
	return p.Codes[len(p.Codes)-1]
}

type BuiltinFunction func(e *Evaluator, args ...Object) Object

type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "<built-in function '" + b.Name + "'>" }

// Function is a user-defined function together with the environment it
// closed over.
type Function struct {
	Name   string // empty for anonymous functions
	Params []*ast.Identifier
	Body   *ast.BlockStatement
	Env    *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<func>"
	}
	return "<func '" + f.Name + "'>"
}

// Error is a runtime failure in flight. Fault distinguishes the recoverable
// kinds a '?' expression may intercept from fatal errors (FaultNone).
type Error struct {
	Message string
	Fault   FaultKind
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// BreakSignal and ContinueSignal unwind loop bodies.
type BreakSignal struct{}

func (bs *BreakSignal) Type() ObjectType { return BREAK_SIGNAL_OBJ }
func (bs *BreakSignal) Inspect() string  { return "break" }

type ContinueSignal struct{}

func (cs *ContinueSignal) Type() ObjectType { return CONTINUE_SIGNAL_OBJ }
func (cs *ContinueSignal) Inspect() string  { return "continue" }

// ReturnSignal unwinds a function body, carrying the returned value.
type ReturnSignal struct {
	Value Object
}

func (rs *ReturnSignal) Type() ObjectType { return RETURN_SIGNAL_OBJ }
func (rs *ReturnSignal) Inspect() string  { return "return" }
