package evaluator

import (
	"io"
	"os"

	"github.com/ashlang/ash/internal/ast"
	"github.com/ashlang/ash/internal/config"
)

type Evaluator struct {
	Out io.Writer

	// Engine runs spawned processes and pipelines.
	Engine *ProcessEngine

	// MaxDepth bounds Eval recursion.
	MaxDepth int

	// Trace prints each statement's node type and position before it runs.
	Trace bool

	// CurrentFile being evaluated, for error positions.
	CurrentFile string

	evalDepth int
}

func New() *Evaluator {
	return &Evaluator{
		Out:      os.Stdout,
		Engine:   NewProcessEngine(),
		MaxDepth: config.DefaultMaxEvalDepth,
	}
}

func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > e.MaxDepth {
		return newError("evaluation depth exceeded %d", e.MaxDepth)
	}

	result := e.evalCore(node, env)

	// Stamp the node position onto errors that don't carry one yet, so the
	// innermost failing expression wins.
	if err, ok := result.(*Error); ok && err.Line == 0 {
		if tp, ok := node.(ast.TokenProvider); ok {
			tok := tp.GetToken()
			err.Line = tok.Line
			err.Column = tok.Column
		}
	}

	return result
}

func (e *Evaluator) evalCore(node ast.Node, env *Environment) Object {
	switch node := node.(type) {

	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.DeclareStatement:
		return e.evalDeclare(node, env)
	case *ast.AssignStatement:
		return e.evalAssign(node, env)
	case *ast.OpAssignStatement:
		return e.evalOpAssign(node, env)
	case *ast.BlockStatement:
		return e.evalBlock(node, NewEnclosedEnvironment(env))
	case *ast.IfStatement:
		return e.evalIf(node, env)
	case *ast.WhileStatement:
		return e.evalWhile(node, env)
	case *ast.ForStatement:
		return e.evalFor(node, env)
	case *ast.BreakStatement:
		return &BreakSignal{}
	case *ast.ContinueStatement:
		return &ContinueSignal{}
	case *ast.FuncStatement:
		return e.evalFuncStatement(node, env)
	case *ast.ReturnStatement:
		return e.evalReturn(node, env)

	// Literals
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.StringLiteral:
		return &Str{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.ListLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &List{Elements: elements}
	case *ast.MapLiteral:
		return e.evalMapLiteral(node, env)
	case *ast.FunctionLiteral:
		return &Function{Params: node.Params, Body: node.Body, Env: env}

	// Expressions
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)
	case *ast.PropertyExpression:
		return e.evalPropertyExpression(node, env)
	case *ast.FallibleExpression:
		return e.evalFallible(node, env)
	case *ast.CallExpression:
		return e.evalCall(node, env)
	case *ast.ChainExpression:
		return e.evalChain(node, env)
	case *ast.SpawnExpression:
		return e.evalSpawn(node, env)
	case *ast.PipelineExpression:
		return e.evalPipeline(node, env)
	}

	return newError("unknown node type: %T", node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object = ABSENT

	for _, statement := range program.Statements {
		e.traceStatement(statement)
		result = e.Eval(statement, env)
		switch result := result.(type) {
		case *Error:
			return result
		case *BreakSignal, *ContinueSignal:
			return newError("'%s' outside of a loop", result.Inspect())
		case *ReturnSignal:
			return newError("'return' outside of a function")
		}
	}

	return result
}

// evalBlock runs statements in an already-enclosed environment, letting
// break/continue signals and errors unwind to the surrounding construct.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, env *Environment) Object {
	var result Object = ABSENT

	for _, statement := range block.Statements {
		e.traceStatement(statement)
		result = e.Eval(statement, env)
		if result != nil {
			switch result.Type() {
			case ERROR_OBJ, BREAK_SIGNAL_OBJ, CONTINUE_SIGNAL_OBJ, RETURN_SIGNAL_OBJ:
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *Environment) []Object {
	var result []Object

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if isError(evaluated) {
			return []Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

func (e *Evaluator) evalMapLiteral(node *ast.MapLiteral, env *Environment) Object {
	m := NewMap()
	for _, pair := range node.Pairs {
		value := e.Eval(pair.Value, env)
		if isError(value) {
			return value
		}
		m.Set(pair.Key, value)
	}
	return m
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newError("identifier not found: %s", node.Value)
}
