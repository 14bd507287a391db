package parser

import (
	"testing"

	"github.com/ashlang/ash/internal/ast"
	"github.com/ashlang/ash/internal/diagnostics"
	"github.com/ashlang/ash/internal/lexer"
	"github.com/ashlang/ash/internal/pipeline"
)

func parseProgram(t *testing.T, input string) (*ast.Program, *pipeline.PipelineContext) {
	t.Helper()
	ctx := &pipeline.PipelineContext{Source: input}
	p := New(lexer.Stream(input), ctx)
	program := p.ParseProgram()
	return program, ctx
}

func parseNoErrors(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, ctx := parseProgram(t, input)
	if ctx.HasErrors() {
		t.Fatalf("parser errors: %v", ctx.Errors)
	}
	return program
}

func firstStatement(t *testing.T, input string) ast.Statement {
	t.Helper()
	program := parseNoErrors(t, input)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	return program.Statements[0]
}

func TestDeclareStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "x := 5").(*ast.DeclareStatement)
	if !ok {
		t.Fatalf("expected DeclareStatement")
	}
	if stmt.Target.Kind != ast.TargetName || stmt.Target.Name.Value != "x" {
		t.Errorf("wrong target: %+v", stmt.Target)
	}
	lit, ok := stmt.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("wrong value: %v", stmt.Value)
	}
}

func TestDestructureDeclare(t *testing.T) {
	stmt, ok := firstStatement(t, "[v, ok] := ? m.key").(*ast.DeclareStatement)
	if !ok {
		t.Fatalf("expected DeclareStatement")
	}
	if stmt.Target.Kind != ast.TargetDestructure {
		t.Fatalf("expected destructure target")
	}
	if len(stmt.Target.Names) != 2 || stmt.Target.Names[0].Value != "v" || stmt.Target.Names[1].Value != "ok" {
		t.Errorf("wrong names: %v", stmt.Target.Names)
	}
	if _, ok := stmt.Value.(*ast.FallibleExpression); !ok {
		t.Errorf("expected fallible value, got %T", stmt.Value)
	}
}

func TestPathAssignment(t *testing.T) {
	stmt, ok := firstStatement(t, `m["k"] = 2`).(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected AssignStatement")
	}
	if stmt.Target.Kind != ast.TargetPath {
		t.Fatalf("expected path target")
	}
	if _, ok := stmt.Target.Path.(*ast.IndexExpression); !ok {
		t.Errorf("expected index path, got %T", stmt.Target.Path)
	}
}

func TestPropertyDeclare(t *testing.T) {
	stmt, ok := firstStatement(t, "person.name := \"ada\"").(*ast.DeclareStatement)
	if !ok {
		t.Fatalf("expected DeclareStatement")
	}
	path, ok := stmt.Target.Path.(*ast.PropertyExpression)
	if !ok {
		t.Fatalf("expected property path, got %T", stmt.Target.Path)
	}
	if path.Name != "name" {
		t.Errorf("wrong property: %q", path.Name)
	}
}

func TestOpAssign(t *testing.T) {
	stmt, ok := firstStatement(t, "x += 2").(*ast.OpAssignStatement)
	if !ok {
		t.Fatalf("expected OpAssignStatement")
	}
	if stmt.Operator != "+" {
		t.Errorf("wrong operator: %q", stmt.Operator)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	stmt := firstStatement(t, "1 + 2 * 3").(*ast.ExpressionStatement)
	sum, ok := stmt.Expression.(*ast.InfixExpression)
	if !ok || sum.Operator != "+" {
		t.Fatalf("expected '+' at the root, got %v", stmt.Expression)
	}
	prod, ok := sum.Right.(*ast.InfixExpression)
	if !ok || prod.Operator != "*" {
		t.Fatalf("expected '*' on the right, got %v", sum.Right)
	}
}

func TestFallibleBindsBeforeLogical(t *testing.T) {
	stmt := firstStatement(t, `? m["k"] == 1 && other`).(*ast.ExpressionStatement)
	and, ok := stmt.Expression.(*ast.InfixExpression)
	if !ok || and.Operator != "&&" {
		t.Fatalf("expected '&&' at the root, got %T", stmt.Expression)
	}
	fallible, ok := and.Left.(*ast.FallibleExpression)
	if !ok {
		t.Fatalf("expected fallible on the left, got %T", and.Left)
	}
	cmp, ok := fallible.Inner.(*ast.InfixExpression)
	if !ok || cmp.Operator != "==" {
		t.Fatalf("expected comparison inside '?', got %T", fallible.Inner)
	}
}

func TestIfElseChain(t *testing.T) {
	input := `if a {
	x := 1
} else if b {
	x := 2
} else {
	x := 3
}`
	stmt, ok := firstStatement(t, input).(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement")
	}
	if len(stmt.Branches) != 2 {
		t.Errorf("expected 2 branches, got %d", len(stmt.Branches))
	}
	if stmt.Else == nil {
		t.Errorf("expected else block")
	}
}

func TestWhileStatement(t *testing.T) {
	stmt, ok := firstStatement(t, "while i < 10 {\n\ti += 1\n}").(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected WhileStatement")
	}
	if len(stmt.Body.Statements) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}
}

func TestForStatements(t *testing.T) {
	forList, ok := firstStatement(t, "for x in xs {\n\tprint(x)\n}").(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement")
	}
	if forList.Name == nil || forList.Name.Value != "x" {
		t.Errorf("wrong binding: %v", forList.Name)
	}

	forMap, ok := firstStatement(t, "for [k, v] in m {\n\tprint(k, v)\n}").(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement")
	}
	if len(forMap.Names) != 2 {
		t.Errorf("expected 2 bindings, got %d", len(forMap.Names))
	}
}

func TestSpawnExpression(t *testing.T) {
	stmt := firstStatement(t, `$ls("-l", dir)`).(*ast.ExpressionStatement)
	spawn, ok := stmt.Expression.(*ast.SpawnExpression)
	if !ok {
		t.Fatalf("expected SpawnExpression, got %T", stmt.Expression)
	}
	prog := spawn.Program.(*ast.StringLiteral)
	if prog.Value != "ls" {
		t.Errorf("wrong program: %q", prog.Value)
	}
	if len(spawn.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(spawn.Args))
	}
}

func TestSpawnQuotedPath(t *testing.T) {
	stmt := firstStatement(t, `$"/usr/bin/env"()`).(*ast.ExpressionStatement)
	spawn := stmt.Expression.(*ast.SpawnExpression)
	if spawn.Program.(*ast.StringLiteral).Value != "/usr/bin/env" {
		t.Errorf("wrong program: %v", spawn.Program)
	}
}

func TestPipelineExpression(t *testing.T) {
	stmt := firstStatement(t, "$cat(\"f\") | $grep(\"x\") | $wc()").(*ast.ExpressionStatement)
	pipe, ok := stmt.Expression.(*ast.PipelineExpression)
	if !ok {
		t.Fatalf("expected PipelineExpression, got %T", stmt.Expression)
	}
	if len(pipe.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(pipe.Stages))
	}
	if pipe.Stages[1].Program.(*ast.StringLiteral).Value != "grep" {
		t.Errorf("wrong middle stage")
	}
}

func TestPipelineRejectsNonSpawnStage(t *testing.T) {
	_, ctx := parseProgram(t, "$cat() | 42")
	if !hasCode(ctx, diagnostics.ErrP005) {
		t.Fatalf("expected P005, got %v", ctx.Errors)
	}
}

func TestChainExpression(t *testing.T) {
	stmt := firstStatement(t, "xs -> len() -> print()").(*ast.ExpressionStatement)
	outer, ok := stmt.Expression.(*ast.ChainExpression)
	if !ok {
		t.Fatalf("expected ChainExpression, got %T", stmt.Expression)
	}
	if _, ok := outer.Left.(*ast.ChainExpression); !ok {
		t.Errorf("chains should associate left, got %T", outer.Left)
	}
}

func TestMapLiteralKeys(t *testing.T) {
	stmt := firstStatement(t, `m := {"a": 1, b: 2}`).(*ast.DeclareStatement)
	lit, ok := stmt.Value.(*ast.MapLiteral)
	if !ok {
		t.Fatalf("expected MapLiteral, got %T", stmt.Value)
	}
	if len(lit.Pairs) != 2 || lit.Pairs[0].Key != "a" || lit.Pairs[1].Key != "b" {
		t.Errorf("wrong pairs: %v", lit.Pairs)
	}
}

func TestMultilineLiterals(t *testing.T) {
	input := `xs := [
	1,
	2,
]
m := {
	"a": 1,
}`
	program := parseNoErrors(t, input)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
}

func TestInvalidAssignTarget(t *testing.T) {
	_, ctx := parseProgram(t, "1 + 2 := 3")
	if !hasCode(ctx, diagnostics.ErrP004) {
		t.Fatalf("expected P004, got %v", ctx.Errors)
	}
}

func TestExpectedTokenDiagnostic(t *testing.T) {
	_, ctx := parseProgram(t, "if x \n print(1)")
	if !hasCode(ctx, diagnostics.ErrP002) {
		t.Fatalf("expected P002, got %v", ctx.Errors)
	}
}

func TestLexDiagnosticSurfaces(t *testing.T) {
	_, ctx := parseProgram(t, "x := \"abc")
	if !hasCode(ctx, diagnostics.ErrL002) {
		t.Fatalf("expected L002, got %v", ctx.Errors)
	}
}

func TestFuncStatement(t *testing.T) {
	input := `fn add(a, b) {
	return a + b
}`
	stmt, ok := firstStatement(t, input).(*ast.FuncStatement)
	if !ok {
		t.Fatalf("expected FuncStatement")
	}
	if stmt.Name.Value != "add" {
		t.Errorf("wrong name: %q", stmt.Name.Value)
	}
	if len(stmt.Params) != 2 || stmt.Params[0].Value != "a" || stmt.Params[1].Value != "b" {
		t.Errorf("wrong params: %v", stmt.Params)
	}
	if len(stmt.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}
	ret, ok := stmt.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected ReturnStatement, got %T", stmt.Body.Statements[0])
	}
	if _, ok := ret.Value.(*ast.InfixExpression); !ok {
		t.Errorf("expected infix return value, got %T", ret.Value)
	}
}

func TestAnonymousFunctionLiteral(t *testing.T) {
	stmt, ok := firstStatement(t, "double := fn(x) { return x * 2 }").(*ast.DeclareStatement)
	if !ok {
		t.Fatalf("expected DeclareStatement")
	}
	lit, ok := stmt.Value.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected FunctionLiteral, got %T", stmt.Value)
	}
	if len(lit.Params) != 1 || lit.Params[0].Value != "x" {
		t.Errorf("wrong params: %v", lit.Params)
	}
}

func TestBareReturn(t *testing.T) {
	input := `fn noop() {
	return
}`
	stmt := firstStatement(t, input).(*ast.FuncStatement)
	ret, ok := stmt.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected ReturnStatement, got %T", stmt.Body.Statements[0])
	}
	if ret.Value != nil {
		t.Errorf("bare return must carry no value, got %T", ret.Value)
	}
}

func TestDuplicateParameterDiagnostic(t *testing.T) {
	_, ctx := parseProgram(t, "fn f(a, a) { return a }")
	if !hasCode(ctx, diagnostics.ErrP004) {
		t.Fatalf("expected P004, got %v", ctx.Errors)
	}
}

func hasCode(ctx *pipeline.PipelineContext, code diagnostics.Code) bool {
	for _, err := range ctx.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}
