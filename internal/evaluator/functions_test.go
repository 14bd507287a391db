package evaluator

import (
	"testing"
)

func TestFunctionDeclarationAndCall(t *testing.T) {
	input := `fn add(a, b) {
	return a + b
}
add(2, 3)`
	result, _ := testEval(t, input)
	assertInteger(t, result, 5)
}

func TestFunctionWithoutReturnYieldsAbsent(t *testing.T) {
	input := `fn noop() {
	1 + 1
}
noop()`
	result, _ := testEval(t, input)
	if _, ok := result.(*Absent); !ok {
		t.Fatalf("expected <absent>, got %v", result)
	}
}

func TestBareReturnYieldsAbsent(t *testing.T) {
	input := `fn noop() {
	return
}
noop()`
	result, _ := testEval(t, input)
	if _, ok := result.(*Absent); !ok {
		t.Fatalf("expected <absent>, got %v", result)
	}
}

func TestReturnStopsBody(t *testing.T) {
	input := `fn pick(flag) {
	if flag {
		return 1
	}
	return 2
}
pick(false)`
	result, _ := testEval(t, input)
	assertInteger(t, result, 2)
}

func TestReturnUnwindsLoop(t *testing.T) {
	input := `fn firstBig(xs) {
	for x in xs {
		if x > 10 {
			return x
		}
	}
	return 0
}
firstBig([3, 14, 15])`
	result, _ := testEval(t, input)
	assertInteger(t, result, 14)
}

func TestClosureCapturesDeclarationScope(t *testing.T) {
	input := `count := 0
fn bump() {
	count += 1
	return count
}
bump()
bump()
bump()`
	result, _ := testEval(t, input)
	assertInteger(t, result, 3)
}

func TestRecursion(t *testing.T) {
	input := `fn fact(n) {
	if n < 2 {
		return 1
	}
	return n * fact(n - 1)
}
fact(6)`
	result, _ := testEval(t, input)
	assertInteger(t, result, 720)
}

func TestAnonymousFunction(t *testing.T) {
	input := `double := fn(x) {
	return x * 2
}
double(21)`
	result, _ := testEval(t, input)
	assertInteger(t, result, 42)
}

func TestChainThroughUserFunction(t *testing.T) {
	input := `fn double(x) {
	return x * 2
}
5 -> double()`
	result, _ := testEval(t, input)
	assertInteger(t, result, 10)
}

func TestFunctionArityMismatchIsFatal(t *testing.T) {
	input := `fn add(a, b) {
	return a + b
}
add(1)`
	result, _ := testEval(t, input)
	assertFatal(t, result, "expects 2 arguments, got 1")
}

func TestReturnOutsideFunctionIsFatal(t *testing.T) {
	result, _ := testEval(t, "return 1")
	assertFatal(t, result, "outside of a function")

	result, _ = testEval(t, "if true {\n\treturn 1\n}")
	assertFatal(t, result, "outside of a function")
}

func TestFunctionRedeclarationIsFatal(t *testing.T) {
	input := `fn f() {
	return 1
}
fn f() {
	return 2
}`
	result, _ := testEval(t, input)
	assertFatal(t, result, "already declared")
}

func TestFaultInsideFunctionIsCatchable(t *testing.T) {
	input := `fn first(xs) {
	return xs[0]
}
? first([])`
	assertCaught(t, input, false)
}

func TestFunctionRendering(t *testing.T) {
	input := `fn greet() {
	return "hi"
}
print(greet)
print(fn(x) { return x })`
	_, out := testEval(t, input)
	if out != "<func 'greet'>\n<func>\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestFunctionTypeName(t *testing.T) {
	input := `fn f() {
	return 1
}
type(f)`
	result, _ := testEval(t, input)
	s, ok := result.(*Str)
	if !ok || s.Value != "func" {
		t.Fatalf("expected \"func\", got %v", result)
	}
}
