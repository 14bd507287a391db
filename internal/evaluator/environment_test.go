package evaluator

import "testing"

func TestDeclareAndGet(t *testing.T) {
	env := NewEnvironment()
	if !env.Declare("x", &Integer{Value: 1}, true) {
		t.Fatal("declare failed")
	}
	obj, ok := env.Get("x")
	if !ok {
		t.Fatal("x not found")
	}
	assertInteger(t, obj, 1)
}

func TestDeclareTwiceFails(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", &Integer{Value: 1}, true)
	if env.Declare("x", &Integer{Value: 2}, true) {
		t.Error("redeclaration in the same scope should fail")
	}
}

func TestShadowingOuterScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("x", &Integer{Value: 1}, true)

	inner := NewEnclosedEnvironment(outer)
	if !inner.Declare("x", &Integer{Value: 2}, true) {
		t.Fatal("shadowing an outer binding should be allowed")
	}

	obj, _ := inner.Get("x")
	assertInteger(t, obj, 2)
	obj, _ = outer.Get("x")
	assertInteger(t, obj, 1)
}

func TestAssignWalksOutward(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("x", &Integer{Value: 1}, true)

	inner := NewEnclosedEnvironment(outer)
	if inner.Assign("x", &Integer{Value: 5}) != Assigned {
		t.Fatal("assign should find the outer binding")
	}
	obj, _ := outer.Get("x")
	assertInteger(t, obj, 5)
}

func TestAssignMissing(t *testing.T) {
	env := NewEnvironment()
	if env.Assign("nope", TRUE) != AssignNotFound {
		t.Error("expected AssignNotFound")
	}
}

func TestAssignImmutable(t *testing.T) {
	env := NewEnvironment()
	env.Declare("print", &Builtin{Name: "print"}, false)
	if env.Assign("print", TRUE) != AssignImmutable {
		t.Error("expected AssignImmutable")
	}
}
