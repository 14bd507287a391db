package evaluator

import "testing"

func TestRenderScalars(t *testing.T) {
	tests := []struct {
		obj  Object
		want string
	}{
		{&Integer{Value: 42}, "42"},
		{TRUE, "true"},
		{&Str{Value: "raw text"}, "raw text"},
		{ABSENT, "<absent>"},
		{&Builtin{Name: "len"}, "<built-in function 'len'>"},
		{&Process{Program: "ls", Codes: []int64{0}}, "<process 'ls' code=0>"},
	}
	for _, tt := range tests {
		if got := Render(tt.obj); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestRenderEmptyCollections(t *testing.T) {
	if got := Render(&List{}); got != "[]" {
		t.Errorf("empty list: %q", got)
	}
	if got := Render(NewMap()); got != "{}" {
		t.Errorf("empty map: %q", got)
	}
}

func TestRenderList(t *testing.T) {
	list := &List{Elements: []Object{
		&Integer{Value: 1},
		&Str{Value: "two"},
	}}
	want := "[\n    1,\n    \"two\",\n]"
	if got := Render(list); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderMapKeepsInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("z", &Integer{Value: 1})
	m.Set("a", &Integer{Value: 2})
	want := "{\n    \"z\": 1,\n    \"a\": 2,\n}"
	if got := Render(m); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderNestedIndentation(t *testing.T) {
	inner := &List{Elements: []Object{&Str{Value: "x"}}}
	outer := &List{Elements: []Object{inner}}
	want := "[\n    [\n        \"x\",\n    ],\n]"
	if got := Render(outer); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
