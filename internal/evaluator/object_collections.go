package evaluator

import "strings"

// List is a mutable ordered collection. Aliasing is intentional: two
// bindings may refer to the same list, and index assignment through either
// is visible through both.
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

// Map is a string-keyed collection that remembers insertion order. Keys keep
// their original position on overwrite.
type Map struct {
	keys  []string
	items map[string]Object
}

func NewMap() *Map {
	return &Map{items: make(map[string]Object)}
}

func (m *Map) Get(key string) (Object, bool) {
	v, ok := m.items[key]
	return v, ok
}

func (m *Map) Set(key string, value Object) {
	if _, exists := m.items[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string { return m.keys }

func (m *Map) Len() int { return len(m.keys) }

func (m *Map) Type() ObjectType { return MAP_OBJ }
func (m *Map) Inspect() string {
	var out strings.Builder
	out.WriteString("{")
	for i, k := range m.keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString("\"" + k + "\": " + m.items[k].Inspect())
	}
	out.WriteString("}")
	return out.String()
}
