package evaluator

type binding struct {
	value   Object
	mutable bool
}

// Environment is a lexical scope. Lookups walk outward through enclosing
// scopes; declarations always land in the innermost one.
type Environment struct {
	store map[string]binding
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]binding)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

func (e *Environment) Get(name string) (Object, bool) {
	b, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return b.value, ok
}

// Declare introduces a new binding in this scope. It fails when the name is
// already bound here; shadowing an outer scope is allowed.
func (e *Environment) Declare(name string, value Object, mutable bool) bool {
	if _, exists := e.store[name]; exists {
		return false
	}
	e.store[name] = binding{value: value, mutable: mutable}
	return true
}

type AssignResult int

const (
	Assigned AssignResult = iota
	AssignNotFound
	AssignImmutable
)

// Assign rebinds the nearest existing binding of name, respecting its
// mutability.
func (e *Environment) Assign(name string, value Object) AssignResult {
	if b, ok := e.store[name]; ok {
		if !b.mutable {
			return AssignImmutable
		}
		e.store[name] = binding{value: value, mutable: true}
		return Assigned
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return AssignNotFound
}
