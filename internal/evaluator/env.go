package evaluator

import "sort"

// Env maps variable names to their last assigned value. There is one flat
// scope; nested blocks share it.
type Env struct {
	store map[string]Value
}

func NewEnv() *Env { return &Env{store: map[string]Value{}} }

func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.store[name]; ok {
		return v, nil
	}
	return nil, &UndefinedError{Name: name}
}

// Set binds name to v, replacing any previous binding.
func (e *Env) Set(name string, v Value) { e.store[name] = v }

func (e *Env) Len() int { return len(e.store) }

// Names returns the bound names in ascending order.
func (e *Env) Names() []string {
	out := make([]string, 0, len(e.store))
	for k := range e.store {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
