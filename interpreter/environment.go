package interpreter

import (
	"sort"

	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/values"
)

// Environment is a single flat table of bindings. It has no parent: entering
// a call or a block replaces it outright.
type Environment struct {
	values map[string]values.Value
}

func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]values.Value)}
}

// Define binds name, overwriting any existing binding.
func (e *Environment) Define(name string, value values.Value) {
	e.values[name] = value
}

func (e *Environment) Get(name string) (values.Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Assign overwrites an existing binding. It never declares.
func (e *Environment) Assign(name string, value values.Value) error {
	if _, ok := e.values[name]; !ok {
		return errors.NewRuntimeError("Undefined variable '%s'.", name)
	}
	e.values[name] = value
	return nil
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
