package cellmesh

import (
	"fmt"

	"github.com/google/uuid"
)

// Registry is a generic named-factory registry. Register stores a
// constructor closure; Get calls it fresh every time and tags the
// result with a uuid instance id for log correlation.
type Registry[T any] struct {
	factories map[string]func() T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]func() T)}
}

// Register adds a named constructor. A duplicate name is a contract
// violation: it returns an error, or panics when Strict is set.
func (r *Registry[T]) Register(name string, ctor func() T) error {
	if _, exists := r.factories[name]; exists {
		err := fmt.Errorf("cellmesh: registry: duplicate registration for %q", name)
		if Strict {
			panic(err)
		}
		return err
	}
	r.factories[name] = ctor
	return nil
}

// Get constructs a fresh instance of name along with a uuid
// instance id, or (zero, "", false) if name is unknown. Unknown names
// panic instead when Strict is set.
func (r *Registry[T]) Get(name string) (T, string, bool) {
	ctor, ok := r.factories[name]
	if !ok {
		var zero T
		if Strict {
			panic(fmt.Sprintf("cellmesh: registry: unknown name %q", name))
		}
		return zero, "", false
	}
	return ctor(), uuid.NewString(), true
}

// List returns the registered names in arbitrary (map) order.
func (r *Registry[T]) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
