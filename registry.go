package ecsgo

import (
	"reflect"
	"sync"
)

// ComponentType identifies one component kind inside a Registry.
//
// Ids are dense, start at 0 and are never reused. A ComponentType also
// knows how to create storage for its kind, which is what lets an archetype
// hold heterogeneous columns without unchecked conversions.
type ComponentType interface {
	// ID returns the dense registry id of the kind.
	ID() int
	// Type returns the Go type backing the kind.
	Type() reflect.Type
	// Name returns a human-readable name (the Go type string).
	Name() string

	newColumn() column
}

type componentType[T any] struct {
	id  int
	typ reflect.Type
}

func (c *componentType[T]) ID() int            { return c.id }
func (c *componentType[T]) Type() reflect.Type { return c.typ }
func (c *componentType[T]) Name() string       { return c.typ.String() }

func (c *componentType[T]) newColumn() column {
	return &typedColumn[T]{ct: c}
}

// Registry assigns stable ids to component kinds on first reference.
//
// A Registry is append-only and safe for concurrent use. Each World owns
// one; worlds can share a Registry through WithRegistry.
type Registry struct {
	mu    sync.RWMutex
	byTyp map[reflect.Type]ComponentType
	types []ComponentType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byTyp: make(map[reflect.Type]ComponentType),
	}
}

// TypeOf resolves the ComponentType for T, allocating the next id on the
// first call for T.
func TypeOf[T any](r *Registry) ComponentType {
	typ := reflect.TypeFor[T]()

	// Fast path
	r.mu.RLock()
	ct, ok := r.byTyp[typ]
	r.mu.RUnlock()
	if ok {
		return ct
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have won the race.
	if ct, ok := r.byTyp[typ]; ok {
		return ct
	}

	ct = &componentType[T]{id: len(r.types), typ: typ}
	r.byTyp[typ] = ct
	r.types = append(r.types, ct)
	return ct
}

// Lookup returns the ComponentType registered for typ, if any.
// Unlike TypeOf it never allocates an id.
func (r *Registry) Lookup(typ reflect.Type) (ComponentType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ct, ok := r.byTyp[typ]
	return ct, ok
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Types returns all registered kinds in id order.
func (r *Registry) Types() []ComponentType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ComponentType, len(r.types))
	copy(out, r.types)
	return out
}
