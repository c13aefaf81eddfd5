package ecsgo

import (
	"fmt"
	"reflect"
)

// Archetype stores every entity that has exactly one particular set of
// component kinds. Components are kept in parallel columns, one per kind,
// aligned with the entity column.
//
// Slices returned by Column and friends alias archetype storage. They stay
// valid until the next structural change to this archetype (a row being
// appended or removed).
type Archetype struct {
	id          uint32
	world       *World
	fingerprint Fingerprint
	components  *components
	entities    []*Entity
}

func newArchetype(w *World, id uint32, fp Fingerprint, types []ComponentType) *Archetype {
	return &Archetype{
		id:          id,
		world:       w,
		fingerprint: fp,
		components:  newComponents(types),
	}
}

// ID returns the dense creation-order id of the archetype within its world.
func (a *Archetype) ID() uint32 { return a.id }

// World returns the world owning the archetype.
func (a *Archetype) World() *World { return a.world }

// Fingerprint returns the kind set of the archetype.
func (a *Archetype) Fingerprint() Fingerprint { return a.fingerprint }

// Types returns the kinds of the archetype in schema order.
func (a *Archetype) Types() []ComponentType { return a.components.types() }

// Len returns the number of entities stored in the archetype.
func (a *Archetype) Len() int { return len(a.entities) }

// Entities returns the entity column. Entry i is the handle of row i.
func (a *Archetype) Entities() []*Entity { return a.entities }

// Has reports whether ct is part of the archetype.
func (a *Archetype) Has(ct ComponentType) bool { return a.components.has(ct.ID()) }

// Reserve grows the remaining capacity of every column by n rows.
func (a *Archetype) Reserve(n int) {
	if n <= 0 {
		return
	}
	if cap(a.entities)-len(a.entities) < n {
		grown := make([]*Entity, len(a.entities), len(a.entities)+n)
		copy(grown, a.entities)
		a.entities = grown
	}
	a.components.reserve(n)
}

func (a *Archetype) createEntity(fields []resolvedField) *Entity {
	a.components.appendRow(fields)
	e := &Entity{archetype: a, index: len(a.entities)}
	a.entities = append(a.entities, e)
	return e
}

// remove deletes row i by moving the last row into its slot. The moved
// entity's index is patched so every holder of its handle sees the new row.
func (a *Archetype) remove(i int) {
	a.checkRow(i)

	last := len(a.entities) - 1
	a.components.removeRow(i)

	a.entities[i] = a.entities[last]
	a.entities[last] = nil
	a.entities = a.entities[:last]
	if i < last {
		a.entities[i].index = i
	}
}

func (a *Archetype) checkRow(i int) {
	if i < 0 || i >= len(a.entities) {
		panic(fmt.Errorf("%w: row %d in archetype %d with %d rows", ErrRowOutOfRange, i, a.id, len(a.entities)))
	}
}

func (a *Archetype) registry() *Registry { return a.world.registry }

// HasKind reports whether T is part of the archetype.
func HasKind[T any](a *Archetype) bool {
	_, ok := typedColumnOf[T](a.components, a.registry())
	return ok
}

// Column returns the column of T. It panics with ErrKindAbsent when T is not
// part of the archetype; use OptionalColumn or HasKind for optional kinds.
func Column[T any](a *Archetype) []T {
	tc, ok := typedColumnOf[T](a.components, a.registry())
	if !ok {
		panic(fmt.Errorf("%w: %s in archetype %d", ErrKindAbsent, reflect.TypeFor[T](), a.id))
	}
	return tc.data
}

// TryColumn returns the column of T and whether T is part of the archetype.
func TryColumn[T any](a *Archetype) ([]T, bool) {
	tc, ok := typedColumnOf[T](a.components, a.registry())
	if !ok {
		return nil, false
	}
	return tc.data, true
}

// OptionalColumn returns the column of T, or an empty slice when T is not
// part of the archetype.
func OptionalColumn[T any](a *Archetype) []T {
	data, _ := TryColumn[T](a)
	return data
}
