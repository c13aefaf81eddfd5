package ecsgo

import (
	"fmt"
	"reflect"
	"time"
)

// Entity is a handle to one row of one archetype.
//
// The pointer stored in the archetype's entity column is the authoritative
// handle: when rows move (swap removal, mutation) the store updates it in
// place, so a *Entity obtained from Build stays usable until Destroy.
// Handles must be used by pointer only: a copied Entity value is not
// tracked and panics with ErrInvalidEntity when used.
type Entity struct {
	archetype *Archetype
	index     int
}

// Archetype returns the archetype currently holding the entity.
func (e *Entity) Archetype() *Archetype { return e.archetype }

// Index returns the row of the entity within its archetype.
func (e *Entity) Index() int { return e.index }

// Valid reports whether the entity has not been destroyed.
func (e *Entity) Valid() bool { return e.archetype != nil }

// Destroy removes the entity from its archetype. The handle is invalid
// afterwards.
func (e *Entity) Destroy() {
	e.check()
	w := e.archetype.world
	e.archetype.remove(e.index)
	e.archetype = nil
	e.index = -1
	w.metrics.RecordDestroy()
}

// Add starts a mutation adding fields to the entity.
func (e *Entity) Add(fields ...Field) *Mutation {
	return (&Mutation{entity: e}).Add(fields...)
}

// Remove starts a mutation removing kinds from the entity.
func (e *Entity) Remove(kinds ...Kind) *Mutation {
	return (&Mutation{entity: e}).Remove(kinds...)
}

// Get returns a pointer to the T component of e. It panics with
// ErrKindAbsent if e has no T; check with Has first for optional kinds.
//
// The pointer aliases archetype storage and is valid until the next
// structural change to that archetype.
func Get[T any](e *Entity) *T {
	e.check()
	tc, ok := typedColumnOf[T](e.archetype.components, e.archetype.registry())
	if !ok {
		panic(fmt.Errorf("%w: %s on entity in archetype %d", ErrKindAbsent, reflect.TypeFor[T](), e.archetype.id))
	}
	return &tc.data[e.index]
}

// Has reports whether e has a T component.
func Has[T any](e *Entity) bool {
	e.check()
	return HasKind[T](e.archetype)
}

func (e *Entity) check() {
	if e == nil || e.archetype == nil {
		panic(ErrInvalidEntity)
	}
	if rows := e.archetype.entities; e.index < 0 || e.index >= len(rows) || rows[e.index] != e {
		panic(fmt.Errorf("%w: handle is not the one stored at row %d", ErrInvalidEntity, e.index))
	}
}

// migrate moves e into the archetype described by b. The new row is
// committed before the old one is removed, and e itself becomes the handle
// stored in the new row.
func (e *Entity) migrate(b *Builder) {
	start := time.Now()
	from := e.archetype
	w := from.world

	moved := b.build(w)
	from.remove(e.index)

	// moved.index is read after the removal: when source and target
	// archetype are the same, the swap may have relocated the new row.
	e.archetype = moved.archetype
	e.index = moved.index
	e.archetype.entities[e.index] = e

	w.logger.LogMutation(from.id, e.archetype.id)
	w.metrics.RecordMutation(time.Since(start))
}
