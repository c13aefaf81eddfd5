package ecsgo

import (
	"fmt"
	"slices"
	"time"
)

// Builder accumulates component fields and appends entities built from them.
//
// A builder can be reused: every Build appends a new entity with the same
// values. The archetype it resolves to is cached until the kind set changes.
//
// Example:
//
//	e := ecsgo.NewBuilder(
//	    ecsgo.With(Position{}),
//	    ecsgo.With(Velocity{X: 10}),
//	).Build(w)
type Builder struct {
	fields []Field

	cachedWorld *World
	cached      *Archetype
	resolved    []resolvedField
}

type resolvedField struct {
	ct    ComponentType
	field Field
}

// NewBuilder creates a builder holding the given fields.
func NewBuilder(fields ...Field) *Builder {
	b := &Builder{}
	return b.Add(fields...)
}

// Add stages fields. It panics with ErrDuplicateKind if a kind is already
// staged.
func (b *Builder) Add(fields ...Field) *Builder {
	for _, f := range fields {
		if b.indexOf(f) >= 0 {
			panic(fmt.Errorf("%w: %s", ErrDuplicateKind, f.Type()))
		}
		b.fields = append(b.fields, f)
		b.invalidate()
	}
	return b
}

// Remove unstages kinds. It panics with ErrKindAbsent if a kind is not staged.
func (b *Builder) Remove(kinds ...Kind) *Builder {
	for _, k := range kinds {
		i := b.indexOf(k)
		if i < 0 {
			panic(fmt.Errorf("%w: %s", ErrKindAbsent, k.Type()))
		}
		b.fields = slices.Delete(b.fields, i, i+1)
		b.invalidate()
	}
	return b
}

// Has reports whether k is staged.
func (b *Builder) Has(k Kind) bool { return b.indexOf(k) >= 0 }

// Len returns the number of staged kinds.
func (b *Builder) Len() int { return len(b.fields) }

// Build appends one entity to the archetype matching the staged kinds and
// returns its handle.
func (b *Builder) Build(w *World) *Entity {
	start := time.Now()
	e := b.build(w)
	w.metrics.RecordBuild(1, time.Since(start))
	return e
}

// BuildN appends count entities sharing the staged values. Capacity for all
// of them is reserved up front. Handles can be read back from the
// archetype's entity column.
func (b *Builder) BuildN(w *World, count int) {
	if count <= 0 {
		return
	}
	start := time.Now()
	a, fields := b.resolve(w)
	a.Reserve(count)
	for range count {
		a.createEntity(fields)
	}
	w.logger.LogBulkBuild(a.id, count)
	w.metrics.RecordBuild(count, time.Since(start))
}

func (b *Builder) build(w *World) *Entity {
	a, fields := b.resolve(w)
	return a.createEntity(fields)
}

func (b *Builder) resolve(w *World) (*Archetype, []resolvedField) {
	if b.cached != nil && b.cachedWorld == w {
		return b.cached, b.resolved
	}

	resolved := make([]resolvedField, len(b.fields))
	types := make([]ComponentType, len(b.fields))
	for i, f := range b.fields {
		ct := f.resolve(w.registry)
		resolved[i] = resolvedField{ct: ct, field: f}
		types[i] = ct
	}

	b.cachedWorld = w
	b.cached = w.getOrCreate(types)
	b.resolved = resolved
	return b.cached, b.resolved
}

func (b *Builder) invalidate() {
	b.cachedWorld = nil
	b.cached = nil
	b.resolved = nil
}

func (b *Builder) indexOf(k Kind) int {
	typ := k.Type()
	return slices.IndexFunc(b.fields, func(f Field) bool { return f.Type() == typ })
}
