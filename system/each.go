package system

import (
	"context"

	"github.com/hupe1980/ecsgo"
)

// Hooks run around the iteration of each matched archetype.
type Hooks struct {
	PreUpdate  func(a *ecsgo.Archetype)
	PostUpdate func(a *ecsgo.Archetype)
}

// Option configures a QuerySystem.
type Option func(*QuerySystem)

// WithHooks sets per-archetype hooks.
func WithHooks(h Hooks) Option {
	return func(s *QuerySystem) {
		s.hooks = h
	}
}

// QuerySystem runs a routine over every archetype of a query.
type QuerySystem struct {
	query *ecsgo.Query
	owned bool
	run   func(a *ecsgo.Archetype)
	hooks Hooks
}

func newQuerySystem(q *ecsgo.Query, owned bool, run func(*ecsgo.Archetype), optFns []Option) *QuerySystem {
	s := &QuerySystem{query: q, owned: owned, run: run}
	for _, fn := range optFns {
		if fn != nil {
			fn(s)
		}
	}
	return s
}

// Query returns the query the system iterates.
func (s *QuerySystem) Query() *ecsgo.Query { return s.query }

// Update implements System. Cancellation is checked between archetypes.
func (s *QuerySystem) Update(ctx context.Context) error {
	for _, a := range s.query.Archetypes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.hooks.PreUpdate != nil {
			s.hooks.PreUpdate(a)
		}
		s.run(a)
		if s.hooks.PostUpdate != nil {
			s.hooks.PostUpdate(a)
		}
	}
	return nil
}

// Close releases the query if the system created it.
func (s *QuerySystem) Close() error {
	if s.owned {
		return s.query.Close()
	}
	return nil
}

// ForEach calls fn for every T component in w.
func ForEach[T any](w *ecsgo.World, fn func(*T), optFns ...Option) *QuerySystem {
	q := ecsgo.NewQuery(w, ecsgo.All(ecsgo.KindOf[T]()))
	return newQuerySystem(q, true, func(a *ecsgo.Archetype) {
		col := ecsgo.Column[T](a)
		for i := range col {
			fn(&col[i])
		}
	}, optFns)
}

// ForEach2 calls fn for every entity having both an A and a B component.
func ForEach2[A, B any](w *ecsgo.World, fn func(*A, *B), optFns ...Option) *QuerySystem {
	q := ecsgo.NewQuery(w, ecsgo.All(ecsgo.KindOf[A](), ecsgo.KindOf[B]()))
	return newQuerySystem(q, true, func(a *ecsgo.Archetype) {
		as := ecsgo.Column[A](a)
		bs := ecsgo.Column[B](a)
		for i := range as {
			fn(&as[i], &bs[i])
		}
	}, optFns)
}

// ForEachOptional calls fn for every entity having an A component. The B
// argument is nil for entities without a B.
func ForEachOptional[A, B any](w *ecsgo.World, fn func(*A, *B), optFns ...Option) *QuerySystem {
	q := ecsgo.NewQuery(w, ecsgo.All(ecsgo.KindOf[A]()))
	return newQuerySystem(q, true, func(a *ecsgo.Archetype) {
		as := ecsgo.Column[A](a)
		bs := ecsgo.OptionalColumn[B](a)
		for i := range as {
			var b *B
			if len(bs) > 0 {
				b = &bs[i]
			}
			fn(&as[i], b)
		}
	}, optFns)
}

// ForEachEntity calls fn for every entity matched by q. The caller keeps
// ownership of q. fn must not add, remove or destroy entities.
func ForEachEntity(q *ecsgo.Query, fn func(*ecsgo.Entity), optFns ...Option) *QuerySystem {
	return newQuerySystem(q, false, func(a *ecsgo.Archetype) {
		for _, e := range a.Entities() {
			fn(e)
		}
	}, optFns)
}
