// Package ecsgo provides an in-memory, archetype-partitioned record store.
//
// Records ("entities") are grouped by the exact set of component kinds they
// carry. Each group, an Archetype, stores its components as parallel
// columns so update routines can walk one kind at a time with good cache
// locality.
//
// # Quick Start
//
//	type Position struct{ X, Y float64 }
//	type Velocity struct{ X, Y float64 }
//
//	w := ecsgo.New()
//	e := ecsgo.NewBuilder(
//	    ecsgo.Zero[Position](),
//	    ecsgo.With(Velocity{X: 10}),
//	).Build(w)
//
//	q := ecsgo.NewQuery(w, ecsgo.All(ecsgo.KindOf[Position](), ecsgo.KindOf[Velocity]()))
//	for _, a := range q.Archetypes() {
//	    pos := ecsgo.Column[Position](a)
//	    vel := ecsgo.Column[Velocity](a)
//	    for i := range pos {
//	        pos[i].X += vel[i].X
//	        pos[i].Y += vel[i].Y
//	    }
//	}
//	fmt.Println(ecsgo.Get[Position](e).X) // 10
//
// # Structural Changes
//
// Adding or removing a component moves the entity to another archetype:
//
//	e.Add(ecsgo.With(Health{100})).Mutate()
//	e.Remove(ecsgo.KindOf[Velocity]()).Mutate()
//
// The *Entity handle stays valid across moves. Rows are removed by swapping
// the last row into the hole, and the moved entity's handle is patched.
//
// # Kinds and Archetypes
//
// Every World owns a Registry that assigns dense ids to component types on
// first reference. An archetype is identified by the Fingerprint of its kind
// set, so the same kinds in any order always resolve to the same archetype.
// Archetypes are never removed.
//
// # Queries
//
// A Query caches matching archetypes. It scans the world on first use and
// then receives every newly created archetype synchronously, evaluating the
// predicate exactly once per archetype.
//
// # Concurrency
//
// The store does no locking apart from the kind registry. Structural changes
// (Build, Mutate, Destroy) must be serialized by the caller. Column updates
// may run in parallel as long as they touch disjoint archetypes or columns;
// see package system for helpers.
//
// # Errors
//
// Misuse (duplicate kinds, absent kinds, bad rows, destroyed handles)
// panics with an error wrapping one of the Err* sentinels.
package ecsgo
