package ecsgo

import "github.com/RoaringBitmap/roaring/v2"

// Query caches the archetypes matching a predicate.
//
// The cache is filled lazily: the first call to Archetypes scans the world,
// after which the query subscribes to archetype creation and appends every
// new archetype that matches at the moment it is created. An archetype is
// evaluated exactly once; the cache only grows.
//
// Example:
//
//	q := ecsgo.NewQuery(w, ecsgo.All(ecsgo.KindOf[Position](), ecsgo.KindOf[Velocity]()))
//	defer q.Close()
//	for _, a := range q.Archetypes() {
//	    pos := ecsgo.Column[Position](a)
//	    vel := ecsgo.Column[Velocity](a)
//	    for i := range pos {
//	        pos[i].X += vel[i].X
//	    }
//	}
type Query struct {
	world      *World
	match      func(*Archetype) bool
	candidates func() *roaring.Bitmap

	archetypes  []*Archetype
	initialized bool
	closed      bool
	unsubscribe func()
}

// NewPredicateQuery creates a query matching archetypes for which predicate
// returns true.
func NewPredicateQuery(w *World, predicate func(*Archetype) bool) *Query {
	return &Query{
		world: w,
		match: predicate,
	}
}

// NewQuery creates a query from a Filter. The initial scan only visits
// archetypes selected by the world's kind index.
func NewQuery(w *World, f Filter) *Query {
	c := f.compile(w.registry)
	return &Query{
		world: w,
		match: c.match,
		candidates: func() *roaring.Bitmap {
			return w.candidates(c.required, c.excluded)
		},
	}
}

// Archetypes returns the matching archetypes in the order they were found.
// The returned slice must not be modified.
func (q *Query) Archetypes() []*Archetype {
	if !q.initialized && !q.closed {
		q.initialize()
	}
	return q.archetypes
}

// EntityCount returns the number of entities in the matching archetypes.
func (q *Query) EntityCount() int {
	n := 0
	for _, a := range q.Archetypes() {
		n += a.Len()
	}
	return n
}

// Close releases the subscription. The cache stops growing afterwards.
// Close is idempotent and always returns nil.
func (q *Query) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	if q.unsubscribe != nil {
		q.unsubscribe()
		q.unsubscribe = nil
	}
	return nil
}

func (q *Query) initialize() {
	q.initialized = true

	var scanned []*Archetype
	if q.candidates != nil {
		scanned = q.world.collect(q.candidates())
	} else {
		scanned = q.world.archetypes
	}
	for _, a := range scanned {
		q.consider(a)
	}
	q.world.logger.LogQueryAttached(len(scanned), len(q.archetypes))

	q.unsubscribe = q.world.subscribe(q.consider)
}

func (q *Query) consider(a *Archetype) {
	// A subscriber notified earlier in the same round may have closed q.
	if q.closed {
		return
	}
	if q.match(a) {
		q.archetypes = append(q.archetypes, a)
		q.world.metrics.RecordQueryMatch()
	}
}
