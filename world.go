package ecsgo

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// World is the archetype directory. It maps kind sets to archetypes,
// creating archetypes on first use and keeping them for its whole lifetime.
//
// A World is not safe for concurrent structural mutation: building,
// mutating and destroying entities must be serialized by the caller.
type World struct {
	registry        *Registry
	index           map[string]*Archetype
	archetypes      []*Archetype
	byKind          []*roaring.Bitmap // kind id -> archetype ids
	subs            []*subscription
	logger          *Logger
	metrics         MetricsCollector
	initialCapacity int
}

type subscription struct {
	fn func(*Archetype)
}

// New creates an empty world.
func New(optFns ...Option) *World {
	o := applyOptions(optFns)
	return &World{
		registry:        o.registry,
		index:           make(map[string]*Archetype),
		logger:          o.logger,
		metrics:         o.metricsCollector,
		initialCapacity: o.initialCapacity,
	}
}

// Registry returns the kind registry of the world.
func (w *World) Registry() *Registry { return w.registry }

// Len returns the number of archetypes.
func (w *World) Len() int { return len(w.archetypes) }

// Archetypes returns all archetypes in creation order.
func (w *World) Archetypes() []*Archetype { return slices.Clone(w.archetypes) }

// Archetype returns the archetype with the given id.
func (w *World) Archetype(id uint32) (*Archetype, bool) {
	if int(id) >= len(w.archetypes) {
		return nil, false
	}
	return w.archetypes[id], true
}

// EntityCount returns the number of entities across all archetypes.
func (w *World) EntityCount() int {
	n := 0
	for _, a := range w.archetypes {
		n += a.Len()
	}
	return n
}

// ArchetypesWith returns, in creation order, every archetype that has all
// of the given kinds.
func (w *World) ArchetypesWith(kinds ...Kind) []*Archetype {
	required := make([]int, len(kinds))
	for i, k := range kinds {
		required[i] = k.resolve(w.registry).ID()
	}
	return w.collect(w.candidates(required, nil))
}

// candidates returns the ids of archetypes having every required kind and
// none of the excluded ones, using the per-kind index.
func (w *World) candidates(required, excluded []int) *roaring.Bitmap {
	var result *roaring.Bitmap
	if len(required) == 0 {
		result = roaring.New()
		result.AddRange(0, uint64(len(w.archetypes)))
	} else {
		sets := make([]*roaring.Bitmap, 0, len(required))
		for _, id := range required {
			bm := w.kindIndex(id)
			if bm == nil {
				return roaring.New()
			}
			sets = append(sets, bm)
		}
		result = roaring.FastAnd(sets...)
	}
	for _, id := range excluded {
		if bm := w.kindIndex(id); bm != nil {
			result.AndNot(bm)
		}
	}
	return result
}

func (w *World) collect(ids *roaring.Bitmap) []*Archetype {
	out := make([]*Archetype, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		out = append(out, w.archetypes[it.Next()])
	}
	return out
}

func (w *World) kindIndex(id int) *roaring.Bitmap {
	if id < 0 || id >= len(w.byKind) {
		return nil
	}
	return w.byKind[id]
}

// getOrCreate returns the archetype for the given kinds, creating and
// announcing it on first use. Subscribers run synchronously, in
// subscription order, before getOrCreate returns.
func (w *World) getOrCreate(types []ComponentType) *Archetype {
	fp := NewFingerprint(types...)
	if a, ok := w.index[fp.Key()]; ok {
		return a
	}

	a := newArchetype(w, uint32(len(w.archetypes)), fp, types)
	if w.initialCapacity > 0 {
		a.Reserve(w.initialCapacity)
	}
	w.index[fp.Key()] = a
	w.archetypes = append(w.archetypes, a)
	for _, ct := range types {
		id := ct.ID()
		if id >= len(w.byKind) {
			w.byKind = append(w.byKind, make([]*roaring.Bitmap, id+1-len(w.byKind))...)
		}
		if w.byKind[id] == nil {
			w.byKind[id] = roaring.New()
		}
		w.byKind[id].Add(a.id)
	}

	w.logger.LogArchetypeCreated(a.id, kindNames(types))
	w.metrics.RecordArchetypeCreated(len(types))

	for _, s := range slices.Clone(w.subs) {
		s.fn(a)
	}
	return a
}

// subscribe registers fn to be called with every archetype created from now
// on. The returned function removes the subscription.
func (w *World) subscribe(fn func(*Archetype)) func() {
	s := &subscription{fn: fn}
	w.subs = append(w.subs, s)
	return func() {
		if i := slices.Index(w.subs, s); i >= 0 {
			w.subs = slices.Delete(w.subs, i, i+1)
		}
	}
}

func kindNames(types []ComponentType) []string {
	names := make([]string, len(types))
	for i, ct := range types {
		names[i] = ct.Name()
	}
	return names
}
