package ecsgo

import (
	"testing"

	"github.com/hupe1980/ecsgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_GetOrCreateDeduplicates(t *testing.T) {
	w := New()
	r := w.Registry()
	pos := TypeOf[testutil.Position](r)
	vel := TypeOf[testutil.Velocity](r)

	a := w.getOrCreate([]ComponentType{pos, vel})
	b := w.getOrCreate([]ComponentType{vel, pos})
	c := w.getOrCreate([]ComponentType{pos})

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, uint32(0), a.ID())
	assert.Equal(t, uint32(1), c.ID())

	got, ok := w.Archetype(1)
	require.True(t, ok)
	assert.Same(t, c, got)
	_, ok = w.Archetype(2)
	assert.False(t, ok)
}

func TestWorld_SubscribersNotifiedInOrder(t *testing.T) {
	w := New()
	pos := TypeOf[testutil.Position](w.Registry())

	var calls []string
	w.subscribe(func(a *Archetype) {
		// The archetype is registered before subscribers run.
		assert.Equal(t, 1, w.Len())
		calls = append(calls, "first")
	})
	w.subscribe(func(*Archetype) { calls = append(calls, "second") })

	w.getOrCreate([]ComponentType{pos})
	assert.Equal(t, []string{"first", "second"}, calls)

	// Hits do not notify.
	w.getOrCreate([]ComponentType{pos})
	assert.Len(t, calls, 2)
}

func TestWorld_Unsubscribe(t *testing.T) {
	w := New()
	r := w.Registry()

	count := 0
	unsubscribe := w.subscribe(func(*Archetype) { count++ })
	w.getOrCreate([]ComponentType{TypeOf[testutil.Position](r)})
	unsubscribe()
	unsubscribe()
	w.getOrCreate([]ComponentType{TypeOf[testutil.Velocity](r)})

	assert.Equal(t, 1, count)
	assert.Empty(t, w.subs)
}

func TestWorld_ArchetypesWith(t *testing.T) {
	w := New()
	NewBuilder(Zero[testutil.Position]()).Build(w)
	NewBuilder(Zero[testutil.Position](), Zero[testutil.Velocity]()).Build(w)
	NewBuilder(Zero[testutil.Velocity]()).Build(w)

	withPos := w.ArchetypesWith(KindOf[testutil.Position]())
	require.Len(t, withPos, 2)
	assert.Equal(t, uint32(0), withPos[0].ID())
	assert.Equal(t, uint32(1), withPos[1].ID())

	assert.Len(t, w.ArchetypesWith(KindOf[testutil.Position](), KindOf[testutil.Velocity]()), 1)
	assert.Empty(t, w.ArchetypesWith(KindOf[testutil.Health]()))
	assert.Len(t, w.ArchetypesWith(), 3)
}

func TestWorld_EntityCount(t *testing.T) {
	w := New()
	NewBuilder(Zero[testutil.Position]()).BuildN(w, 3)
	NewBuilder(Zero[testutil.Velocity]()).BuildN(w, 2)

	assert.Equal(t, 5, w.EntityCount())
	assert.Len(t, w.Archetypes(), 2)
}

func TestWorld_SharedRegistry(t *testing.T) {
	r := NewRegistry()
	w1 := New(WithRegistry(r))
	w2 := New(WithRegistry(r))

	NewBuilder(Zero[testutil.Velocity]()).Build(w1)
	e := NewBuilder(Zero[testutil.Position]()).Build(w2)

	assert.Same(t, r, w1.Registry())
	assert.Equal(t, 1, TypeOf[testutil.Position](r).ID())
	assert.Equal(t, 1, w2.Len())
	assert.True(t, Has[testutil.Position](e))
}

func TestWorld_InitialCapacity(t *testing.T) {
	w := New(WithInitialCapacity(64))
	e := NewBuilder(Zero[testutil.Position]()).Build(w)

	assert.GreaterOrEqual(t, cap(Column[testutil.Position](e.Archetype())), 64)
	assert.Equal(t, 1, e.Archetype().Len())
}

func TestWorld_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	w := New(WithMetricsCollector(metrics))

	q := NewQuery(w, All(KindOf[testutil.Position]()))
	q.Archetypes()

	e := NewBuilder(Zero[testutil.Position]()).Build(w)
	NewBuilder(Zero[testutil.Velocity]()).BuildN(w, 10)
	e.Add(Zero[testutil.Health]()).Mutate()
	e.Destroy()

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.Archetypes)
	assert.Equal(t, int64(2), stats.Builds)
	assert.Equal(t, int64(11), stats.EntitiesBuilt)
	assert.Equal(t, int64(1), stats.Mutations)
	assert.Equal(t, int64(1), stats.Destroys)
	assert.Equal(t, int64(2), stats.QueryMatches)
}

func TestWorld_NilOptions(t *testing.T) {
	w := New(nil, WithLogger(nil), WithMetricsCollector(nil), WithRegistry(nil))

	e := NewBuilder(Zero[testutil.Position]()).Build(w)
	assert.True(t, Has[testutil.Position](e))
	assert.NotNil(t, w.Registry())
}
