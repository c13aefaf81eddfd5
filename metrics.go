package ecsgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting store metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordArchetypeCreated is called when a new archetype is created.
	// kinds is the number of component kinds in its schema.
	RecordArchetypeCreated(kinds int)

	// RecordBuild is called after entities are built.
	// count is the number of entities appended, duration the total time taken.
	RecordBuild(count int, duration time.Duration)

	// RecordMutation is called after an entity changed archetype.
	RecordMutation(duration time.Duration)

	// RecordDestroy is called after an entity was destroyed.
	RecordDestroy()

	// RecordQueryMatch is called each time a query caches an archetype.
	RecordQueryMatch()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordArchetypeCreated(int)     {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration) {}
func (NoopMetricsCollector) RecordMutation(time.Duration)   {}
func (NoopMetricsCollector) RecordDestroy()                 {}
func (NoopMetricsCollector) RecordQueryMatch()              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ArchetypeCount     atomic.Int64
	BuildCount         atomic.Int64
	BuildEntities      atomic.Int64
	BuildTotalNanos    atomic.Int64
	MutationCount      atomic.Int64
	MutationTotalNanos atomic.Int64
	DestroyCount       atomic.Int64
	QueryMatchCount    atomic.Int64
}

// RecordArchetypeCreated implements MetricsCollector.
func (b *BasicMetricsCollector) RecordArchetypeCreated(int) {
	b.ArchetypeCount.Add(1)
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildEntities.Add(int64(count))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordMutation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMutation(duration time.Duration) {
	b.MutationCount.Add(1)
	b.MutationTotalNanos.Add(duration.Nanoseconds())
}

// RecordDestroy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDestroy() {
	b.DestroyCount.Add(1)
}

// RecordQueryMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQueryMatch() {
	b.QueryMatchCount.Add(1)
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	Archetypes       int64
	Builds           int64
	EntitiesBuilt    int64
	BuildAvgNanos    int64
	Mutations        int64
	MutationAvgNanos int64
	Destroys         int64
	QueryMatches     int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		Archetypes:    b.ArchetypeCount.Load(),
		Builds:        b.BuildCount.Load(),
		EntitiesBuilt: b.BuildEntities.Load(),
		Mutations:     b.MutationCount.Load(),
		Destroys:      b.DestroyCount.Load(),
		QueryMatches:  b.QueryMatchCount.Load(),
	}
	if s.Builds > 0 {
		s.BuildAvgNanos = b.BuildTotalNanos.Load() / s.Builds
	}
	if s.Mutations > 0 {
		s.MutationAvgNanos = b.MutationTotalNanos.Load() / s.Mutations
	}
	return s
}
