package system

import (
	"context"

	"github.com/hupe1980/ecsgo"
	"golang.org/x/sync/errgroup"
)

// System is an update routine run once per tick.
type System interface {
	Update(ctx context.Context) error
}

// Func adapts a plain function to System.
type Func func(ctx context.Context) error

// Update implements System.
func (f Func) Update(ctx context.Context) error { return f(ctx) }

type sequential []System

// Sequential runs systems one after another, stopping at the first error.
func Sequential(systems ...System) System {
	return sequential(systems)
}

func (s sequential) Update(ctx context.Context) error {
	for _, sys := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sys.Update(ctx); err != nil {
			return err
		}
	}
	return nil
}

type parallel struct {
	systems []System
	limit   int
}

// Parallel runs systems concurrently and waits for all of them. The first
// error cancels the context passed to the others and is returned.
//
// Queries of the children (QuerySystem and anything else exposing
// Query() *ecsgo.Query, including those nested in Sequential or Parallel)
// are attached one at a time before any child starts. Queries used inside
// a plain Func are not visible and must be read once before the first
// parallel Update.
func Parallel(systems ...System) System {
	return &parallel{systems: systems}
}

// ParallelLimit is Parallel with at most limit systems running at once.
// A limit <= 0 means no limit.
func ParallelLimit(limit int, systems ...System) System {
	return &parallel{systems: systems, limit: limit}
}

func (p *parallel) Update(ctx context.Context) error {
	for _, sys := range p.systems {
		prepare(sys)
	}

	g, gctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}
	for _, sys := range p.systems {
		g.Go(func() error {
			return sys.Update(gctx)
		})
	}
	return g.Wait()
}

type querier interface {
	Query() *ecsgo.Query
}

// prepare attaches the queries reachable from sys. Attaching subscribes to
// the world, which must not happen from several goroutines at once.
func prepare(sys System) {
	switch s := sys.(type) {
	case querier:
		s.Query().Archetypes()
	case sequential:
		for _, child := range s {
			prepare(child)
		}
	case *parallel:
		for _, child := range s.systems {
			prepare(child)
		}
	}
}
