package system

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// TickRate is the number of ticks per second. 0 runs unpaced.
	TickRate float64
	// MaxTicks stops Run after this many ticks. 0 runs until the context ends.
	MaxTicks uint64
}

// Runner drives a System tick after tick.
type Runner struct {
	system   System
	limiter  *rate.Limiter
	maxTicks uint64
	ticks    atomic.Uint64
}

// NewRunner creates a Runner for sys.
func NewRunner(sys System, opts RunnerOptions) *Runner {
	r := &Runner{
		system:   sys,
		maxTicks: opts.MaxTicks,
	}
	if opts.TickRate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(opts.TickRate), 1)
	}
	return r
}

// Ticks returns the number of completed ticks.
func (r *Runner) Ticks() uint64 { return r.ticks.Load() }

// Step runs a single tick immediately.
func (r *Runner) Step(ctx context.Context) error {
	if err := r.system.Update(ctx); err != nil {
		return err
	}
	r.ticks.Add(1)
	return nil
}

// Run ticks until MaxTicks is reached, a tick fails or ctx ends. It returns
// nil when MaxTicks is reached and ctx.Err() when the context ends.
func (r *Runner) Run(ctx context.Context) error {
	for r.maxTicks == 0 || r.ticks.Load() < r.maxTicks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				return err
			}
		}
		if err := r.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}
