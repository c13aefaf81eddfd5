// Package system composes per-tick update routines over ecsgo queries.
//
// A System is anything with Update(ctx) error. The helpers here build
// systems that iterate the columns of matching archetypes (ForEach,
// ForEach2, ForEachOptional, ForEachEntity) and combine systems
// sequentially or in parallel. Runner drives a system at a fixed tick rate.
//
// Parallel runs its children concurrently but does not prevent data races:
// children must touch disjoint archetypes or disjoint columns, and no
// structural change may happen while they run.
package system
