// Package testutil provides testing utilities for ecsgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides component fixtures, a seeded RNG for randomized operation
// sequences, and assertions for contract-violation panics.
//
// # Fixtures
//
//	e := ecsgo.NewBuilder(ecsgo.With(testutil.Position{}), ecsgo.With(testutil.Velocity{X: 10})).Build(w)
//
// # Random Sequences
//
//	rng := testutil.NewRNG(seed)
//	i := rng.Intn(archetype.Len())
//
// # Panics
//
//	testutil.RequirePanicsIs(t, ecsgo.ErrDuplicateKind, func() { ... })
package testutil
