package testutil

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Position is a 2D position component.
type Position struct {
	X, Y int
}

// Velocity is a 2D velocity component.
type Velocity struct {
	X, Y int
}

// Health is a single-value component.
type Health struct {
	Value int
}

// Frozen is a tag component without data.
type Frozen struct{}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	return r.Intn(2) == 1
}

// RequirePanicsIs fails t unless fn panics with an error matching target.
func RequirePanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected panic wrapping %v", target)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}
