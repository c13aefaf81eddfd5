package ecsgo

import "errors"

// Contract violations. The store panics with an error wrapping one of these
// sentinels; they signal a bug in the calling code, never a runtime
// condition. Recover and test with errors.Is when needed.
var (
	// ErrSchemaMismatch is raised when a row is appended with a field set
	// that does not match the archetype schema exactly.
	ErrSchemaMismatch = errors.New("field set does not match archetype schema")

	// ErrDuplicateKind is raised when a kind is added twice to a builder or
	// added to an entity that already has it.
	ErrDuplicateKind = errors.New("kind already present")

	// ErrKindAbsent is raised when a kind is removed from a builder that
	// lacks it, or accessed through a non-optional accessor.
	ErrKindAbsent = errors.New("kind not present")

	// ErrRowOutOfRange is raised on access to a row index outside the archetype.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrInvalidEntity is raised when a destroyed entity handle is used.
	ErrInvalidEntity = errors.New("entity handle is no longer valid")
)
