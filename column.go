package ecsgo

import "fmt"

// column is the type-erased face of one per-kind column. Every operation an
// archetype needs goes through this interface; typed access recovers the
// concrete column with a checked type assertion.
type column interface {
	componentType() ComponentType
	len() int
	reserve(n int)
	appendField(f Field)
	removeAt(i int)
	fieldAt(i int) Field
}

type typedColumn[T any] struct {
	ct   ComponentType
	data []T
}

func (c *typedColumn[T]) componentType() ComponentType { return c.ct }

func (c *typedColumn[T]) len() int { return len(c.data) }

func (c *typedColumn[T]) reserve(n int) {
	if n <= 0 || cap(c.data)-len(c.data) >= n {
		return
	}
	grown := make([]T, len(c.data), len(c.data)+n)
	copy(grown, c.data)
	c.data = grown
}

func (c *typedColumn[T]) appendField(f Field) {
	vf, ok := f.(valueField[T])
	if !ok {
		panic(fmt.Errorf("%w: field of type %s cannot be stored in column %s", ErrSchemaMismatch, f.Type(), c.ct.Name()))
	}
	c.data = append(c.data, vf.value)
}

// removeAt moves the last element into slot i and shrinks by one.
func (c *typedColumn[T]) removeAt(i int) {
	last := len(c.data) - 1
	c.data[i] = c.data[last]
	var zero T
	c.data[last] = zero
	c.data = c.data[:last]
}

func (c *typedColumn[T]) fieldAt(i int) Field {
	return valueField[T]{value: c.data[i]}
}
