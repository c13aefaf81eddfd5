package ecsgo

import (
	"fmt"
	"reflect"
)

// components is the columnar storage of one archetype: one column per kind
// plus an id-indexed lookup table for O(1) presence tests.
type components struct {
	columns []column // schema order
	lookup  []column // indexed by kind id, nil when absent
}

func newComponents(types []ComponentType) *components {
	c := &components{
		columns: make([]column, 0, len(types)),
		lookup:  make([]column, maxID(types)+1),
	}
	for _, ct := range types {
		col := ct.newColumn()
		c.columns = append(c.columns, col)
		c.lookup[ct.ID()] = col
	}
	return c
}

func (c *components) has(id int) bool {
	return id >= 0 && id < len(c.lookup) && c.lookup[id] != nil
}

func (c *components) column(id int) (column, bool) {
	if !c.has(id) {
		return nil, false
	}
	return c.lookup[id], true
}

// appendRow appends one value to every column. fields must hold exactly one
// value per kind in the schema.
func (c *components) appendRow(fields []resolvedField) {
	if len(fields) != len(c.columns) {
		panic(fmt.Errorf("%w: got %d fields for %d columns", ErrSchemaMismatch, len(fields), len(c.columns)))
	}
	// Validate before touching any column so a bad set leaves the row count intact.
	for i, f := range fields {
		if !c.has(f.ct.ID()) {
			panic(fmt.Errorf("%w: kind %s is not part of the archetype", ErrSchemaMismatch, f.ct.Name()))
		}
		for _, prev := range fields[:i] {
			if prev.ct.ID() == f.ct.ID() {
				panic(fmt.Errorf("%w: kind %s supplied twice", ErrSchemaMismatch, f.ct.Name()))
			}
		}
	}
	for _, f := range fields {
		c.lookup[f.ct.ID()].appendField(f.field)
	}
}

func (c *components) removeRow(i int) {
	for _, col := range c.columns {
		col.removeAt(i)
	}
}

func (c *components) reserve(n int) {
	for _, col := range c.columns {
		col.reserve(n)
	}
}

// fieldsAt snapshots the values of row i.
func (c *components) fieldsAt(i int) []Field {
	out := make([]Field, 0, len(c.columns))
	for _, col := range c.columns {
		out = append(out, col.fieldAt(i))
	}
	return out
}

func (c *components) types() []ComponentType {
	out := make([]ComponentType, len(c.columns))
	for i, col := range c.columns {
		out[i] = col.componentType()
	}
	return out
}

func typedColumnOf[T any](c *components, r *Registry) (*typedColumn[T], bool) {
	ct, ok := r.Lookup(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	col, ok := c.column(ct.ID())
	if !ok {
		return nil, false
	}
	tc, ok := col.(*typedColumn[T])
	return tc, ok
}
