package ecsgo

// Mutation collects structural changes for one entity. Nothing happens until
// Mutate is called.
//
//	e.Add(ecsgo.With(Velocity{X: 10})).Mutate()
//	e.Remove(ecsgo.KindOf[Velocity]()).Mutate()
type Mutation struct {
	entity *Entity
	add    []Field
	remove []Kind
}

// Add stages fields to add.
func (m *Mutation) Add(fields ...Field) *Mutation {
	m.add = append(m.add, fields...)
	return m
}

// Remove stages kinds to remove.
func (m *Mutation) Remove(kinds ...Kind) *Mutation {
	m.remove = append(m.remove, kinds...)
	return m
}

// Mutate applies the staged changes: additions first, then removals. The
// entity keeps the values of every kind it retains, and the handle the
// mutation was started from points at the new row afterwards.
//
// It panics with ErrDuplicateKind when adding a kind the entity already
// has and with ErrKindAbsent when removing one it lacks.
func (m *Mutation) Mutate() {
	e := m.entity
	e.check()
	if len(m.add) == 0 && len(m.remove) == 0 {
		return
	}

	b := NewBuilder(e.archetype.components.fieldsAt(e.index)...)
	b.Add(m.add...)
	b.Remove(m.remove...)
	e.migrate(b)
}
