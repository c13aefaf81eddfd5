package ecsgo

// Filter selects archetypes by kind membership.
//
//	ecsgo.All(ecsgo.KindOf[Position](), ecsgo.KindOf[Velocity]())
//	ecsgo.All(ecsgo.KindOf[Position]()).Without(ecsgo.KindOf[Frozen]())
//	ecsgo.Exactly(ecsgo.KindOf[Position]())
type Filter struct {
	all   []Kind
	none  []Kind
	exact bool
}

// All matches archetypes having every one of kinds.
func All(kinds ...Kind) Filter {
	return Filter{all: kinds}
}

// Exactly matches the single archetype whose kind set equals kinds.
func Exactly(kinds ...Kind) Filter {
	return Filter{all: kinds, exact: true}
}

// Without additionally rejects archetypes having any of kinds.
func (f Filter) Without(kinds ...Kind) Filter {
	f.none = append(append([]Kind(nil), f.none...), kinds...)
	return f
}

// compiledFilter is a Filter bound to one registry.
type compiledFilter struct {
	required []int
	excluded []int
	all      Fingerprint
	exact    bool
}

func (f Filter) compile(r *Registry) compiledFilter {
	c := compiledFilter{exact: f.exact}
	types := make([]ComponentType, len(f.all))
	for i, k := range f.all {
		types[i] = k.resolve(r)
		c.required = append(c.required, types[i].ID())
	}
	for _, k := range f.none {
		c.excluded = append(c.excluded, k.resolve(r).ID())
	}
	c.all = NewFingerprint(types...)
	return c
}

func (c compiledFilter) match(a *Archetype) bool {
	fp := a.Fingerprint()
	if c.exact {
		if !fp.Equal(c.all) {
			return false
		}
	} else if !fp.ContainsAll(c.all) {
		return false
	}
	for _, id := range c.excluded {
		if fp.Contains(id) {
			return false
		}
	}
	return true
}
