package ts

// Builder provides a fluent API for constructing transition systems.
// States referenced by arcs are created on first use, and the first state
// added becomes the initial state unless Initial is called.
//
// Example:
//
//	sys := ts.Build("cycle").
//	    Initial("s0").
//	    Arc("s0", "a", "s1").
//	    Arc("s1", "b", "s2").
//	    Arc("s2", "a", "s0").
//	    Done()
type Builder struct {
	sys *TransitionSystem
}

// Build creates a new Builder for constructing a transition system.
func Build(name string) *Builder {
	return &Builder{sys: NewTransitionSystem(name)}
}

// Initial adds a state (if needed) and marks it as the initial state.
func (b *Builder) Initial(id string) *Builder {
	b.sys.AddState(id)
	_ = b.sys.SetInitial(id)
	return b
}

// State adds a state with the given id.
func (b *Builder) State(id string) *Builder {
	b.addState(id)
	return b
}

// Arc adds an event-labeled arc, creating missing endpoint states.
func (b *Builder) Arc(source, label, target string) *Builder {
	b.addState(source)
	b.addState(target)
	_, _ = b.sys.AddArc(source, target, label)
	return b
}

// Done returns the constructed transition system.
func (b *Builder) Done() *TransitionSystem {
	return b.sys
}

func (b *Builder) addState(id string) {
	b.sys.AddState(id)
	if b.sys.initial == "" {
		b.sys.initial = id
	}
}
