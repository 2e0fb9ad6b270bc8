package petri

// Builder provides a fluent API for constructing Petri nets.
//
// Example:
//
//	net := petri.Build("mutex").
//	    Place("idle", 1).
//	    Place("working", 0).
//	    Transition("start").
//	    Transition("finish").
//	    Arc("idle", "start", 1).
//	    Arc("start", "working", 1).
//	    Arc("working", "finish", 1).
//	    Arc("finish", "idle", 1).
//	    Done()
type Builder struct {
	net *PetriNet
	err error
}

// Build creates a new Builder for constructing a Petri net.
func Build(name string) *Builder {
	return &Builder{net: NewPetriNet(name)}
}

// Place adds a place with the given id and initial token count.
func (b *Builder) Place(id string, initial int) *Builder {
	b.net.AddPlace(id, initial)
	return b
}

// Transition adds a transition with the given id.
func (b *Builder) Transition(id string) *Builder {
	b.net.AddTransition(id)
	return b
}

// Arc adds a weighted arc. The first arc error sticks and is reported by
// Done.
func (b *Builder) Arc(source, target string, weight int) *Builder {
	if b.err != nil {
		return b
	}
	_, err := b.net.AddArc(source, target, weight)
	b.err = err
	return b
}

// Done returns the constructed net, or the first construction error.
func (b *Builder) Done() (*PetriNet, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.net, nil
}
