package petri

import (
	"errors"
	"testing"
)

func createMutexNet(t *testing.T) *PetriNet {
	t.Helper()
	net, err := Build("mutex").
		Place("idle", 1).
		Place("working", 0).
		Transition("start").
		Transition("finish").
		Arc("idle", "start", 1).
		Arc("start", "working", 1).
		Arc("working", "finish", 1).
		Arc("finish", "idle", 1).
		Done()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return net
}

func TestBuilder(t *testing.T) {
	net := createMutexNet(t)

	if len(net.Places) != 2 || len(net.Transitions) != 2 || len(net.Arcs) != 4 {
		t.Errorf("unexpected net shape: %d places, %d transitions, %d arcs",
			len(net.Places), len(net.Transitions), len(net.Arcs))
	}
	if net.ID == "" {
		t.Error("net must get a generated id")
	}
	if net.Places["idle"].Initial != 1 {
		t.Errorf("expected 1 initial token in idle, got %d", net.Places["idle"].Initial)
	}
}

func TestAddArcRejectsPlaceToPlace(t *testing.T) {
	net := NewPetriNet("bad")
	net.AddPlace("p1", 0)
	net.AddPlace("p2", 0)

	if _, err := net.AddArc("p1", "p2", 1); !errors.Is(err, ErrInvalidArcConnection) {
		t.Errorf("expected ErrInvalidArcConnection, got %v", err)
	}
}

func TestAddArcRejectsUnknownNode(t *testing.T) {
	net := NewPetriNet("bad")
	net.AddPlace("p1", 0)

	if _, err := net.AddArc("p1", "missing", 1); !errors.Is(err, ErrNoSuchNode) {
		t.Errorf("expected ErrNoSuchNode, got %v", err)
	}
}

func TestAddArcRejectsZeroWeight(t *testing.T) {
	net := NewPetriNet("bad")
	net.AddPlace("p1", 0)
	net.AddTransition("t1")

	if _, err := net.AddArc("p1", "t1", 0); !errors.Is(err, ErrInvalidArcWeight) {
		t.Errorf("expected ErrInvalidArcWeight, got %v", err)
	}
}

func TestBuilderReportsFirstError(t *testing.T) {
	_, err := Build("bad").
		Place("p1", 0).
		Transition("t1").
		Arc("p1", "missing", 1).
		Arc("p1", "t1", 1).
		Done()
	if !errors.Is(err, ErrNoSuchNode) {
		t.Errorf("expected ErrNoSuchNode from Done, got %v", err)
	}
}

func TestSortedAccessors(t *testing.T) {
	net := createMutexNet(t)

	places := net.SortedPlaces()
	if places[0].ID != "idle" || places[1].ID != "working" {
		t.Errorf("expected sorted places, got %v %v", places[0].ID, places[1].ID)
	}
	transitions := net.SortedTransitions()
	if transitions[0].ID != "finish" || transitions[1].ID != "start" {
		t.Errorf("expected sorted transitions, got %v %v", transitions[0].ID, transitions[1].ID)
	}
}

func TestInputOutputArcs(t *testing.T) {
	net := createMutexNet(t)

	inputs := net.InputArcs("start")
	if len(inputs) != 1 || inputs[0].Source != "idle" {
		t.Errorf("unexpected inputs for start: %v", inputs)
	}
	outputs := net.OutputArcs("start")
	if len(outputs) != 1 || outputs[0].Target != "working" {
		t.Errorf("unexpected outputs for start: %v", outputs)
	}
}
