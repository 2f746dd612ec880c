package amoebot

import (
	"testing"

	"trianglerotate/pkg/geom"
)

func newTestParticle(sys *System, head geom.Node) *Particle {
	p := &Particle{Head: head, GlobalTailDir: -1}
	sys.Insert(p, func() {})
	return p
}

func TestInsertRejectsOccupiedNode(t *testing.T) {
	sys := NewSystem(1)
	newTestParticle(sys, geom.Node{X: 0, Y: 0})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inserting a second particle at the same node")
		}
	}()
	newTestParticle(sys, geom.Node{X: 0, Y: 0})
}

func TestActivateRunsEveryParticleOncePerEpoch(t *testing.T) {
	sys := NewSystem(42)
	count := make(map[*Particle]int)
	for i := 0; i < 5; i++ {
		p := &Particle{Head: geom.Node{X: i, Y: 0}, GlobalTailDir: -1}
		sys.Insert(p, func() { count[p]++ })
	}

	for i := 0; i < sys.Size(); i++ {
		sys.Activate()
	}

	for p, n := range count {
		if n != 1 {
			t.Errorf("particle at %v activated %d times in one epoch, want 1", p.Head, n)
		}
	}

	for i := 0; i < sys.Size(); i++ {
		sys.Activate()
	}
	for p, n := range count {
		if n != 2 {
			t.Errorf("particle at %v activated %d times after two epochs, want 2", p.Head, n)
		}
	}
}

func TestNeighborLookup(t *testing.T) {
	sys := NewSystem(1)
	center := newTestParticle(sys, geom.Node{X: 0, Y: 0})
	east := newTestParticle(sys, geom.Node{X: 1, Y: 0})

	if !center.HasNbrAtLabel(0) {
		t.Fatal("expected a neighbor at label 0 (orientation 0, direction east)")
	}
	if center.NbrAtLabel(0) != east {
		t.Fatal("neighbor at label 0 should be the east particle")
	}
	backLabel := center.GetLabelPointsAtMe(0)
	if !center.PointsAtMe(east, backLabel) {
		t.Fatal("east's label pointing back should point at center")
	}
}

func TestExpandAndContract(t *testing.T) {
	sys := NewSystem(1)
	p := newTestParticle(sys, geom.Node{X: 0, Y: 0})

	p.Expand(0)
	if !p.IsExpanded() {
		t.Fatal("expected particle to be expanded")
	}
	if p.Tail() != (geom.Node{X: 1, Y: 0}) {
		t.Fatalf("unexpected tail position %v", p.Tail())
	}

	p.ContractTail()
	if !p.IsContracted() {
		t.Fatal("expected particle to be contracted after ContractTail")
	}
	if p.Head != (geom.Node{X: 0, Y: 0}) {
		t.Fatalf("ContractTail should leave head in place, got %v", p.Head)
	}
}

func TestPushHandover(t *testing.T) {
	sys := NewSystem(1)
	back := newTestParticle(sys, geom.Node{X: 0, Y: 0})
	front := newTestParticle(sys, geom.Node{X: 2, Y: 0})
	front.Expand(3) // front's head stays at (2,0), tail lands on (1,0)

	if !back.CanPush(0) {
		t.Fatal("expected back to be able to push through front")
	}
	back.Push(0)

	if !back.IsExpanded() {
		t.Fatal("back should be expanded after push")
	}
	if back.Tail() != (geom.Node{X: 1, Y: 0}) {
		t.Fatalf("back's new tail should be at front's old tail, got %v", back.Tail())
	}
	if !front.IsContracted() || front.Head != (geom.Node{X: 2, Y: 0}) {
		t.Fatalf("front should remain contracted at (2,0), got contracted=%v head=%v", front.IsContracted(), front.Head)
	}
}
