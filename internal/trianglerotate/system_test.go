package trianglerotate

import (
	"testing"

	"trianglerotate/pkg/geom"
)

func runToTermination(t *testing.T, sys *TriangleSystem, budget int) int {
	t.Helper()
	activations := 0
	for !sys.HasTerminated() {
		if activations >= budget {
			t.Fatalf("did not terminate within %d activations", budget)
		}
		sys.Activate()
		activations++
	}
	return activations
}

// countEverCenter counts particles that have ever held state Center.
// bendCenter moves the center on to Finish in the activation in which it
// emits its bend tokens (§4.4), so after termination no particle is still in state
// Center; EverBeenCenter is what survives to check §8's "Center uniqueness"
// invariant.
func countEverCenter(sys *TriangleSystem) int {
	n := 0
	for i := 0; i < sys.Size(); i++ {
		if sys.At(i).EverBeenCenter() {
			n++
		}
	}
	return n
}

func TestInvalidSideLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewTriangleSystem(5, ...) to panic: 5 mod 3 != 1")
		}
	}()
	NewTriangleSystem(5, false, 1)
}

func TestSideFourSetCenterTerminatesWithinBudget(t *testing.T) {
	sys := NewTriangleSystem(4, true, 1)
	if sys.Size() != 10 {
		t.Fatalf("expected 10 particles, got %d", sys.Size())
	}
	runToTermination(t, sys, 200)
}

func TestSideFourDiscoversUniqueCenter(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		sys := NewTriangleSystem(4, false, seed)
		runToTermination(t, sys, 5000)

		if n := countEverCenter(sys); n != 1 {
			t.Fatalf("seed %d: expected exactly 1 particle to have ever been Center, got %d", seed, n)
		}
		for i := 0; i < sys.Size(); i++ {
			p := sys.At(i)
			if !p.EverBeenCenter() {
				continue
			}
			if p.Head() != (expectedCenter(4)) {
				t.Fatalf("seed %d: center at %v, want %v", seed, p.Head(), expectedCenter(4))
			}
			if p.State() != Finish {
				t.Fatalf("seed %d: center should have settled into Finish, got %v", seed, p.State())
			}
		}
	}
}

func TestSideSevenTerminates(t *testing.T) {
	sys := NewTriangleSystem(7, false, 3)
	if sys.Size() != 28 {
		t.Fatalf("expected 28 particles, got %d", sys.Size())
	}
	runToTermination(t, sys, 40000)

	if n := countEverCenter(sys); n != 1 {
		t.Fatalf("expected exactly 1 particle to have ever been Center, got %d", n)
	}
	for i := 0; i < sys.Size(); i++ {
		p := sys.At(i)
		if !p.EverBeenCenter() {
			continue
		}
		if p.Head() != (expectedCenter(7)) {
			t.Fatalf("center at %v, want %v", p.Head(), expectedCenter(7))
		}
		if p.State() != Finish {
			t.Fatalf("center should have settled into Finish, got %v", p.State())
		}
	}
}

func TestTerminationIsStable(t *testing.T) {
	sys := NewTriangleSystem(4, true, 2)
	runToTermination(t, sys, 200)

	snapshot := make([]State, sys.Size())
	for i := range snapshot {
		snapshot[i] = sys.At(i).State()
	}

	for i := 0; i < 50; i++ {
		sys.Activate()
	}

	for i := range snapshot {
		if sys.At(i).State() != snapshot[i] {
			t.Fatalf("particle %d state changed after termination: %v -> %v", i, snapshot[i], sys.At(i).State())
		}
	}
}

func TestDeterministicGivenSameSeed(t *testing.T) {
	a := NewTriangleSystem(7, false, 99)
	b := NewTriangleSystem(7, false, 99)

	for i := 0; i < 40000 && !a.HasTerminated(); i++ {
		a.Activate()
		b.Activate()
	}

	for i := 0; i < a.Size(); i++ {
		if a.At(i).State() != b.At(i).State() {
			t.Fatalf("particle %d diverged: %v vs %v", i, a.At(i).State(), b.At(i).State())
		}
	}
}

func expectedCenter(sideLength int) geom.Node {
	k := (sideLength - 1) / 3
	return geom.Node{X: k, Y: k}
}
