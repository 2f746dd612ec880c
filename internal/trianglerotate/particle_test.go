package trianglerotate

import "testing"

func TestIsCornerFindsExactlyThreeCornersOfATriangle(t *testing.T) {
	sys := NewTriangleSystem(7, false, 1)

	corners := 0
	for i := 0; i < sys.Size(); i++ {
		p := sys.particles[i]
		if labels := p.isCorner(); len(labels) == 2 {
			corners++
		}
	}
	if corners != 3 {
		t.Fatalf("expected exactly 3 corner particles, got %d", corners)
	}
}

func TestIsCornerRejectsExpandedParticles(t *testing.T) {
	sys := NewTriangleSystem(1, false, 1) // a single, isolated particle
	p := sys.particles[0]
	p.Expand(0)
	if labels := p.isCorner(); labels != nil {
		t.Fatalf("expanded particle should never qualify as a corner, got %v", labels)
	}
}
