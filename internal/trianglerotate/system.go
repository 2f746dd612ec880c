package trianglerotate

import (
	"trianglerotate/internal/amoebot"
	"trianglerotate/pkg/geom"
)

// TriangleSystem is a population of Particles arranged in a perfect
// equilateral triangle (§3, "Triangle system"), wrapping the generic
// amoebot.System for scheduling, the spatial index, and movement.
type TriangleSystem struct {
	engine    *amoebot.System
	particles []*Particle // insertion order, parallel to engine's.
}

// NewTriangleSystem builds a triangle of side length sideLength (which must
// satisfy sideLength == 3k+1; §3, §6) and initializes it in Idle mode (every
// particle starts Idle) or Preplaced mode (setCenter=true short-circuits
// discovery: the geometric center starts in Center, everyone else in
// CenterFound). seed drives both per-particle orientation and the epoch
// permutation (§5).
func NewTriangleSystem(sideLength int, setCenter bool, seed int64) *TriangleSystem {
	if sideLength < 1 || sideLength%3 != 1 {
		panic(fatalf("NewTriangleSystem: side length %d is not of the form 3k+1", sideLength))
	}

	sys := &TriangleSystem{engine: amoebot.NewSystem(seed)}
	k := (sideLength - 1) / 3

	for y := 0; y < sideLength; y++ {
		for x := 0; x < sideLength-y; x++ {
			orientation := sys.engine.RNG().Dir()
			base := &amoebot.Particle{
				Head:          geom.Node{X: x, Y: y},
				GlobalTailDir: -1,
				Orientation:   orientation,
			}

			state := Idle
			if setCenter {
				state = CenterFound
			}
			p := newParticle(sys, base, state)

			if setCenter && x == k && y == k {
				p.setState(Center)
				if orientation%2 == 0 {
					p.receivedCenterTokenFrom = 0
				} else {
					p.receivedCenterTokenFrom = 1
				}
			}

			sys.particles = append(sys.particles, p)
		}
	}

	return sys
}

// Activate advances the simulation by one particle activation (§4.3).
func (sys *TriangleSystem) Activate() { sys.engine.Activate() }

// Size returns the particle count.
func (sys *TriangleSystem) Size() int { return sys.engine.Size() }

// At returns an immutable view of the i-th particle (§6, "Driver
// interface"): ParticleView exposes state and the presentation hooks but
// none of the mutating movement/token operations an external driver has no
// business calling.
func (sys *TriangleSystem) At(i int) ParticleView { return ParticleView{p: sys.particles[i]} }

// HasTerminated reports whether every particle is in state Finish or Center
// (§6, §8): the rotation is complete once the single Center particle and
// every row particle that ended its move have settled. In practice the
// Center clause is never load-bearing: bendCenter (§4.4) moves the center
// straight on to Finish in the activation in which it emits its bend tokens,
// before any row can start to move, so no particle
// is ever still in Center by the time every other particle has reached
// Finish. The clause is kept for fidelity with §6's literal wording.
func (sys *TriangleSystem) HasTerminated() bool {
	for _, p := range sys.particles {
		if p.state != Finish && p.state != Center {
			return false
		}
	}
	return true
}

// ParticleView is a read-only view of a triangle-rotate particle, the shape
// described by §6 as the "immutable view" an external renderer or driver
// consumes. It forwards state and the presentation/inspection hooks without
// exposing the embedded amoebot.Particle's movement or token primitives.
type ParticleView struct {
	p *Particle
}

// Head returns the node the particle's head currently occupies.
func (v ParticleView) Head() geom.Node { return v.p.Head }

// Orientation returns the particle's local compass orientation (0..5).
func (v ParticleView) Orientation() int { return v.p.Orientation }

// State reports the particle's current state.
func (v ParticleView) State() State { return v.p.State() }

// EverBeenCenter reports whether this particle has ever held state Center
// (§8, "Center uniqueness"); see Particle.EverBeenCenter.
func (v ParticleView) EverBeenCenter() bool { return v.p.EverBeenCenter() }

// HeadMarkColor forwards Particle.HeadMarkColor (§6).
func (v ParticleView) HeadMarkColor() int { return v.p.HeadMarkColor() }

// HeadMarkDir forwards Particle.HeadMarkDir (§6).
func (v ParticleView) HeadMarkDir() int { return v.p.HeadMarkDir() }

// TailMarkColor forwards Particle.TailMarkColor (§6).
func (v ParticleView) TailMarkColor() int { return v.p.TailMarkColor() }

// InspectionText forwards Particle.InspectionText (§6).
func (v ParticleView) InspectionText() string { return v.p.InspectionText() }
