package amoebot

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"trianglerotate/pkg/core"
	"trianglerotate/pkg/geom"
)

// System holds the particle population, the spatial index mapping occupied
// nodes to their owning particle, and the fair epoch scheduler (§4.3). It is
// algorithm-agnostic: building a triangle, checking termination, and every
// rule belongs to the trianglerotate package, which embeds *Particle and
// constructs a System underneath it.
type System struct {
	particles []*Particle
	index     map[geom.Node]*Particle

	// epoch is the current shuffled activation queue. It is rebuilt from
	// particles, in insertion order, and permuted once it runs dry — the
	// same "deque of pointers, refilled and reshuffled on empty" shape as
	// the original AmoebotSystem::activate, here backed by
	// github.com/emirpasic/gods' arraylist instead of a bare slice.
	epoch *arraylist.List

	rng *core.RNG
}

// NewSystem creates an empty system seeded for reproducible orientation
// assignment and epoch permutation (§5).
func NewSystem(seed int64) *System {
	return &System{
		index: make(map[geom.Node]*Particle),
		epoch: arraylist.New(),
		rng:   core.NewRNG(seed),
	}
}

// RNG exposes the system's seeded random source, used by constructors to
// pick each particle's initial orientation.
func (s *System) RNG() *core.RNG { return s.rng }

// Insert adds p to the population and records its occupied node(s) in the
// spatial index. Fatal if any occupied node is already claimed (§3,
// "Invariants").
func (s *System) Insert(p *Particle, onActivate func()) {
	if _, occupied := s.index[p.Head]; occupied {
		panic(fatalf("insert: node %v is already occupied", p.Head))
	}
	if p.IsExpanded() {
		if _, occupied := s.index[p.Tail()]; occupied {
			panic(fatalf("insert: node %v is already occupied", p.Tail()))
		}
	}
	p.System = s
	p.onActivate = onActivate
	s.particles = append(s.particles, p)
	s.index[p.Head] = p
	if p.IsExpanded() {
		s.index[p.Tail()] = p
	}
}

// Size returns the number of particles in the system.
func (s *System) Size() int { return len(s.particles) }

// Activate advances the simulation by one particle activation (§4.3):
//  1. If the epoch queue is empty, refill it with every particle in
//     insertion order and apply a uniform random permutation.
//  2. Pop the front particle and run its activation to completion.
func (s *System) Activate() {
	if s.epoch.Empty() {
		shuffled := make([]*Particle, len(s.particles))
		copy(shuffled, s.particles)
		s.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		s.epoch.Clear()
		for _, p := range shuffled {
			s.epoch.Add(p)
		}
	}

	front, _ := s.epoch.Get(0)
	s.epoch.Remove(0)
	front.(*Particle).onActivate()
}
