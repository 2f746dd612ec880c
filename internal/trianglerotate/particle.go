package trianglerotate

import "trianglerotate/internal/amoebot"

// Particle is the triangle-rotate algorithm's particle: it embeds the
// generic amoebot base (head/tail/orientation/inbox/movement primitives) and
// adds the state-machine fields §4.4 names explicitly.
type Particle struct {
	*amoebot.Particle

	state State

	moveDir                 int // Head's direction of travel, -1 if unset.
	followDir               int // Follow/StaticEnd's direction, -1 if unset.
	possibleCenter          bool
	receivedCenterTokenFrom int // Port the second CenterToken{found:false} probe arrived from.

	// everBeenCenter records whether this particle has ever held state
	// Center. bendCenter (§4.4, faithful to trianglerotate.cpp:198) moves the
	// center straight on to Finish once it has emitted its bend tokens, so by
	// the time HasTerminated is true no particle is still in state Center;
	// this flag is the only way to recover "which particle was the center"
	// after termination (§8, "Center uniqueness").
	everBeenCenter bool
}

// newParticle constructs a particle and registers it with sys under the
// given initial state. Movement, token, and neighbor operations are reached
// through the embedded *amoebot.Particle.
func newParticle(sys *TriangleSystem, base *amoebot.Particle, state State) *Particle {
	p := &Particle{
		Particle:                base,
		state:                   state,
		moveDir:                 -1,
		followDir:               -1,
		possibleCenter:          false,
		receivedCenterTokenFrom: -1,
	}
	base.Ext = p
	sys.engine.Insert(base, p.Activate)
	return p
}

// State reports the particle's current state.
func (p *Particle) State() State { return p.state }

// EverBeenCenter reports whether this particle has ever held state Center,
// even though bendCenter moves it on to Finish in the activation in which it
// emits its bend tokens (§4.4). Exactly one particle in a system ever satisfies this
// (§8, "Center uniqueness").
func (p *Particle) EverBeenCenter() bool { return p.everBeenCenter }

// setState transitions p to s, recording Center entry for EverBeenCenter.
func (p *Particle) setState(s State) {
	if s == Center {
		p.everBeenCenter = true
	}
	p.state = s
}

// Activate dispatches to one of the three rule groups based on state (§4.4).
func (p *Particle) Activate() {
	switch p.state {
	case Idle, Corner:
		p.findCenter()
	case Center, CenterFound:
		p.bend()
	case Follow, Head, StaticEnd, Finish:
		p.move()
	default:
		panic(fatalf("activate: particle at %v has unknown state %d", p.Head, int(p.state)))
	}
}

// isCorner reports whether p has exactly two neighbors at adjacent port
// labels, and if so returns those two labels (§4.4, "Corner detection").
// Returns nil if p is expanded or does not qualify.
func (p *Particle) isCorner() []int {
	if p.IsExpanded() {
		return nil
	}
	var present []int
	for label := 0; label < 6; label++ {
		if p.HasNbrAtLabel(label) {
			present = append(present, label)
		}
	}
	if len(present) != 2 {
		return nil
	}
	if present[0]+1 == present[1] || present[0] == present[1]-5 {
		return present
	}
	return nil
}

// hasTailFollower reports whether some neighbor is in state Follow with its
// followDir pointing at this particle's tail (§4.6).
func (p *Particle) hasTailFollower() bool {
	if p.IsContracted() {
		return false
	}
	tail := p.Tail()
	for label := 0; label < 10; label++ {
		if !p.HasNbrAtLabel(label) {
			continue
		}
		nbr := p.nbrAtLabel(label)
		if nbr.state != Follow || nbr.followDir == -1 {
			continue
		}
		if nbr.NodeAtLabel(nbr.followDir) == tail {
			return true
		}
	}
	return false
}

// labelOfFirstNbrInState scans labels starting at start (wrapping through
// the particle's full port range) and returns the first whose occupant is in
// one of states, or -1 if none qualifies (§13, supplemental helper used by
// hasNbrInState).
func (p *Particle) labelOfFirstNbrInState(states []State, start int) int {
	n := 6
	if p.IsExpanded() {
		n = 10
	}
	for i := 0; i < n; i++ {
		label := (start + i) % n
		if !p.HasNbrAtLabel(label) {
			continue
		}
		nbr := p.nbrAtLabel(label)
		for _, s := range states {
			if nbr.state == s {
				return label
			}
		}
	}
	return -1
}

// hasNbrInState reports whether any neighbor is in one of states.
func (p *Particle) hasNbrInState(states ...State) bool {
	return p.labelOfFirstNbrInState(states, 0) != -1
}

// nbrAtLabel returns the triangle-rotate particle occupying the node
// adjacent to label. Thin wrapper over the embedded engine's NbrAtLabel,
// downcasting to the richer domain type the way the original's
// nbrAtLabel<TriangleRotateParticle> does.
func (p *Particle) nbrAtLabel(label int) *Particle {
	return p.NbrAtLabel(label).Ext.(*Particle)
}

// passTokenStraight forwards tok to the neighbor directly across from where
// it arrived (§4.5): newDir = (passedFrom+3) mod 6 in this particle's own
// label space is not meaningful once expanded, so the direction is computed
// in the frame the token arrived in, then re-expressed in the neighbor's
// frame via GetLabelPointsAtMe. Returns false, without delivering tok, if
// there is no neighbor in that direction; tok is not put back into p's
// inbox, so a caller that took it from the inbox first drops it.
func passTokenStraight[T amoebot.Token](p *Particle, tok T) bool {
	newLabel := straightLabel(p, tok.From())
	if !p.HasNbrAtLabel(newLabel) {
		return false
	}
	tok.SetFrom(p.GetLabelPointsAtMe(newLabel))
	p.nbrAtLabel(newLabel).PutToken(tok)
	return true
}

// straightLabel computes the local label directly opposite the one a token
// arrived through. For a contracted particle this is simply +3 mod 6; an
// expanded particle's port layout is not symmetric across the full 10-label
// space, but every token-bearing particle in this algorithm only ever holds
// tokens while contracted (only contracted particles run findCenter/bend;
// Follow/Head/StaticEnd/Finish only ever forward FinishToken between
// contracted particles, see move()), so the simple contracted-side formula
// is the only case exercised.
func straightLabel(p *Particle, from int) int {
	return (from + 3) % 6
}
