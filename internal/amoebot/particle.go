package amoebot

import (
	"trianglerotate/pkg/geom"
)

// Particle is the generic amoebot base (§3, §4.2): a particle's head/tail
// position, local compass orientation, expansion state, and token inbox,
// plus the movement primitives and neighbor-query operations that only need
// geometry and the system's spatial index. Algorithm-specific state (the
// triangle-rotate State machine, moveDir, followDir, ...) lives in the
// wrapping trianglerotate.Particle, which embeds this type.
//
// Identity is by pointer: a Particle is heap-allocated once at construction
// and never moves in memory, so neighbor references (other *Particle values)
// remain valid for the system's entire lifetime (§3, "Identity is by
// pointer/handle").
type Particle struct {
	System *System

	Head          geom.Node
	GlobalTailDir int // -1 when contracted, else global dir head->tail.
	Orientation   int // 0..5, rotation between local and global compass.

	inbox []Token

	// Ext is an opaque back-reference to the domain-specific particle that
	// embeds this base, set once at construction. It lets domain code
	// recover its own richer type from a neighbor lookup that only returns
	// *Particle, the same role the original's dynamic_cast<TriangleRotateParticle*>
	// played against the engine's base-typed neighbor list (§9, "Neighbor
	// references").
	Ext any

	// onActivate is the wrapping domain particle's Activate method, bound as
	// a closure at construction time. The engine's scheduler (§4.3) never
	// needs to know the triangle-rotate state machine; it only needs to run
	// one activation to completion.
	onActivate func()
}

// IsContracted reports whether the particle occupies exactly one node.
func (p *Particle) IsContracted() bool { return p.GlobalTailDir == -1 }

// IsExpanded reports whether the particle occupies two adjacent nodes.
func (p *Particle) IsExpanded() bool { return !p.IsContracted() }

// Tail returns the node occupied by the particle's tail. Only meaningful
// when expanded; callers should check IsExpanded first.
func (p *Particle) Tail() geom.Node {
	return p.Head.Neighbor(p.GlobalTailDir)
}

// numLabels returns how many port labels this particle currently has: 6 if
// contracted, 10 if expanded.
func (p *Particle) numLabels() int {
	if p.IsContracted() {
		return geom.ContractedPorts
	}
	return geom.ExpandedPorts
}

// NodeAtLabel returns the lattice node adjacent to the particle through
// local port label.
func (p *Particle) NodeAtLabel(label int) geom.Node {
	if p.IsContracted() {
		dir := geom.ContractedLabelToGlobalDir(label, p.Orientation)
		return p.Head.Neighbor(dir)
	}
	dir := geom.ExpandedLabelToGlobalDir(label, p.GlobalTailDir)
	if geom.IsHeadLabel(label) {
		return p.Head.Neighbor(dir)
	}
	return p.Tail().Neighbor(dir)
}

// LabelForTailDir returns this (expanded) particle's tail-side port label
// pointing in global direction dir, if any. Used after a handover expansion
// to re-derive a follow direction in the particle's new, larger port space
// (§9, "Open questions" is silent on this but the original's nbrDirToDir
// plays exactly this role in TriangleRotateParticle::move).
func (p *Particle) LabelForTailDir(dir int) (int, bool) {
	return geom.ExpandedTailDirToLabel(dir, p.GlobalTailDir)
}

// HasNbrAtLabel reports whether a particle occupies the node adjacent to
// label.
func (p *Particle) HasNbrAtLabel(label int) bool {
	_, ok := p.System.index[p.NodeAtLabel(label)]
	return ok
}

// NbrAtLabel returns the particle occupying the node adjacent to label.
// Fatal if no such particle exists; callers unsure whether a neighbor is
// present should check HasNbrAtLabel first (§4.1).
func (p *Particle) NbrAtLabel(label int) *Particle {
	nbr, ok := p.System.index[p.NodeAtLabel(label)]
	if !ok {
		panic(fatalf("nbrAtLabel: no particle at label %d of particle at %v", label, p.Head))
	}
	return nbr
}

// PointsAtMe reports whether nbr's port label nbrLabel names a node equal to
// p's head, i.e. whether that port points back at p.
func (p *Particle) PointsAtMe(nbr *Particle, nbrLabel int) bool {
	return nbr.NodeAtLabel(nbrLabel) == p.Head
}

// GetLabelPointsAtMe returns the label, in the frame of the neighbor at
// label, of the port that points back at p. Fatal if no such label exists
// (§4.1); this is a brute-force search over the neighbor's own port range,
// mirroring the original's loop rather than a closed-form inverse, since a
// port's direction is only meaningful relative to the endpoint (head or
// tail) it is measured from.
func (p *Particle) GetLabelPointsAtMe(label int) int {
	nbr := p.NbrAtLabel(label)
	for nbrLabel := 0; nbrLabel < nbr.numLabels(); nbrLabel++ {
		if p.PointsAtMe(nbr, nbrLabel) {
			return nbrLabel
		}
	}
	panic(fatalf("getLabelPointsAtMe: neighbor at %v has no label pointing back at %v", nbr.Head, p.Head))
}

// Expand moves the particle from contracted to expanded in global direction
// dir. Fatal if the particle is already expanded or the target node is
// occupied.
func (p *Particle) Expand(dir int) {
	if p.IsExpanded() {
		panic(fatalf("expand: particle at %v is already expanded", p.Head))
	}
	target := p.Head.Neighbor(dir)
	if _, occupied := p.System.index[target]; occupied {
		panic(fatalf("expand: node %v is already occupied", target))
	}
	p.GlobalTailDir = dir
	p.System.index[target] = p
}

// ContractHead vacates the particle's head node, leaving it contracted at
// its former tail. Fatal if the particle is already contracted.
func (p *Particle) ContractHead() {
	if p.IsContracted() {
		panic(fatalf("contractHead: particle at %v is already contracted", p.Head))
	}
	delete(p.System.index, p.Head)
	newHead := p.Tail()
	p.Head = newHead
	p.GlobalTailDir = -1
}

// ContractTail vacates the particle's tail node, leaving it contracted at
// its head. Fatal if the particle is already contracted.
func (p *Particle) ContractTail() {
	if p.IsContracted() {
		panic(fatalf("contractTail: particle at %v is already contracted", p.Head))
	}
	delete(p.System.index, p.Tail())
	p.GlobalTailDir = -1
}

// CanPush reports whether the preconditions for Push(label) hold: p is
// contracted and the neighbor at label is expanded with its tail on that
// port (§4.2).
func (p *Particle) CanPush(label int) bool {
	if !p.IsContracted() || !p.HasNbrAtLabel(label) {
		return false
	}
	nbr := p.NbrAtLabel(label)
	if nbr.IsContracted() {
		return false
	}
	return nbr.Tail() == p.NodeAtLabel(label)
}

// Push performs a handover expansion (§4.2): p, contracted, expands into the
// tail node of the expanded neighbor at label, while that neighbor
// atomically contracts its tail. Fatal if CanPush(label) does not hold.
func (p *Particle) Push(label int) {
	if !p.CanPush(label) {
		panic(fatalf("push: preconditions not met for particle at %v pushing through label %d", p.Head, label))
	}
	nbr := p.NbrAtLabel(label)
	target := nbr.Tail()
	dir := nodeDir(p.Head, target)
	delete(p.System.index, target)
	nbr.GlobalTailDir = -1
	p.GlobalTailDir = dir
	p.System.index[target] = p
}

// nodeDir returns the global direction from a to b, assuming they are
// lattice-adjacent. Used only by Push, where adjacency is already
// guaranteed by CanPush.
func nodeDir(a, b geom.Node) int {
	dx, dy := b.X-a.X, b.Y-a.Y
	for d := 0; d < 6; d++ {
		o := geom.Offset(d)
		if o.X == dx && o.Y == dy {
			return d
		}
	}
	panic(fatalf("nodeDir: %v and %v are not adjacent", a, b))
}
