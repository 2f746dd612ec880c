package trianglerotate

import (
	"trianglerotate/internal/amoebot"
	"trianglerotate/pkg/geom"
)

// move implements Phase C (§4.4, §4.2): a row formed by Phase B's follow
// chain walks forward one handover at a time. Each Follow particle pushes
// through the expanded neighbor ahead of it whenever that neighbor is ready,
// then re-centers its own followDir on the neighbor's new, contracted
// position; the last particle in a row (no tail follower) contracts once the
// row has caught up; a Head particle leads the row by repeatedly expanding;
// a StaticEnd anchors the structure and, once its neighbor settles, hands off
// a FinishToken that ripples back along the row.
func (p *Particle) move() {
	switch p.state {
	case Follow:
		p.moveFollow()
	case Head:
		p.moveHead()
	case StaticEnd:
		p.moveStaticEnd()
	case Finish:
		p.moveFinish()
	default:
		panic(fatalf("move: invalid state %s", p.state))
	}
}

func (p *Particle) moveFollow() {
	if p.hasNbrInState(CenterFound) {
		return
	}

	if p.IsContracted() && p.CanPush(p.followDir) {
		nbr := p.nbrAtLabel(p.followDir)
		nbrOldTailDir := nbr.GlobalTailDir
		p.Push(p.followDir)
		// p is now expanded with its tail on nbr's former tail node, so its
		// tail side always has a label pointing back along the row, opposite
		// nbr's former tail direction: the label ExpandedTailDirToLabel would
		// refuse only belongs to the direction from p's new tail back to its
		// own head, which is never the row direction. A missing label here
		// means CanPush's precondition was violated somewhere upstream.
		label, ok := p.LabelForTailDir(geom.Opposite(nbrOldTailDir))
		if !ok {
			panic(fatalf("move: particle at %v has no tail label pointing back along its row after push", p.Head))
		}
		p.followDir = label
		return
	}

	if p.IsExpanded() && !p.hasTailFollower() && !p.hasNbrInState(CenterFound) {
		p.ContractTail()
		return
	}

	if p.IsContracted() && p.HasNbrAtLabel(p.followDir) && p.nbrAtLabel(p.followDir).state == Finish {
		p.state = Finish
	}
}

func (p *Particle) moveHead() {
	if p.IsContracted() && p.HasNbrAtLabel(geom.Mod6(p.moveDir+5)) {
		p.Expand(geom.ContractedLabelToGlobalDir(p.moveDir, p.Orientation))
	}
	if p.IsContracted() && amoebot.HasToken[*FinishToken](p.Particle) {
		p.state = Finish
	}
}

func (p *Particle) moveStaticEnd() {
	if p.HasNbrAtLabel(p.followDir) && p.nbrAtLabel(p.followDir).IsContracted() {
		finish := &FinishToken{}
		finish.SetFrom(p.GetLabelPointsAtMe(p.followDir))
		p.nbrAtLabel(p.followDir).PutToken(finish)
		p.state = Finish
	}
}

func (p *Particle) moveFinish() {
	finish, ok := amoebot.PeekToken[*FinishToken](p.Particle)
	if !ok {
		return
	}
	passDir := (finish.From() + 3) % 6
	if p.HasNbrAtLabel(passDir) && p.nbrAtLabel(passDir).IsContracted() {
		finish, _ = amoebot.TakeToken[*FinishToken](p.Particle)
		passTokenStraight(p, finish)
	}
}
