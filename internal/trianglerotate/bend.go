package trianglerotate

import "trianglerotate/internal/amoebot"

// bend implements Phase B (§4.4): once the center is known, it emits three
// static and three rotating bend points around itself, alternating every
// other direction. Each bend point propagates outward along its row; a
// static bend point's row stays put (Finish/StaticEnd), while a rotating bend point's
// row installs a follow chain (Follow/Head) that Phase C then walks forward.
func (p *Particle) bend() {
	switch p.state {
	case Center:
		p.bendCenter()
	case CenterFound:
		p.bendCenterFound()
	default:
		panic(fatalf("bend: invalid state %s", p.state))
	}
}

func (p *Particle) bendCenter() {
	for offset := 0; offset < 6; offset += 2 {
		dir := (p.receivedCenterTokenFrom + offset) % 6
		static := &BendPointToken{Final: true}
		static.SetFrom(p.GetLabelPointsAtMe(dir))
		p.nbrAtLabel(dir).PutToken(static)

		dir = (dir + 1) % 6
		rotating := &BendPointToken{Final: false}
		rotating.SetFrom(p.GetLabelPointsAtMe(dir))
		p.nbrAtLabel(dir).PutToken(rotating)
	}
	p.state = Finish
}

func (p *Particle) bendCenterFound() {
	if bendToken, ok := amoebot.TakeToken[*BendPointToken](p.Particle); ok {
		if bendToken.Final {
			if p.HasNbrAtLabel((bendToken.From() + 3) % 6) {
				p.state = Finish
			} else {
				p.state = StaticEnd
				p.followDir = (bendToken.From() + 4) % 6
			}
		} else {
			p.state = Follow
			p.followDir = (bendToken.From() + 2) % 6

			iFollowYou := &FollowToken{Follow: false}
			if p.HasNbrAtLabel(p.followDir) {
				iFollowYou.SetFrom(p.GetLabelPointsAtMe(p.followDir))
				p.nbrAtLabel(p.followDir).PutToken(iFollowYou)
			} else {
				p.state = Head
				p.moveDir = p.followDir
			}

			youFollowMeDir := (p.followDir + 2) % 6
			if p.HasNbrAtLabel(youFollowMeDir) {
				youFollowMe := &FollowToken{Follow: true}
				youFollowMe.SetFrom(p.GetLabelPointsAtMe(youFollowMeDir))
				p.nbrAtLabel(youFollowMeDir).PutToken(youFollowMe)
			}
		}
		passTokenStraight(p, bendToken)
	}

	if followToken, ok := amoebot.TakeToken[*FollowToken](p.Particle); ok {
		if followToken.Follow {
			p.state = Follow
			p.followDir = followToken.From()
		} else {
			p.state = Follow
			p.followDir = (followToken.From() + 3) % 6
			if !p.HasNbrAtLabel(p.followDir) {
				p.moveDir = p.followDir
				p.state = Head
			}
		}
		passTokenStraight(p, followToken)
	}
}
