package trianglerotate

import "trianglerotate/internal/amoebot"

// findCenter implements Phase A (§4.4): each corner particle seeds one
// counter along one of the two sides meeting at that corner; a counter
// wrapping from 2 back to 0 spawns a marker that travels back to the corner,
// letting every particle learn its position along the side modulo 3. The
// last marker to arrive at a corner (having measured the full side) probes
// inward for the triangle's center, and two probes meeting at an interior
// particle mark it the center and broadcast that fact outward.
func (p *Particle) findCenter() {
	switch p.state {
	case Idle:
		p.findCenterIdle()
	case Corner:
		p.findCenterCorner()
	default:
		panic(fatalf("findCenter: invalid state %s", p.state))
	}
}

func (p *Particle) findCenterIdle() {
	cornerLabels := p.isCorner()
	if len(cornerLabels) == 2 {
		p.state = Corner

		// Pick the counter-clockwise-first of the two corner labels.
		dir := cornerLabels[0]
		if cornerLabels[0] == 0 && cornerLabels[1] == 5 {
			dir = cornerLabels[1]
		}

		counter := &CounterToken{Counter: 1}
		counter.SetFrom(p.GetLabelPointsAtMe(dir))
		p.nbrAtLabel(dir).PutToken(counter)

		marker := &MarkerToken{Finished: true}
		marker.SetFrom(-1)
		p.PutToken(marker)
		return
	}

	// Not a corner: forward whatever arrived.
	if counter, ok := amoebot.TakeToken[*CounterToken](p.Particle); ok {
		if counter.Counter == 0 {
			marker := &MarkerToken{Finished: false}
			marker.SetFrom(p.GetLabelPointsAtMe(counter.From()))
			p.nbrAtLabel(counter.From()).PutToken(marker)
		}
		counter.Counter = (counter.Counter + 1) % 3
		passTokenStraight(p, counter)
	}

	if marker, ok := amoebot.PeekToken[*MarkerToken](p.Particle); ok && !marker.Finished {
		newDir := (marker.From() + 3) % 6
		if p.HasNbrAtLabel(newDir) {
			nbrLabelToMe := p.GetLabelPointsAtMe(newDir)
			nbr := p.nbrAtLabel(newDir)
			safeToPassOn := true

			if nbrMarker, ok := amoebot.PeekToken[*MarkerToken](nbr.Particle); ok {
				if nbrMarker.From() == nbrLabelToMe || nbr.state == Corner {
					safeToPassOn = false
					if nbrMarker.Finished {
						marker.Finished = true
					}
				}
			}

			if safeToPassOn {
				marker, _ = amoebot.TakeToken[*MarkerToken](p.Particle)
				passTokenStraight(p, marker)
			}
		}
	}

	if lastMarker, ok := amoebot.PeekToken[*LastMarkerToken](p.Particle); ok && lastMarker.Finished {
		amoebot.TakeToken[*LastMarkerToken](p.Particle)
		dir := (lastMarker.From() + 1) % 6
		center := &CenterToken{Found: false}
		center.SetFrom(p.GetLabelPointsAtMe(dir))
		p.nbrAtLabel(dir).PutToken(center)
	}

	if center, ok := amoebot.TakeToken[*CenterToken](p.Particle); ok {
		if !center.Found {
			if !p.possibleCenter {
				p.possibleCenter = true
			} else {
				// A second probe has arrived: this is the center.
				p.setState(Center)
				p.receivedCenterTokenFrom = center.From()
				for i := 0; i < 6; i++ {
					broadcast := &CenterToken{Found: true}
					p.nbrAtLabel(i).PutToken(broadcast)
				}
			}
			passTokenStraight(p, center)
		} else {
			p.state = CenterFound
			for i := 0; i < 6; i++ {
				if !p.HasNbrAtLabel(i) {
					continue
				}
				if p.nbrAtLabel(i).state != CenterFound {
					broadcast := &CenterToken{Found: true}
					p.nbrAtLabel(i).PutToken(broadcast)
				}
			}
		}
	}
}

func (p *Particle) findCenterCorner() {
	if counter, ok := amoebot.TakeToken[*CounterToken](p.Particle); ok {
		if counter.Counter != 0 {
			panic(fatalf("findCenter: corner at %v received unfinished counter %d", p.Head, counter.Counter))
		}
		last := &LastMarkerToken{Finished: false}
		last.SetFrom(p.GetLabelPointsAtMe(counter.From()))
		p.nbrAtLabel(counter.From()).PutToken(last)
	}

	if center, ok := amoebot.TakeToken[*CenterToken](p.Particle); ok {
		if center.Found {
			p.state = CenterFound
		}
		// A not-found center token should never reach a corner: a corner
		// can never be the interior center.
	}
}
