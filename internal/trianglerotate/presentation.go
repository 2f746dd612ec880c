package trianglerotate

import (
	"fmt"
	"strings"

	"trianglerotate/internal/amoebot"
)

// Presentation hooks (§6): a renderer never mutates particle state. Colors
// are packed 0xRRGGBB; -1 means "no marker".
const (
	colorGreen   = 0x00ff00
	colorBlack   = 0x000000
	colorRed     = 0xff0000
	colorYellow  = 0xffff00
	colorCyan    = 0x00ffff
	colorMagenta = 0xff00ff
	colorNone    = -1
)

// HeadMarkColor color-codes the particle's state for an external renderer.
func (p *Particle) HeadMarkColor() int {
	switch p.state {
	case Center:
		return colorGreen
	case Corner, Idle:
		if marker, ok := amoebot.PeekToken[*MarkerToken](p.Particle); ok {
			if amoebot.HasToken[*LastMarkerToken](p.Particle) {
				return colorBlack
			}
			if marker.Finished {
				return colorRed
			}
			return colorYellow
		}
		if p.possibleCenter {
			return colorGreen
		}
		return colorNone
	case CenterFound:
		return colorCyan
	case Finish, StaticEnd:
		return colorBlack
	case Follow:
		return colorMagenta
	case Head:
		return colorRed
	default:
		return colorNone
	}
}

// HeadMarkDir returns the port label the renderer should draw the head
// marker on, or -1 for none.
func (p *Particle) HeadMarkDir() int {
	switch p.state {
	case Idle:
		if marker, ok := amoebot.PeekToken[*MarkerToken](p.Particle); ok {
			return (marker.From() + 3) % 6
		}
		return colorNone
	case StaticEnd, Follow:
		if p.followDir != -1 {
			return p.followDir
		}
		return colorNone
	case Head:
		if p.moveDir != -1 {
			return p.moveDir
		}
		return colorNone
	default:
		return colorNone
	}
}

// TailMarkColor mirrors HeadMarkColor; the renderer hides it while
// contracted.
func (p *Particle) TailMarkColor() int { return p.HeadMarkColor() }

// InspectionText renders a multi-line snapshot of the particle's global pose,
// state, and currently held tokens, for interactive debugging (§6).
func (p *Particle) InspectionText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Global Info:\n")
	fmt.Fprintf(&b, "  head: (%d, %d)\n", p.Head.X, p.Head.Y)
	fmt.Fprintf(&b, "  orientation: %d\n", p.Orientation)
	fmt.Fprintf(&b, "  globalTailDir: %d\n\n", p.GlobalTailDir)
	fmt.Fprintf(&b, "Local Info:\n")
	fmt.Fprintf(&b, "  State: %s\n", p.state)

	if marker, ok := amoebot.PeekToken[*MarkerToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Marker token: passedFrom: %d finished: %t\n", marker.From(), marker.Finished)
	}
	if counter, ok := amoebot.PeekToken[*CounterToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Counter token: passedFrom: %d counter: %d\n", counter.From(), counter.Counter)
	}
	if center, ok := amoebot.PeekToken[*CenterToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Center token: passedFrom: %d\n", center.From())
	}
	if finish, ok := amoebot.PeekToken[*FinishToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Finish token: passedFrom: %d\n", finish.From())
	}
	if last, ok := amoebot.PeekToken[*LastMarkerToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Last marker token: passedFrom: %d finished: %t\n", last.From(), last.Finished)
	}
	if bendPoint, ok := amoebot.PeekToken[*BendPointToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Bend point token: passedFrom: %d final: %t\n", bendPoint.From(), bendPoint.Final)
	}
	if follow, ok := amoebot.PeekToken[*FollowToken](p.Particle); ok {
		fmt.Fprintf(&b, "  Follow token: passedFrom: %d follow: %t\n", follow.From(), follow.Follow)
	}
	return b.String()
}
