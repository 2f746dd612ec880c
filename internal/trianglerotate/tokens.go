package trianglerotate

import "trianglerotate/internal/amoebot"

// Token kinds (§3, "Tokens"). Each embeds amoebot.Envelope for the common
// passedFrom bookkeeping and carries its own payload. LastMarkerToken is a
// distinct Go type from MarkerToken, not a type alias or an embedding of it,
// so a HasToken[MarkerToken] check never matches a LastMarkerToken value —
// preserving the distinction the design notes call out explicitly (§9).

// CounterToken is a ternary counter traveling along a side of the triangle.
type CounterToken struct {
	amoebot.Envelope
	Counter int // 0..2
}

// MarkerToken is a discovery marker, sent backward along a side once a
// CounterToken wraps from 2 to 0.
type MarkerToken struct {
	amoebot.Envelope
	Finished bool
}

// LastMarkerToken is the distinguished marker emitted by a corner that
// terminates side-measurement. Same payload shape as MarkerToken, but a
// separate tag.
type LastMarkerToken struct {
	amoebot.Envelope
	Finished bool
}

// CenterToken probes for, and later broadcasts, the discovered center.
type CenterToken struct {
	amoebot.Envelope
	Found bool
}

// BendPointToken designates an axis endpoint: Final marks a static axis,
// !Final a moving one.
type BendPointToken struct {
	amoebot.Envelope
	Final bool
}

// FollowToken installs a follow relationship along a row.
type FollowToken struct {
	amoebot.Envelope
	Follow bool
}

// FinishToken propagates termination along a row.
type FinishToken struct {
	amoebot.Envelope
}
