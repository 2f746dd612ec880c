package trianglerotate

// State is one of the eight states a triangle-rotate particle can occupy
// (§4.4). Activation dispatches on state to one of three rule groups.
type State int

const (
	Idle State = iota
	Corner
	Center
	CenterFound
	Follow
	Head
	StaticEnd
	Finish
)

// String names a state for diagnostics and inspection text (§13,
// "stateString"). Every value of State is covered; an unrecognized value
// indicates a programming error upstream, so it is fatal like the original's
// stateString, which throws rather than returning a placeholder.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Corner:
		return "Corner"
	case Center:
		return "Center"
	case CenterFound:
		return "CenterFound"
	case Follow:
		return "Follow"
	case Head:
		return "Head"
	case StaticEnd:
		return "StaticEnd"
	case Finish:
		return "Finish"
	default:
		panic(fatalf("state: %d has no name", int(s)))
	}
}
