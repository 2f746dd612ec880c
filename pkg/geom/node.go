// Package geom implements the triangular-lattice grid geometry the amoebot
// engine runs on: node coordinates, the six global compass directions, and
// the port-label <-> direction mapping for contracted and expanded
// particles.
package geom

// Node is a lattice position on the triangular grid, identified by integer
// axial coordinates. Two nodes are adjacent iff they differ by one of the six
// unit offsets returned by Offset.
type Node struct {
	X, Y int
}

// Neighbor returns the node adjacent to n in global direction dir (0..5).
func (n Node) Neighbor(dir int) Node {
	o := Offset(dir)
	return Node{X: n.X + o.X, Y: n.Y + o.Y}
}

// offsets holds the six unit steps for global directions 0..5, numbered
// counter-clockwise starting from the +x axis.
var offsets = [6]Node{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// Offset returns the unit coordinate step for global direction dir. dir is
// taken modulo 6 first, so callers may pass unnormalized values.
func Offset(dir int) Node {
	return offsets[Mod6(dir)]
}

// Mod6 reduces x into [0, 6), matching Go's a%6 for positive x and wrapping
// correctly for negative x (ports and directions are always taken mod 6).
func Mod6(x int) int {
	x %= 6
	if x < 0 {
		x += 6
	}
	return x
}

// Opposite returns the direction pointing the opposite way from dir.
func Opposite(dir int) int {
	return Mod6(dir + 3)
}
