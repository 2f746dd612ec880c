package geom

import "testing"

func TestNeighborRoundTrip(t *testing.T) {
	n := Node{X: 2, Y: -1}
	for dir := 0; dir < 6; dir++ {
		nbr := n.Neighbor(dir)
		back := nbr.Neighbor(Opposite(dir))
		if back != n {
			t.Fatalf("dir %d: expected round trip to %v, got %v", dir, n, back)
		}
	}
}

func TestMod6(t *testing.T) {
	cases := map[int]int{0: 0, 5: 5, 6: 0, 7: 1, -1: 5, -6: 0, -7: 5}
	for in, want := range cases {
		if got := Mod6(in); got != want {
			t.Errorf("Mod6(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for dir := 0; dir < 6; dir++ {
		if Opposite(Opposite(dir)) != dir {
			t.Errorf("Opposite(Opposite(%d)) != %d", dir, dir)
		}
	}
}
