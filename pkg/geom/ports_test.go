package geom

import "testing"

func TestContractedLabelToGlobalDirIsBijective(t *testing.T) {
	for orientation := 0; orientation < 6; orientation++ {
		seen := map[int]bool{}
		for label := 0; label < ContractedPorts; label++ {
			dir := ContractedLabelToGlobalDir(label, orientation)
			if seen[dir] {
				t.Fatalf("orientation %d: direction %d produced by two labels", orientation, dir)
			}
			seen[dir] = true
		}
	}
}

func TestExpandedLabelToGlobalDirExcludesSharedEdge(t *testing.T) {
	for tailDir := 0; tailDir < 6; tailDir++ {
		seen := map[int]bool{}
		for label := 0; label < ExpandedPorts; label++ {
			dir := ExpandedLabelToGlobalDir(label, tailDir)
			if dir == tailDir && IsHeadLabel(label) {
				t.Errorf("tailDir %d: head label %d points at own tail", tailDir, label)
			}
			if dir == Opposite(tailDir) && !IsHeadLabel(label) {
				t.Errorf("tailDir %d: tail label %d points at own head", tailDir, label)
			}
			seen[dir] = true
		}
		if len(seen) != 6 {
			// Every global direction is reachable from at least one side: the
			// tail axis direction only from the tail side, its opposite only
			// from the head side, and the remaining four from both (they lead
			// to different physical neighbors depending on which endpoint a
			// port is measured from, see ExpandedHeadDirToLabel /
			// ExpandedTailDirToLabel).
			t.Fatalf("tailDir %d: expected all 6 directions reachable, got %d", tailDir, len(seen))
		}
	}
}

func TestExpandedHeadTailDirToLabelInverses(t *testing.T) {
	for tailDir := 0; tailDir < 6; tailDir++ {
		for label := 0; label < 5; label++ {
			dir := ExpandedLabelToGlobalDir(label, tailDir)
			got, ok := ExpandedHeadDirToLabel(dir, tailDir)
			if !ok || got != label {
				t.Errorf("tailDir %d label %d: ExpandedHeadDirToLabel(%d) = (%d, %v), want (%d, true)", tailDir, label, dir, got, ok, label)
			}
		}
		for label := 5; label < 10; label++ {
			dir := ExpandedLabelToGlobalDir(label, tailDir)
			got, ok := ExpandedTailDirToLabel(dir, tailDir)
			if !ok || got != label {
				t.Errorf("tailDir %d label %d: ExpandedTailDirToLabel(%d) = (%d, %v), want (%d, true)", tailDir, label, dir, got, ok, label)
			}
		}
		if _, ok := ExpandedHeadDirToLabel(tailDir, tailDir); ok {
			t.Errorf("tailDir %d: head side should have no label pointing at own tail", tailDir)
		}
		if _, ok := ExpandedTailDirToLabel(Opposite(tailDir), tailDir); ok {
			t.Errorf("tailDir %d: tail side should have no label pointing at own head", tailDir)
		}
	}
}
