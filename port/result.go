package clipper

import "sort"

// Turning swept rings into public output (spec 4.7-4.8). Orientation
// convention: outer contours keep the positive area the sweep already
// normalized them to in collectRings; holes are flipped negative so callers
// can tell them apart without consulting a PolyTree.

// buildResult flattens rings into the flat Paths64 shape Union64/Intersect64
// and friends return, applying hole reversal and the caller's
// ReverseSolution option.
func buildResult(rings []*resultRing, reverseSolution bool) Paths64 {
	if len(rings) == 0 {
		return Paths64{}
	}
	resolveNesting(rings)

	out := make(Paths64, 0, len(rings))
	for _, r := range rings {
		path := r.path
		if r.isHole() {
			path = Reverse64(path)
		}
		if reverseSolution {
			path = Reverse64(path)
		}
		out = append(out, path)
	}
	return out
}

// buildResultTree assembles the same rings into a hierarchical PolyTree64,
// preserving the owner relationships resolveNesting computed. Orientation
// follows buildResult: hole rings are reversed to negative area, and
// reverseSolution flips every ring.
func buildResultTree(rings []*resultRing, reverseSolution bool) *PolyTree64 {
	tree := NewPolyTree64()
	if len(rings) == 0 {
		return tree
	}
	resolveNesting(rings)

	ordered := make([]*resultRing, len(rings))
	copy(ordered, rings)
	sort.Slice(ordered, func(i, j int) bool {
		return absArea(ordered[i].area).Cmp(absArea(ordered[j].area)) > 0
	})

	nodes := make(map[*resultRing]*PolyPath64, len(ordered))
	for _, r := range ordered {
		path := r.path
		if r.isHole() {
			path = Reverse64(path)
		}
		if reverseSolution {
			path = Reverse64(path)
		}
		parent := tree
		if r.owner != nil {
			if n, ok := nodes[r.owner]; ok {
				parent = n
			}
		}
		nodes[r] = parent.AddChild(path)
	}
	return tree
}
