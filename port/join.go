package clipper

import "sort"

// Hole-ownership resolution (spec 4.8's fixupFirstLefts concept). Rather
// than tracking a running "first-left" edge during the sweep and patching
// it as OutRecs merge, this engine resolves nesting once, after the sweep,
// by testing each ring's first point against every larger-area candidate
// ring that could contain it. The areas are already on hand from
// collectRings' orientation pass, so the extra cost is one
// PointInPolygon scan per ring against its candidate ancestors -- cheap
// next to the sweep itself, and considerably simpler to get right.

type resultRing struct {
	path  Path64
	area  Int128
	owner *resultRing
	or    *OutRec
}

// resolveNesting assigns each ring an owner: the smallest-area ring that
// contains it, or nil for an outermost ring. Rings are processed
// largest-area-first so a ring's owner is always resolved before any ring
// it could itself own.
func resolveNesting(rings []*resultRing) {
	ordered := make([]*resultRing, len(rings))
	copy(ordered, rings)
	sort.Slice(ordered, func(i, j int) bool {
		return absArea(ordered[i].area).Cmp(absArea(ordered[j].area)) > 0
	})

	for i, r := range ordered {
		if len(r.path) == 0 {
			continue
		}
		testPt := r.path[0]
		var best *resultRing
		for j := 0; j < i; j++ {
			cand := ordered[j]
			if cand == r || len(cand.path) == 0 {
				continue
			}
			if PointInPolygon(testPt, cand.path, NonZero) == Outside {
				continue
			}
			if best == nil || absArea(cand.area).Cmp(absArea(best.area)) < 0 {
				best = cand
			}
		}
		r.owner = best
	}
}

func absArea(a Int128) Int128 {
	if a.IsNegative() {
		return a.Negate()
	}
	return a
}

// isHole reports whether r is nested inside an odd number of ancestors,
// the standard "hole iff surrounded by an odd number of outer contours"
// rule this engine applies regardless of fill rule once the boolean op
// has already resolved which rings belong in the result.
func (r *resultRing) isHole() bool {
	depth := 0
	for p := r.owner; p != nil; p = p.owner {
		depth++
	}
	return depth%2 == 1
}

// splitSelfTouchingRing breaks path at any vertex that repeats an earlier
// vertex's X/Y, producing one simple ring per loop (the StrictlySimple
// option, spec section 6). Each repeated point closes off the sub-loop
// between its two occurrences; the remainder is then checked again, since
// a ring can self-touch at more than one point.
func splitSelfTouchingRing(path Path64) []Path64 {
	if len(path) < 3 {
		return []Path64{path}
	}

	seen := make(map[[2]int64]int, len(path))
	for i, pt := range path {
		key := [2]int64{pt.X, pt.Y}
		if j, ok := seen[key]; ok {
			loop := append(Path64{}, path[j:i]...)
			rest := append(append(Path64{}, path[:j]...), path[i:]...)

			var out []Path64
			if len(loop) >= 3 {
				out = append(out, splitSelfTouchingRing(loop)...)
			}
			out = append(out, splitSelfTouchingRing(rest)...)
			return out
		}
		seen[key] = i
	}
	return []Path64{path}
}
