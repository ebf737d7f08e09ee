package clipper

// Intersection detection and resolution within one scanbeam (spec 4.4).
//
// The AEL is sorted by X at the bottom of the current scanbeam. As Y rises
// toward the next scanbeam, any pair of adjacent edges whose X order would
// invert crosses somewhere in between: that crossing is an intersection
// event. This engine finds them with repeated adjacent-swap passes
// (spec 9's "in-place bubble-sort intersection fixup") rather than a
// separate sorted intersection list, trading big-O for a flat, auditable
// implementation appropriate to this engine's size budget.

func (c *vattiState) processIntersections(topY int64) {
	swapped := true
	for swapped {
		swapped = false
		for e := c.ael.head; e != nil && e.NextInAEL != nil; e = e.NextInAEL {
			e2 := e.NextInAEL
			x1 := e.topX(topY)
			x2 := e2.topX(topY)
			if x1 <= x2 {
				continue
			}
			pt := c.findIntersectPoint(e, e2, topY)
			c.intersectEdges(e, e2, pt)
			c.ael.swapWithNext(e)
			swapped = true
		}
	}
}

func (c *vattiState) findIntersectPoint(e1, e2 *Edge, topY int64) Point64 {
	pt, kind, err := SegmentIntersection(e1.Bot, e1.Top, e2.Bot, e2.Top)
	if err == nil && kind == PointIntersection {
		return pt
	}
	// Parallel/degenerate fallback: the midpoint of the two edges' X at
	// topY, not clamped to either edge's span.
	x1, x2 := e1.topX(topY), e2.topX(topY)
	return Point64{X: (x1 + x2) / 2, Y: topY}
}

// intersectEdges applies one crossing between e1 and e2 at pt: fires the
// attribute callback, updates both edges' winding counts for the segment
// above pt, and emits an output vertex if the crossing lies on the result
// boundary under the active clip op.
func (c *vattiState) intersectEdges(e1, e2 *Edge, pt Point64) {
	var e1CorrectZ, e1ReverseZ, e2CorrectZ, e2ReverseZ int64
	if c.attrib != nil {
		e1CorrectZ, e1ReverseZ, e2CorrectZ, e2ReverseZ = c.attrib.OnIntersection(e1.Bot, pt, e1.Top, e2.Bot, pt, e2.Top)
	} else {
		e1CorrectZ, e1ReverseZ, e2CorrectZ, e2ReverseZ = pt.Z, pt.Z, pt.Z, pt.Z
	}

	e1Contributing := e1.OutRec != nil
	e2Contributing := e2.OutRec != nil

	oldE1Wc, oldE2Wc := e1.WindCount, e2.WindCount
	if e1.pathType() == e2.pathType() {
		e1.WindCount, e2.WindCount = oldE2Wc, oldE1Wc
	} else {
		e1.WindCount2, e2.WindCount2 = e2.WindCount2+e2.WindDx, e1.WindCount2+e1.WindDx
	}

	e1Contrib := c.isContributingClosed(e1)
	e2Contrib := c.isContributingClosed(e2)

	pt1 := pt
	pt1.Z = e1CorrectZ
	pt2 := pt
	pt2.Z = e2CorrectZ
	_ = e1ReverseZ
	_ = e2ReverseZ

	switch {
	case e1Contributing && e2Contributing:
		c.addOutPt(e1, pt1)
		c.addOutPt(e2, pt2)
	case e1Contributing && !e2Contributing && e2Contrib:
		e2.OutRec = e1.OutRec
		c.addOutPt(e2, pt2)
	case e2Contributing && !e1Contributing && e1Contrib:
		e1.OutRec = e2.OutRec
		c.addOutPt(e1, pt1)
	case !e1Contributing && !e2Contributing && e1Contrib && e2Contrib:
		c.addLocalMinPoly(e1, e2, pt1, false)
	}
}
