package clipper

// Horizontal edge processing (spec 4.5, glossary). A horizontal edge's
// intersections with the rest of the AEL all occur at the same Y, so they
// can't be found by processIntersections' topX comparison; this pass walks
// the AEL across a horizontal edge's X span directly, emitting output
// points for every boundary edge it crosses before resuming the sweep.

func (c *vattiState) processHorizontal(horz *Edge) {
	leftX, rightX := horz.Bot.X, horz.Top.X
	dir := 1
	if leftX > rightX {
		leftX, rightX = rightX, leftX
		dir = -1
	}

	for e := c.ael.head; e != nil; e = e.NextInAEL {
		if e == horz || e.isHorizontal() {
			continue
		}
		if e.CurrX < leftX || e.CurrX > rightX {
			continue
		}
		pt := Point64{X: e.CurrX, Y: horz.Bot.Y}
		c.intersectEdges(horz, e, pt)
	}

	_ = dir
	if horz.OutRec != nil {
		c.addOutPt(horz, horz.Top)
	}
}

// scanbeamHorizontals returns every still-active edge at the current
// scanbeam that is horizontal and due for processing before the sweep
// advances in Y.
func (c *vattiState) scanbeamHorizontals(y int64) []*Edge {
	var out []*Edge
	c.ael.forEach(func(e *Edge) {
		if e.isHorizontal() && e.Bot.Y == y {
			out = append(out, e)
		}
	})
	return out
}
