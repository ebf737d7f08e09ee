package clipper

import "sort"

// vattiState is the sweep engine's working state for one Execute call
// (spec 3-4). Coordinates follow the classic Clipper convention: an edge's
// Bot has the larger Y, its Top the smaller, and the sweep runs from the
// highest Y down to the lowest -- which is why scanbeamList is a max-heap.
type vattiState struct {
	clipType ClipType
	fillRule FillRule

	ael      activeEdgeList
	scanbeam *scanbeamList
	minima   []*LocalMinima
	minIdx   int

	outRecs []*OutRec
	attrib  AttributeHandler

	preserveCollinear bool
	strictlySimple    bool
	reverseSolution   bool
}

func newVattiState(clipType ClipType, fillRule FillRule, attrib AttributeHandler) *vattiState {
	if attrib == nil {
		attrib = NopAttributeHandler{}
	}
	return &vattiState{
		clipType: clipType,
		fillRule: fillRule,
		scanbeam: newScanbeamList(),
		attrib:   attrib,
	}
}

func (c *vattiState) addPaths(paths Paths64, pathType PathType, isOpen bool) {
	c.minima = append(c.minima, buildLocalMinimaList(paths, pathType, isOpen, c.preserveCollinear)...)
}

// execute runs the full sweep and returns every output ring assembled,
// still carrying both Z slots -- buildResult (result.go) turns these into
// public Paths64/PolyTree64 values.
func (c *vattiState) execute() []*resultRing {
	if len(c.minima) == 0 {
		return nil
	}

	sort.Slice(c.minima, func(i, j int) bool {
		return c.minima[i].Vertex.Pt.Y > c.minima[j].Vertex.Pt.Y
	})
	for _, lm := range c.minima {
		c.scanbeam.insert(lm.Vertex.Pt.Y)
	}

	for !c.scanbeam.empty() {
		y := c.scanbeam.pop()
		c.insertLocalMinimaAt(y)
		c.processHorizontalsAt(y)

		if !c.scanbeam.empty() {
			c.processIntersections(peekNextY(c.scanbeam))
		}

		c.ael.setCurrX(y)
		c.doTopOfScanbeam(y)
		checkAELSorted(c.ael.head)
	}

	return c.collectRings()
}

// peekNextY reads the next scanbeam height without removing it, needed so
// processIntersections knows how far forward to look for crossings.
func peekNextY(s *scanbeamList) int64 {
	if s.empty() {
		return 0
	}
	return s.h[0]
}

// insertLocalMinimaAt builds and inserts into the AEL every bound pair
// whose local minimum sits at y, in ascending X order (spec 4.1).
func (c *vattiState) insertLocalMinimaAt(y int64) {
	for c.minIdx < len(c.minima) && c.minima[c.minIdx].Vertex.Pt.Y == y {
		lm := c.minima[c.minIdx]
		c.minIdx++

		left := buildBound(lm, 1, lm.IsOpen)
		right := buildBound(lm, -1, lm.IsOpen)

		c.ael.insertSorted(left)
		c.ael.insertSorted(right)

		c.setWindingCount(left)
		c.setWindingCount(right)

		if !lm.IsOpen && c.isContributingClosed(left) {
			c.addLocalMinPoly(left, right, lm.Vertex.Pt, false)
		}
	}
}

// processHorizontalsAt runs processHorizontal on every edge whose bound is
// horizontal at the current scanbeam (spec 4.5). It does not advance the
// edges itself.
func (c *vattiState) processHorizontalsAt(y int64) {
	for _, e := range c.scanbeamHorizontals(y) {
		c.processHorizontal(e)
	}
}

// doTopOfScanbeam advances every AEL edge whose Top has been reached,
// closing local maxima and re-inserting whatever remains of each bound.
func (c *vattiState) doTopOfScanbeam(y int64) {
	e := c.ael.head
	for e != nil {
		next := e.NextInAEL
		if e.Top.Y != y {
			e = next
			continue
		}

		if e.vertexTop.isLocalMaximum() {
			c.handleMaximum(e, y)
		} else if e.advanceToNextBound() {
			c.scanbeam.insert(e.Top.Y)
		} else {
			c.ael.remove(e)
		}
		e = next
	}
}

// handleMaximum closes the ring(s) converging at a local maximum. The
// partner bound is whichever neighbor in the AEL also peaks here; real
// input always pairs these up since a local max closes exactly two bounds.
func (c *vattiState) handleMaximum(e *Edge, y int64) {
	pt := e.Top
	partner := findMaximaPartner(e, pt)

	switch {
	case partner == nil:
		if e.OutRec != nil {
			c.addOutPt(e, pt)
		}
		c.ael.remove(e)
	case e.OutRec != nil && partner.OutRec != nil:
		c.addLocalMaxPoly(e, partner, pt)
		c.ael.remove(e)
		c.ael.remove(partner)
	default:
		if e.OutRec != nil {
			c.addOutPt(e, pt)
		}
		if partner.OutRec != nil {
			c.addOutPt(partner, pt)
		}
		c.ael.remove(e)
		c.ael.remove(partner)
	}
}

func findMaximaPartner(e *Edge, pt Point64) *Edge {
	for cand := e.NextInAEL; cand != nil; cand = cand.NextInAEL {
		if cand.Top == pt && cand.vertexTop.isLocalMaximum() {
			return cand
		}
		if cand.CurrX > e.CurrX+1 {
			break
		}
	}
	for cand := e.PrevInAEL; cand != nil; cand = cand.PrevInAEL {
		if cand.Top == pt && cand.vertexTop.isLocalMaximum() {
			return cand
		}
		if cand.CurrX < e.CurrX-1 {
			break
		}
	}
	return nil
}

// collectRings walks every un-merged OutRec into a resultRing, deciding
// its final orientation and reading whichever Z slot (CorrectZ as built,
// ReverseZ if the ring gets flipped) matches that orientation (spec 4.7,
// 9's dual-orientation OutCoord design).
func (c *vattiState) collectRings() []*resultRing {
	var rings []*resultRing
	for _, or := range c.outRecs {
		if or.merged != nil {
			continue
		}
		coords := ringCoords(or)
		if len(coords) < 3 {
			continue
		}

		bare := make(Path64, len(coords))
		for i, oc := range coords {
			bare[i] = Point64{X: oc.X, Y: oc.Y}
		}
		area := Area128(bare)

		path := make(Path64, len(coords))
		if area.IsNegative() {
			n := len(coords)
			for i, oc := range coords {
				rc := oc.reverse()
				path[n-1-i] = Point64{X: rc.X, Y: rc.Y, Z: rc.CorrectZ}
			}
			area = area.Negate()
		} else {
			for i, oc := range coords {
				path[i] = oc.point()
			}
		}

		if c.strictlySimple {
			for _, frag := range splitSelfTouchingRing(path) {
				rings = append(rings, &resultRing{path: frag, area: Area128(frag), or: or})
			}
			continue
		}

		rings = append(rings, &resultRing{path: path, area: area, or: or})
	}
	return rings
}
