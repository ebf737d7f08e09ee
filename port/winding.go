package clipper

// Winding-count computation and the clip-op contribution table (spec 4.6).
// setWindingCount is the classic two-pass walk back through the AEL: first
// find WindCount by scanning same-PathType neighbors, then WindCount2 by
// accumulating every other edge crossed on the way back to e.

func isEvenOdd(fillRule FillRule) bool { return fillRule == EvenOdd }

func (c *vattiState) setWindingCount(e *Edge) {
	prev := e.PrevInAEL
	for prev != nil && (prev.pathType() != e.pathType() || prev.WindDx == 0) {
		prev = prev.PrevInAEL
	}

	var scanFrom *Edge
	if prev == nil {
		e.WindCount = e.WindDx
		e.WindCount2 = 0
		scanFrom = c.ael.head
	} else if isEvenOdd(c.fillRule) {
		e.WindCount = 1
		e.WindCount2 = prev.WindCount2
		scanFrom = prev.NextInAEL
	} else {
		switch {
		case prev.WindCount*prev.WindDx < 0:
			if abs(prev.WindCount) > 1 {
				if prev.WindDx*e.WindDx < 0 {
					e.WindCount = prev.WindCount
				} else {
					e.WindCount = prev.WindCount + e.WindDx
				}
			} else {
				if e.WindDx == 0 {
					e.WindCount = 1
				} else {
					e.WindCount = e.WindDx
				}
			}
		default:
			if e.WindDx == 0 {
				if prev.WindCount < 0 {
					e.WindCount = prev.WindCount - 1
				} else {
					e.WindCount = prev.WindCount + 1
				}
			} else if prev.WindDx*e.WindDx < 0 {
				e.WindCount = prev.WindCount
			} else {
				e.WindCount = prev.WindCount + e.WindDx
			}
		}
		e.WindCount2 = prev.WindCount2
		scanFrom = prev.NextInAEL
	}

	altEvenOdd := isEvenOdd(c.fillRule)
	for cur := scanFrom; cur != nil && cur != e; cur = cur.NextInAEL {
		if altEvenOdd {
			if cur.WindDx != 0 {
				if e.WindCount2 == 0 {
					e.WindCount2 = 1
				} else {
					e.WindCount2 = 0
				}
			}
		} else {
			e.WindCount2 += cur.WindDx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isContributingClosed decides whether e belongs on the boundary of the
// result for a closed subject/clip pairing, per the exact clip-op/fill-rule
// table spec 4.6 specifies.
func (c *vattiState) isContributingClosed(e *Edge) bool {
	switch c.fillRule {
	case EvenOdd:
	case NonZero:
		if abs(e.WindCount) != 1 {
			return false
		}
	case Positive:
		if e.WindCount != 1 {
			return false
		}
	case Negative:
		if e.WindCount != -1 {
			return false
		}
	}

	switch c.clipType {
	case Intersection:
		switch c.fillRule {
		case Positive:
			return e.WindCount2 > 0
		case Negative:
			return e.WindCount2 < 0
		default:
			return e.WindCount2 != 0
		}
	case Union:
		switch c.fillRule {
		case Positive:
			return e.WindCount2 <= 0
		case Negative:
			return e.WindCount2 >= 0
		default:
			return e.WindCount2 == 0
		}
	case Difference:
		if e.pathType() == PathTypeSubject {
			switch c.fillRule {
			case Positive:
				return e.WindCount2 <= 0
			case Negative:
				return e.WindCount2 >= 0
			default:
				return e.WindCount2 == 0
			}
		}
		switch c.fillRule {
		case Positive:
			return e.WindCount2 > 0
		case Negative:
			return e.WindCount2 < 0
		default:
			return e.WindCount2 != 0
		}
	case Xor:
		return true
	}
	return false
}
