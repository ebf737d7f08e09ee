package clipper

// Active-edge-list edges and local minima (spec 3, 4.1, 9).
//
// Edges are heap-allocated and linked directly (NextInAEL/PrevInAEL,
// NextInSEL/PrevInSEL) rather than arena-indexed: the sweep never needs to
// serialize this graph, and Go's GC makes the pointer graph cheaper to keep
// correct than hand-rolled index arithmetic. OutRec/OutPt in outrec.go are
// pointer-linked the same way.

// LocalMinima pairs a vertex that begins a monotone bound with the path it
// came from. Two bounds (left, walking Next; right, walking Prev) are
// built from each local minimum the first time the scanbeam reaches it.
type LocalMinima struct {
	Vertex   *Vertex
	PathType PathType
	IsOpen   bool
}

// Edge is one bound of a local minimum, active between its Bot and Top
// while the scanbeam Y sweeps through that range.
type Edge struct {
	Bot, Top, Curr Point64
	CurrX          int64
	Dx             float64 // dx/dy; horizontal edges carry posInf
	WindDx         int     // +1 for a left bound, -1 for a right bound
	WindCount      int
	WindCount2     int // winding count of the *other* polygon type
	PathType       PathType
	IsLeftBound    bool
	LocalMin       *LocalMinima

	vertexTop *Vertex // vertex at Top; advancing past it ends this bound

	OutRec *OutRec

	NextInAEL, PrevInAEL *Edge
	NextInSEL, PrevInSEL *Edge

	isOpen bool
}

func (e *Edge) pathType() PathType {
	if e.LocalMin != nil {
		return e.LocalMin.PathType
	}
	return e.PathType
}

// isHorizontal reports whether the edge's current segment runs along a
// single Y (spec glossary: horizontal edges need dedicated processing).
func (e *Edge) isHorizontal() bool {
	return e.Bot.Y == e.Top.Y
}

// topX returns the X coordinate of the edge at height y, by linear
// interpolation along its Bot-Top segment.
func (e *Edge) topX(y int64) int64 {
	if y == e.Top.Y {
		return e.Top.X
	}
	if y == e.Bot.Y {
		return e.Bot.X
	}
	if e.Bot.X == e.Top.X || e.Bot.Y == e.Top.Y {
		return e.Bot.X
	}
	return e.Bot.X + round64(float64(y-e.Bot.Y)*e.Dx)
}

func round64(v float64) int64 {
	if v < 0 {
		return int64(v - 0.5)
	}
	return int64(v + 0.5)
}

func getDx(pt1, pt2 Point64) float64 {
	dy := pt2.Y - pt1.Y
	if dy == 0 {
		return posInf
	}
	return float64(pt2.X-pt1.X) / float64(dy)
}

const posInf = 1e300 // stand-in for +Inf sentinel; never compared numerically across sign

// nextVertex returns the next vertex along the bound's walking direction:
// Next for a left bound, Prev for a right bound (spec 4.1).
func (e *Edge) nextVertex() *Vertex {
	if e.WindDx > 0 {
		return e.vertexTop.Next
	}
	return e.vertexTop.Prev
}

func (e *Edge) prevVertex() *Vertex {
	if e.WindDx > 0 {
		return e.vertexTop.Prev
	}
	return e.vertexTop.Next
}

// buildBound constructs one Edge from localMin, walking the chain in the
// direction windDx indicates until the next local maximum is reached.
func buildBound(lm *LocalMinima, windDx int, isOpen bool) *Edge {
	e := &Edge{
		LocalMin: lm,
		PathType: lm.PathType,
		WindDx:   windDx,
		isOpen:   isOpen,
	}
	e.Bot = lm.Vertex.Pt
	var top *Vertex
	if windDx > 0 {
		top = lm.Vertex.Next
	} else {
		top = lm.Vertex.Prev
	}
	e.vertexTop = top
	e.Top = top.Pt
	e.Curr = e.Bot
	e.CurrX = e.Bot.X
	e.Dx = getDx(e.Bot, e.Top)
	e.IsLeftBound = windDx > 0
	return e
}

// advanceToNextBound replaces e's Bot/Top with the next monotone segment
// along its walking direction, returning false once a local maximum (or,
// for open paths, the chain end) is reached.
func (e *Edge) advanceToNextBound() bool {
	nv := e.nextVertex()
	if nv == nil {
		return false
	}
	if e.WindDx > 0 {
		if e.vertexTop.isLocalMaximum() {
			return false
		}
	} else if e.vertexTop.isLocalMaximum() {
		return false
	}
	e.Bot = e.Top
	e.vertexTop = nv
	e.Top = nv.Pt
	e.Curr = e.Bot
	e.CurrX = e.Bot.X
	e.Dx = getDx(e.Bot, e.Top)
	return true
}

// buildLocalMinimaList walks every input path's vertex chain and records
// one LocalMinima per local-minimum vertex found (spec 4.1, C2).
func buildLocalMinimaList(paths Paths64, pathType PathType, isOpen, preserveCollinear bool) []*LocalMinima {
	var out []*LocalMinima
	for _, path := range paths {
		head := createVertexFromPath(path, isOpen, preserveCollinear)
		if head == nil {
			continue
		}
		v := head
		for {
			if v.isLocalMinimum() {
				out = append(out, &LocalMinima{Vertex: v, PathType: pathType, IsOpen: isOpen})
			}
			v = v.Next
			if v == nil || v == head {
				break
			}
		}
	}
	return out
}
