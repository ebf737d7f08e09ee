package clipper

import "math"

// Validation and the "Impl" functions clipper.go's public wrappers delegate
// to once their own argument checks pass (spec 6-7). Keeping these apart
// from clipper.go mirrors how the teacher splits a documented public facade
// from the functions that actually do the work.

func validateClipType(ct ClipType) error {
	if ct > Xor {
		return ErrInvalidClipType
	}
	return nil
}

func validateFillRule(fr FillRule) error {
	if fr > Negative {
		return ErrInvalidFillRule
	}
	return nil
}

func validateJoinType(jt JoinType) error {
	if jt > Miter {
		return ErrInvalidJoinType
	}
	return nil
}

func validateEndType(et EndType) error {
	if et > OpenRound {
		return ErrInvalidEndType
	}
	return nil
}

// filterValidPaths drops every path with fewer than minPts vertices,
// returning the surviving paths and how many were dropped.
func filterValidPaths(paths Paths64, minPts int) (Paths64, int) {
	if len(paths) == 0 {
		return paths, 0
	}
	out := make(Paths64, 0, len(paths))
	dropped := 0
	for _, p := range paths {
		if len(p) < minPts {
			dropped++
			continue
		}
		out = append(out, p)
	}
	return out, dropped
}

// areaImpl computes a path's signed area via the shoelace formula, reading
// through the 128-bit accumulator the sweep itself uses so Area64 agrees
// with the engine's own notion of orientation.
func areaImpl(path Path64) float64 {
	if len(path) < 3 {
		return 0
	}
	return Area128(path).ToFloat64() / 2
}

func bounds64Impl(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{}
	}
	r := Rect64{Left: path[0].X, Right: path[0].X, Top: path[0].Y, Bottom: path[0].Y}
	for _, pt := range path[1:] {
		if pt.X < r.Left {
			r.Left = pt.X
		}
		if pt.X > r.Right {
			r.Right = pt.X
		}
		if pt.Y < r.Top {
			r.Top = pt.Y
		}
		if pt.Y > r.Bottom {
			r.Bottom = pt.Y
		}
	}
	return r
}

func boundsPaths64Impl(paths Paths64) Rect64 {
	if len(paths) == 0 {
		return Rect64{}
	}
	r := bounds64Impl(paths[0])
	for _, p := range paths[1:] {
		pr := bounds64Impl(p)
		if pr.Left < r.Left {
			r.Left = pr.Left
		}
		if pr.Right > r.Right {
			r.Right = pr.Right
		}
		if pr.Top < r.Top {
			r.Top = pr.Top
		}
		if pr.Bottom > r.Bottom {
			r.Bottom = pr.Bottom
		}
	}
	return r
}

func translatePath64Impl(path Path64, dx, dy int64) Path64 {
	out := make(Path64, len(path))
	for i, pt := range path {
		out[i] = Point64{X: pt.X + dx, Y: pt.Y + dy, Z: pt.Z}
	}
	return out
}

func translatePaths64Impl(paths Paths64, dx, dy int64) Paths64 {
	out := make(Paths64, len(paths))
	for i, p := range paths {
		out[i] = translatePath64Impl(p, dx, dy)
	}
	return out
}

func ellipse64Impl(center Point64, radiusX, radiusY float64, steps int) Path64 {
	if radiusX <= 0 {
		return Path64{}
	}
	return ellipse64(center, radiusX, radiusY, steps)
}

func scalePath64Impl(path Path64, scale float64) Path64 {
	out := make(Path64, len(path))
	for i, pt := range path {
		out[i] = Point64{
			X: int64(math.Round(float64(pt.X) * scale)),
			Y: int64(math.Round(float64(pt.Y) * scale)),
			Z: pt.Z,
		}
	}
	return out
}

func rotatePath64Impl(path Path64, angleRad float64, center Point64) Path64 {
	sin, cos := math.Sin(angleRad), math.Cos(angleRad)
	out := make(Path64, len(path))
	for i, pt := range path {
		dx, dy := float64(pt.X-center.X), float64(pt.Y-center.Y)
		out[i] = Point64{
			X: center.X + int64(math.Round(dx*cos-dy*sin)),
			Y: center.Y + int64(math.Round(dx*sin+dy*cos)),
			Z: pt.Z,
		}
	}
	return out
}

func starPolygon64Impl(center Point64, outerRadius, innerRadius float64, points int) Path64 {
	if outerRadius <= 0 || innerRadius <= 0 || points < 3 {
		return Path64{}
	}
	out := make(Path64, 0, points*2)
	step := math.Pi / float64(points)
	for i := 0; i < points*2; i++ {
		angle := float64(i)*step - math.Pi/2
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		out = append(out, Point64{
			X: center.X + int64(math.Round(r*math.Cos(angle))),
			Y: center.Y + int64(math.Round(r*math.Sin(angle))),
		})
	}
	return out
}

func inflatePathsImpl(paths Paths64, delta float64, joinType JoinType, endType EndType, opts OffsetOptions) (Paths64, error) {
	co := NewClipperOffset(opts.MiterLimit, opts.ArcTolerance)
	co.SetPreserveCollinear(opts.PreserveCollinear)
	co.SetReverseSolution(opts.ReverseSolution)
	if err := co.AddPaths(paths, joinType, endType); err != nil {
		return nil, err
	}
	return co.Execute(delta)
}

// booleanOp64Impl runs the Vatti sweep on the subject/clip sets and returns
// flat closed and open result paths.
func booleanOp64Impl(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips Paths64) (Paths64, Paths64, error) {
	state := newVattiState(clipType, fillRule, nil)
	state.addPaths(subjects, PathTypeSubject, false)
	state.addPaths(clips, PathTypeClip, false)

	rings := state.execute()
	closed := buildResult(rings, false)

	var open Paths64
	if len(subjectsOpen) > 0 {
		open = clipOpenPaths(subjectsOpen, clips, fillRule, clipType)
	}
	return closed, open, nil
}

func booleanOp64TreeImpl(clipType ClipType, fillRule FillRule, subjects, clips Paths64) (*PolyTree64, Paths64, error) {
	state := newVattiState(clipType, fillRule, nil)
	state.addPaths(subjects, PathTypeSubject, false)
	state.addPaths(clips, PathTypeClip, false)

	rings := state.execute()
	tree := buildResultTree(rings, false)
	return tree, Paths64{}, nil
}
