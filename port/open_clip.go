package clipper

import "sort"

// Open-path clipping against closed polygons (spec 4's subjectsOpen
// parameter). The main sweep in vatti.go only assembles area-vs-area
// output; an open path has no interior, so here it is clipped independently
// by splitting each segment at every crossing with a clip edge and keeping
// the sub-segments whose midpoint satisfies the operation's inside/outside
// test, against an arbitrary polygon clip region.
//
// Union and Xor have no natural meaning for a line against an area, so both
// simply pass the open path through unclipped -- see DESIGN.md.
func clipOpenPaths(subjectsOpen, clips Paths64, fillRule FillRule, clipType ClipType) Paths64 {
	if len(subjectsOpen) == 0 {
		return nil
	}
	if clipType == Union || clipType == Xor || len(clips) == 0 {
		out := make(Paths64, len(subjectsOpen))
		copy(out, subjectsOpen)
		return out
	}

	keepInside := clipType == Intersection

	var result Paths64
	for _, path := range subjectsOpen {
		result = append(result, clipOpenPath(path, clips, fillRule, keepInside)...)
	}
	return result
}

func insideAnyClip(pt Point64, clips Paths64, fillRule FillRule) bool {
	for _, poly := range clips {
		if PointInPolygon(pt, poly, fillRule) != Outside {
			return true
		}
	}
	return false
}

type crossing struct {
	t  float64
	pt Point64
}

func clipOpenPath(path Path64, clips Paths64, fillRule FillRule, keepInside bool) Paths64 {
	if len(path) < 2 {
		return nil
	}

	var result Paths64
	var current Path64

	flush := func() {
		if len(current) >= 2 {
			result = append(result, current)
		}
		current = nil
	}

	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		xs := segmentCrossings(a, b, clips)

		points := make([]Point64, 0, len(xs)+2)
		points = append(points, a)
		for _, x := range xs {
			points = append(points, x.pt)
		}
		points = append(points, b)

		for j := 0; j < len(points)-1; j++ {
			p0, p1 := points[j], points[j+1]
			mid := Point64{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
			inside := insideAnyClip(mid, clips, fillRule)
			if inside == keepInside {
				if len(current) == 0 {
					current = append(current, p0)
				}
				current = append(current, p1)
			} else {
				flush()
			}
		}
	}
	flush()
	return result
}

// segmentCrossings returns every point where segment a-b crosses a clip
// polygon edge, ordered by distance from a.
func segmentCrossings(a, b Point64, clips Paths64) []crossing {
	var xs []crossing
	for _, poly := range clips {
		n := len(poly)
		for i := 0; i < n; i++ {
			c := poly[i]
			d := poly[(i+1)%n]
			pt, kind, err := SegmentIntersection(a, b, c, d)
			if err != nil || kind != PointIntersection {
				continue
			}
			dx, dy := float64(pt.X-a.X), float64(pt.Y-a.Y)
			xs = append(xs, crossing{t: dx*dx + dy*dy, pt: pt})
		}
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].t < xs[j].t })
	return xs
}
