package clipper

import "github.com/dhconnelly/rtreego"

// PathIndex accelerates candidate selection over a large set of paths by
// indexing their bounding boxes in an R-tree, the way s57.ChartIndex
// indexes chart coverage rectangles for spatial lookups. Two polygons
// cannot intersect unless their bounding boxes do, so a query here is a
// cheap way to avoid running the full sweep (C2-C9) on pairs that are
// provably disjoint.
type PathIndex struct {
	paths Paths64
	rtree *rtreego.Rtree
}

// pathEntry adapts one indexed path to rtreego.Spatial.
type pathEntry struct {
	idx    int
	bounds Rect64
}

func (e pathEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{float64(e.bounds.Left), float64(e.bounds.Top)}
	lengths := []float64{
		float64(e.bounds.Right - e.bounds.Left),
		float64(e.bounds.Bottom - e.bounds.Top),
	}
	if lengths[0] <= 0 {
		lengths[0] = 1
	}
	if lengths[1] <= 0 {
		lengths[1] = 1
	}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		// Degenerate bounds (a single-point path); fall back to a unit box
		// anchored at the point so the entry still indexes.
		rect, _ = rtreego.NewRect(point, []float64{1, 1})
	}
	return rect
}

// BuildPathIndex indexes every path's bounding box. Paths with fewer than
// one point are skipped since they have no meaningful bounds.
func BuildPathIndex(paths Paths64) *PathIndex {
	tree := rtreego.NewTree(2, 25, 50)
	idx := &PathIndex{paths: paths}
	for i, p := range paths {
		if len(p) == 0 {
			continue
		}
		tree.Insert(pathEntry{idx: i, bounds: bounds64Impl(p)})
	}
	idx.rtree = tree
	return idx
}

// Query returns the indices of every indexed path whose bounding box
// intersects box.
func (pi *PathIndex) Query(box Rect64) []int {
	point := rtreego.Point{float64(box.Left), float64(box.Top)}
	lengths := []float64{
		float64(box.Right - box.Left),
		float64(box.Bottom - box.Top),
	}
	if lengths[0] <= 0 {
		lengths[0] = 1
	}
	if lengths[1] <= 0 {
		lengths[1] = 1
	}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	hits := pi.rtree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(pathEntry).idx)
	}
	return out
}

// CandidatePairs returns every (subject index, clip index) pair whose
// bounding boxes overlap, out of the full subjects x clips cross product.
// Callers processing many independent polygons (map layers, batch
// offsetting jobs) use this to skip pairs the sweep would immediately
// discard, rather than running BooleanOp64 on every pair.
func CandidatePairs(subjects, clips Paths64) [][2]int {
	if len(subjects) == 0 || len(clips) == 0 {
		return nil
	}
	clipIdx := BuildPathIndex(clips)

	var pairs [][2]int
	for si, s := range subjects {
		if len(s) == 0 {
			continue
		}
		box := bounds64Impl(s)
		for _, ci := range clipIdx.Query(box) {
			pairs = append(pairs, [2]int{si, ci})
		}
	}
	return pairs
}
