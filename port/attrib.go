package clipper

// AttributeHandler is the capability object a caller installs via
// Clipper64.Callback to keep per-vertex Z data coherent with the geometric
// transformations the sweep performs. It flattens what a virtual-inheritance
// callback hierarchy would otherwise need into a single interface: every
// method defaults to a no-op through NopAttributeHandler, so callers only
// override the events they care about.
//
// All nine hooks fire at the canonical positions documented in spec 4.9:
// once per vertex on ingestion, once per intersection before the AEL swap,
// once per mid-edge split, once per overlapping-point merge, once per join,
// once per spike removal, once around path reversal/offset completion, and
// once per emitted offset vertex.
type AttributeHandler interface {
	// InitializeReverse seeds curr's reverse slot as curr enters the
	// pipeline, typically from next's forward attribute.
	InitializeReverse(curr, next Point64) int64

	// OnIntersection fires once per intersection, before the AEL swap.
	// e1bot/e1top and e2bot/e2top are the original-polygon endpoints of
	// each edge; the four return values are the correctZ/reverseZ pair
	// written to the new vertex on edge 1 and edge 2 respectively.
	OnIntersection(e1bot, e1pt, e1top, e2bot, e2pt, e2top Point64) (e1CorrectZ, e1ReverseZ, e2CorrectZ, e2ReverseZ int64)

	// OnSplitEdge fires when pt is inserted partway along the edge
	// from prev to next, without an intersection having occurred.
	OnSplitEdge(prev, pt, next Point64) (correctZ, reverseZ int64)

	// OnAppendOverlapping fires when a new OutPt coincides with a
	// previously emitted one and their attribute data must combine.
	OnAppendOverlapping(prev, to Point64) (correctZ, reverseZ int64)

	// OnJoin fires during the join pass when two chains splice at a
	// shared point; attributes from each incoming chain propagate to
	// the other chain's outgoing side.
	OnJoin(e1from, e1to, e2from, e2to Point64) (correctZ, reverseZ int64)

	// OnRemoveSpike fires when collinear spike removal elides curr.
	OnRemoveSpike(prev, curr, next Point64)

	// OnReversePath fires immediately before a path is reversed.
	OnReversePath(path Path64)

	// OnFinishOffset fires once the offset engine has finished a path.
	OnFinishOffset(path Path64)

	// OnOffset fires for every vertex emitted by the offset engine.
	// step/steps identify which interpolated vertex of a rounded join
	// is being produced, letting the handler interpolate accordingly.
	OnOffset(step, steps int, prev, curr, next Point64, outPt Point64) (correctZ, reverseZ int64)
}

// NopAttributeHandler is the default: every event is a no-op and output
// vertices simply carry their geometric Z unchanged.
type NopAttributeHandler struct{}

func (NopAttributeHandler) InitializeReverse(curr, next Point64) int64 { return curr.Z }
func (NopAttributeHandler) OnIntersection(e1bot, e1pt, e1top, e2bot, e2pt, e2top Point64) (int64, int64, int64, int64) {
	return e1pt.Z, e1pt.Z, e2pt.Z, e2pt.Z
}
func (NopAttributeHandler) OnSplitEdge(prev, pt, next Point64) (int64, int64) { return pt.Z, pt.Z }
func (NopAttributeHandler) OnAppendOverlapping(prev, to Point64) (int64, int64) {
	return to.Z, to.Z
}
func (NopAttributeHandler) OnJoin(e1from, e1to, e2from, e2to Point64) (int64, int64) {
	return e1to.Z, e1to.Z
}
func (NopAttributeHandler) OnRemoveSpike(prev, curr, next Point64) {}
func (NopAttributeHandler) OnReversePath(path Path64)              {}
func (NopAttributeHandler) OnFinishOffset(path Path64)             {}
func (NopAttributeHandler) OnOffset(step, steps int, prev, curr, next Point64, outPt Point64) (int64, int64) {
	return outPt.Z, outPt.Z
}

// FollowingAttributes implements the "following" convention from spec 4.9:
// a Z attribute is treated as an edge attribute carried on the edge's second
// endpoint (the attribute at v[i] describes the edge v[i-1]->v[i]). Edge
// splits divide that attribute via StripBegin/StripEnd; Reverse flips it for
// the opposite traversal direction; Clone duplicates it when an overlapping
// point, a join or an offset vertex takes over an existing attribute.
// Embed FollowingAttributes and override the four primitives; the default
// primitives are identities, so an unconfigured handler just carries Z
// through unchanged.
type FollowingAttributes struct {
	// StripBegin returns the attribute for the portion of the edge
	// (from, to) ending at pt, i.e. the beginning sub-edge.
	StripBegin func(z int64, from, to, pt Point64) int64
	// StripEnd returns the attribute for the portion starting at pt.
	StripEnd func(z int64, from, to, pt Point64) int64
	// Reverse returns the attribute valid when traversing the edge the
	// other way.
	Reverse func(z int64) int64
	// Clone duplicates an attribute so a vertex produced by
	// OnAppendOverlapping, OnJoin or OnOffset continues to name the same
	// original source.
	Clone func(z int64) int64
}

// NewFollowingAttributes returns a FollowingAttributes whose four
// primitives are identities. Override the fields to customize
// strip/reverse/clone behavior.
func NewFollowingAttributes() *FollowingAttributes {
	ident := func(z int64) int64 { return z }
	return &FollowingAttributes{
		StripBegin: func(z int64, from, to, pt Point64) int64 { return z },
		StripEnd:   func(z int64, from, to, pt Point64) int64 { return z },
		Reverse:    ident,
		Clone:      ident,
	}
}

func (f *FollowingAttributes) InitializeReverse(curr, next Point64) int64 {
	return f.Reverse(next.Z)
}

func (f *FollowingAttributes) OnIntersection(e1bot, e1pt, e1top, e2bot, e2pt, e2top Point64) (int64, int64, int64, int64) {
	e1Correct := f.StripBegin(e1top.Z, e1bot, e1top, e1pt)
	e1Reverse := f.Reverse(f.StripEnd(e1bot.Z, e1top, e1bot, e1pt))
	e2Correct := f.StripBegin(e2top.Z, e2bot, e2top, e2pt)
	e2Reverse := f.Reverse(f.StripEnd(e2bot.Z, e2top, e2bot, e2pt))
	return e1Correct, e1Reverse, e2Correct, e2Reverse
}

func (f *FollowingAttributes) OnSplitEdge(prev, pt, next Point64) (int64, int64) {
	correct := f.StripEnd(next.Z, prev, next, pt)
	reverse := f.Reverse(f.StripBegin(next.Z, prev, next, pt))
	return correct, reverse
}

func (f *FollowingAttributes) OnAppendOverlapping(prev, to Point64) (int64, int64) {
	z := f.Clone(to.Z)
	return z, f.Reverse(z)
}

func (f *FollowingAttributes) OnJoin(e1from, e1to, e2from, e2to Point64) (int64, int64) {
	z := f.Clone(e1to.Z)
	return z, f.Reverse(e2to.Z)
}

func (f *FollowingAttributes) OnRemoveSpike(prev, curr, next Point64) {}

func (f *FollowingAttributes) OnReversePath(path Path64) {}

func (f *FollowingAttributes) OnFinishOffset(path Path64) {}

func (f *FollowingAttributes) OnOffset(step, steps int, prev, curr, next Point64, outPt Point64) (int64, int64) {
	z := f.Clone(curr.Z)
	return z, f.Reverse(z)
}

var _ AttributeHandler = NopAttributeHandler{}
var _ AttributeHandler = (*FollowingAttributes)(nil)
