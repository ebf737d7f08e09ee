package clipper

// OutCoord is the dual-orientation attribute carrier: every emitted output
// vertex keeps two Z slots, one valid when the ring is later read forward,
// one when it is read in reverse. Orientation is only decided in
// buildResult (4.7), so both are tracked until then rather than recomputed
// after the fact.
type OutCoord struct {
	X, Y     int64
	CorrectZ int64
	ReverseZ int64
}

func newOutCoord(pt Point64) OutCoord {
	return OutCoord{X: pt.X, Y: pt.Y, CorrectZ: pt.Z, ReverseZ: pt.Z}
}

// reverse swaps the two attribute slots, as invoked whenever the engine
// decides to walk a chain in the opposite direction from the one it was built in.
func (c OutCoord) reverse() OutCoord {
	c.CorrectZ, c.ReverseZ = c.ReverseZ, c.CorrectZ
	return c
}

func (c OutCoord) point() Point64 {
	return Point64{X: c.X, Y: c.Y, Z: c.CorrectZ}
}
