package clipper

// Clipper64 is the stateful counterpart to BooleanOp64 for callers that need
// to install an AttributeHandler (spec 4.9, 6): the functional Union64 /
// Intersect64 / etc. family always runs with NopAttributeHandler, since they
// have no way to accept one.
type Clipper64 struct {
	subjects     Paths64
	subjectsOpen Paths64
	clips        Paths64
	attrib       AttributeHandler

	preserveCollinear bool
	strictlySimple    bool
	reverseSolution   bool

	executing bool
}

// NewClipper64 returns an empty Clipper64 ready for AddPath/AddPaths calls.
func NewClipper64() *Clipper64 {
	return &Clipper64{attrib: NopAttributeHandler{}}
}

// Callback installs the attribute handler this Clipper64's Execute call
// will drive. Passing nil restores the no-op default.
func (c *Clipper64) Callback(attrib AttributeHandler) {
	if attrib == nil {
		attrib = NopAttributeHandler{}
	}
	c.attrib = attrib
}

// SetPreserveCollinear controls whether runs of collinear points on added
// paths survive into the sweep unreduced (spec 4.1, 6).
func (c *Clipper64) SetPreserveCollinear(v bool) { c.preserveCollinear = v }

// PreserveCollinear reports the current PreserveCollinear setting.
func (c *Clipper64) PreserveCollinear() bool { return c.preserveCollinear }

// SetStrictlySimple controls whether Execute splits any output ring that
// touches itself into multiple simple rings (spec 6).
func (c *Clipper64) SetStrictlySimple(v bool) { c.strictlySimple = v }

// StrictlySimple reports the current StrictlySimple setting.
func (c *Clipper64) StrictlySimple() bool { return c.strictlySimple }

// SetReverseSolution flips the orientation convention Execute uses for
// outer rings and holes in its output (spec 6).
func (c *Clipper64) SetReverseSolution(v bool) { c.reverseSolution = v }

// ReverseSolution reports the current ReverseSolution setting.
func (c *Clipper64) ReverseSolution() bool { return c.reverseSolution }

// AddPath adds one path of the given type to this clipping operation.
//
// Possible errors: ErrOpenPathAsClip, a *RangeError
func (c *Clipper64) AddPath(path Path64, pathType PathType, isOpen bool) error {
	return c.AddPaths(Paths64{path}, pathType, isOpen)
}

// AddPaths adds paths of the given type to this clipping operation.
// isOpen marks subject paths as open polylines; clip paths must be closed
// (spec 9, Open Question 3). Every coordinate is checked against hiRange
// before anything is appended, so a rejected call leaves prior paths intact.
//
// Possible errors: ErrOpenPathAsClip, a *RangeError
func (c *Clipper64) AddPaths(paths Paths64, pathType PathType, isOpen bool) error {
	if pathType == PathTypeClip && isOpen {
		return ErrOpenPathAsClip
	}
	if err := checkPathsRange(paths); err != nil {
		return err
	}

	switch {
	case pathType == PathTypeClip:
		c.clips = append(c.clips, paths...)
	case isOpen:
		c.subjectsOpen = append(c.subjectsOpen, paths...)
	default:
		c.subjects = append(c.subjects, paths...)
	}
	return nil
}

// checkPathsRange rejects any coordinate outside the hiRange this engine's
// 128-bit cross products can carry without overflow (spec 3, 6).
func checkPathsRange(paths Paths64) error {
	for _, path := range paths {
		for _, pt := range path {
			if pt.X > hiRange || pt.X < -hiRange || pt.Y > hiRange || pt.Y < -hiRange {
				return rangeErr("coordinate exceeds safe range")
			}
		}
	}
	return nil
}

// Clear discards every path added so far, leaving the callback untouched.
func (c *Clipper64) Clear() {
	c.subjects = nil
	c.subjectsOpen = nil
	c.clips = nil
}

// Execute runs the sweep with this Clipper64's accumulated paths and
// installed attribute handler, returning closed and open result paths.
//
// Possible errors: ErrInvalidClipType, ErrInvalidFillRule, ErrReentrantExecute
func (c *Clipper64) Execute(clipType ClipType, fillRule FillRule) (solution, solutionOpen Paths64, err error) {
	if c.executing {
		return nil, nil, ErrReentrantExecute
	}
	c.executing = true
	defer func() { c.executing = false }()

	if err := validateClipType(clipType); err != nil {
		return nil, nil, err
	}
	if err := validateFillRule(fillRule); err != nil {
		return nil, nil, err
	}

	subjects, _ := filterValidPaths(c.subjects, 3)
	clips, _ := filterValidPaths(c.clips, 3)

	state := newVattiState(clipType, fillRule, c.attrib)
	state.preserveCollinear = c.preserveCollinear
	state.strictlySimple = c.strictlySimple
	state.addPaths(subjects, PathTypeSubject, false)
	state.addPaths(clips, PathTypeClip, false)

	rings := state.execute()
	closed := buildResult(rings, c.reverseSolution)

	var open Paths64
	if len(c.subjectsOpen) > 0 {
		open = clipOpenPaths(c.subjectsOpen, clips, fillRule, clipType)
	}
	return closed, open, nil
}

// ExecuteTree runs the sweep and returns the closed result as a PolyTree64.
//
// Possible errors: ErrInvalidClipType, ErrInvalidFillRule, ErrReentrantExecute
func (c *Clipper64) ExecuteTree(clipType ClipType, fillRule FillRule) (*PolyTree64, Paths64, error) {
	if c.executing {
		return nil, nil, ErrReentrantExecute
	}
	c.executing = true
	defer func() { c.executing = false }()

	if err := validateClipType(clipType); err != nil {
		return nil, nil, err
	}
	if err := validateFillRule(fillRule); err != nil {
		return nil, nil, err
	}

	subjects, _ := filterValidPaths(c.subjects, 3)
	clips, _ := filterValidPaths(c.clips, 3)

	state := newVattiState(clipType, fillRule, c.attrib)
	state.preserveCollinear = c.preserveCollinear
	state.strictlySimple = c.strictlySimple
	state.addPaths(subjects, PathTypeSubject, false)
	state.addPaths(clips, PathTypeClip, false)

	rings := state.execute()
	tree := buildResultTree(rings, c.reverseSolution)
	return tree, Paths64{}, nil
}
