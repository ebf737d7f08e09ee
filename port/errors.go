package clipper

import (
	"errors"
	"fmt"
)

// Error taxonomy (spec 7). Three structured categories cover everything
// the engine itself can detect; ErrReentrantExecute additionally guards
// Execute's non-reentrancy (spec 5).

// RangeError reports a coordinate or derived value outside the range this
// engine can process without overflow (spec 6's loRange/hiRange tiers).
type RangeError struct{ Msg string }

func (e *RangeError) Error() string { return fmt.Sprintf("clipper: range error: %s", e.Msg) }

// InputError reports a structurally invalid argument: wrong enum value,
// empty path where one is required, an open path passed as a clip.
type InputError struct{ Msg string }

func (e *InputError) Error() string { return fmt.Sprintf("clipper: input error: %s", e.Msg) }

// InternalInvariantError reports a broken engine invariant (spec 3): AEL
// order, scanbeam monotonicity, or OutRec ring integrity. Seeing one of
// these means the engine has a bug, not that the caller gave bad input.
type InternalInvariantError struct{ Msg string }

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("clipper: internal invariant violated: %s", e.Msg)
}

var (
	// ErrNotImplemented indicates a feature this engine deliberately omits (spec Non-goals).
	ErrNotImplemented = errors.New("clipper: not implemented")
	// ErrInvalidInput indicates invalid input parameters.
	ErrInvalidInput = errors.New("clipper: invalid input parameters")

	// ErrInvalidFillRule indicates a FillRule value outside the defined enum.
	ErrInvalidFillRule = errors.New("clipper: invalid fill rule")
	// ErrInvalidClipType indicates a ClipType value outside the defined enum.
	ErrInvalidClipType = errors.New("clipper: invalid clip type")
	// ErrInvalidOptions indicates a combination of options that cannot be satisfied together.
	ErrInvalidOptions = errors.New("clipper: invalid option combination")
	// ErrInvalidJoinType indicates a JoinType value outside the defined enum.
	ErrInvalidJoinType = errors.New("clipper: invalid join type")
	// ErrInvalidEndType indicates an EndType value outside the defined enum.
	ErrInvalidEndType = errors.New("clipper: invalid end type")
	// ErrInt32Overflow indicates a coordinate outside the int32 range. The check is
	// against the full int32 range only; no narrower bound is enforced.
	ErrInt32Overflow = errors.New("clipper: coordinate exceeds 32-bit safe range")
	// ErrResultOverflow indicates that a 32-bit wrapper's result holds a coordinate
	// that does not fit in int32.
	ErrResultOverflow = errors.New("clipper: result coordinate exceeds safe range")
	// ErrOpenPathAsClip indicates an open path was added as a clip path, which this
	// engine refuses rather than silently dropping (spec 9, Open Question 3).
	ErrOpenPathAsClip = errors.New("clipper: open paths cannot be used as clip paths")
	// ErrReentrantExecute indicates Execute was re-entered on the same instance.
	ErrReentrantExecute = errors.New("clipper: Execute is not reentrant")
)

func rangeErr(msg string) error { return &RangeError{Msg: msg} }
func inputErr(msg string) error { return &InputError{Msg: msg} }
func invariantErr(msg string) error {
	return &InternalInvariantError{Msg: msg}
}
