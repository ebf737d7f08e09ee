package clipper

import (
	"math"
)

// Bridges between the 32-bit coordinate types (for callers on tighter
// memory budgets or graphics APIs that speak int32) and the 64-bit types
// the sweep engine itself runs on (spec 3). Note these carry X/Y only:
// Point32 has a Z field, but no conversion here copies Z across.

const (
	MaxInt32 = int64(math.MaxInt32) //  2147483647
	MinInt32 = int64(math.MinInt32) // -2147483648
)

// -- narrowing 64-bit values down to 32-bit, with overflow detection --

// ValidateInt32Range reports ErrInt32Overflow if val doesn't fit in int32.
func ValidateInt32Range(val int64) error {
	if val > MaxInt32 || val < MinInt32 {
		return ErrInt32Overflow
	}
	return nil
}

// Point64ToPoint32 narrows pt to 32-bit coordinates, dropping Z.
func Point64ToPoint32(pt Point64) (Point32, error) {
	if err := ValidateInt32Range(pt.X); err != nil {
		return Point32{}, err
	}
	if err := ValidateInt32Range(pt.Y); err != nil {
		return Point32{}, err
	}
	return Point32{
		X: int32(pt.X),
		Y: int32(pt.Y),
	}, nil
}

// Path64ToPath32 narrows every vertex in path, failing on the first one
// that doesn't fit in int32 (a PolyTree bridge leans on this fail-fast
// behavior: copyPolyPath64To32 stops the walk at the first bad vertex).
func Path64ToPath32(path Path64) (Path32, error) {
	if path == nil {
		return nil, nil
	}

	result := make(Path32, len(path))
	for i, pt := range path {
		converted, err := Point64ToPoint32(pt)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

// Paths64ToPaths32 applies Path64ToPath32 across every path in paths.
func Paths64ToPaths32(paths Paths64) (Paths32, error) {
	if paths == nil {
		return nil, nil
	}

	result := make(Paths32, len(paths))
	for i, path := range paths {
		converted, err := Path64ToPath32(path)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

// Rect64ToRect32 narrows rect's four corners through the same range check
// Point64ToPoint32 applies to a vertex, treated as two corner points.
func Rect64ToRect32(rect Rect64) (Rect32, error) {
	topLeft, err := Point64ToPoint32(Point64{X: rect.Left, Y: rect.Top})
	if err != nil {
		return Rect32{}, err
	}
	bottomRight, err := Point64ToPoint32(Point64{X: rect.Right, Y: rect.Bottom})
	if err != nil {
		return Rect32{}, err
	}
	return Rect32{
		Left:   topLeft.X,
		Top:    topLeft.Y,
		Right:  bottomRight.X,
		Bottom: bottomRight.Y,
	}, nil
}

// -- widening 32-bit values up to 64-bit; always exact, never errors --

// Point32ToPoint64 promotes pt to 64-bit coordinates with Z left at zero.
func Point32ToPoint64(pt Point32) Point64 {
	return Point64{
		X: int64(pt.X),
		Y: int64(pt.Y),
	}
}

// Path32ToPath64 widens every vertex in path; int32 always fits in int64.
func Path32ToPath64(path Path32) Path64 {
	if path == nil {
		return nil
	}

	result := make(Path64, len(path))
	for i, pt := range path {
		result[i] = Point32ToPoint64(pt)
	}
	return result
}

// Paths32ToPaths64 applies Path32ToPath64 across every path in paths.
func Paths32ToPaths64(paths Paths32) Paths64 {
	if paths == nil {
		return nil
	}

	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = Path32ToPath64(path)
	}
	return result
}

// Rect32ToRect64 widens rect's four corners; always exact, never errors.
func Rect32ToRect64(rect Rect32) Rect64 {
	return Rect64{
		Left:   int64(rect.Left),
		Top:    int64(rect.Top),
		Right:  int64(rect.Right),
		Bottom: int64(rect.Bottom),
	}
}
