package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	clipper "github.com/vattikit/polybool/port"
)

// readPaths loads a Paths64 value from a JSON file. The format is simply
// the marshaled Paths64 shape ([[{"X":.,"Y":.,"Z":.}, ...], ...]); there is
// no dedicated geometry interchange format in play here, so this sticks to
// whatever encoding/json produces for the type directly.
func readPaths(path string) (clipper.Paths64, error) {
	if path == "" {
		return nil, nil
	}
	if err := fileExists(path); err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var paths clipper.Paths64
	if err := json.Unmarshal(buf, &paths); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return paths, nil
}

func writePaths(path string, paths clipper.Paths64) error {
	buf, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

func parseClipType(s string) (clipper.ClipType, error) {
	switch s {
	case "intersection":
		return clipper.Intersection, nil
	case "union":
		return clipper.Union, nil
	case "difference":
		return clipper.Difference, nil
	case "xor":
		return clipper.Xor, nil
	default:
		return 0, fmt.Errorf("unknown clipType %q", s)
	}
}

func parseFillRule(s string) (clipper.FillRule, error) {
	switch s {
	case "evenodd", "":
		return clipper.EvenOdd, nil
	case "nonzero":
		return clipper.NonZero, nil
	case "positive":
		return clipper.Positive, nil
	case "negative":
		return clipper.Negative, nil
	default:
		return 0, fmt.Errorf("unknown fillRule %q", s)
	}
}

func parseJoinType(s string) (clipper.JoinType, error) {
	switch s {
	case "square", "":
		return clipper.Square, nil
	case "round":
		return clipper.Round, nil
	case "miter":
		return clipper.Miter, nil
	default:
		return 0, fmt.Errorf("unknown joinType %q", s)
	}
}

func parseEndType(s string) (clipper.EndType, error) {
	switch s {
	case "closedpolygon", "":
		return clipper.ClosedPolygon, nil
	case "closedline":
		return clipper.ClosedLine, nil
	case "openbutt":
		return clipper.OpenButt, nil
	case "opensquare":
		return clipper.OpenSquare, nil
	case "openround":
		return clipper.OpenRound, nil
	default:
		return 0, fmt.Errorf("unknown endType %q", s)
	}
}
