package sheet

import (
	"fmt"
	"image"
	"strings"
)

// Direction is the axis along which frames are laid out in a sheet.
type Direction int

const (
	// Horizontal sheets hold their frames in a single row.
	Horizontal Direction = iota
	// Vertical sheets hold their frames in a single column.
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "horizontal" or "vertical" (or "h" and "v"),
// ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown direction %q; want horizontal or vertical", s)
}

// Set implements flag.Value.
func (d *Direction) Set(s string) error {
	v, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// split returns the extent of p along the direction frames are laid out in.
func (d Direction) split(p image.Point) int {
	if d == Vertical {
		return p.Y
	}
	return p.X
}

// cross returns the extent of p along the axis perpendicular to the split axis.
func (d Direction) cross(p image.Point) int {
	if d == Vertical {
		return p.X
	}
	return p.Y
}

// point builds a point from split axis and cross axis components.
func (d Direction) point(split, cross int) image.Point {
	if d == Vertical {
		return image.Pt(cross, split)
	}
	return image.Pt(split, cross)
}
