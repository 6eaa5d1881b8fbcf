package model

import "fmt"

// Segment is one straight, axis-aligned piece of a wire.
//
// Steps is the wire length walked before the segment starts. Mirrored records that
// End1 and End2 were swapped during normalization, so End2 is where traversal began.
type Segment struct {
	End1     Point
	End2     Point
	Steps    int
	Mirrored bool
}

// Vertical reports whether both endpoints share the same x. Zero-length segments are
// vertical.
func (s Segment) Vertical() bool {
	return s.End1.X == s.End2.X
}

// Horizontal is the complement of Vertical.
func (s Segment) Horizontal() bool {
	return !s.Vertical()
}

// Length is the number of unit steps the segment covers.
func (s Segment) Length() int {
	return abs(s.End2.X-s.End1.X) + abs(s.End2.Y-s.End1.Y)
}

// Start returns the endpoint the wire was walking from.
func (s Segment) Start() Point {
	if s.Mirrored {
		return s.End2
	}

	return s.End1
}

// End returns the endpoint the wire was walking to.
func (s Segment) End() Point {
	if s.Mirrored {
		return s.End1
	}

	return s.End2
}

func (s Segment) String() string {
	mirror := ""
	if s.Mirrored {
		mirror = "<>"
	}

	return fmt.Sprintf("(%s-%s#%d%s)", s.End1, s.End2, s.Steps, mirror)
}
