package domain

import m "crosswire.dev/pkg/crosswire/internal/model"

// CostForSegment returns the wire length walked from the start of the wire to p, where
// p lies on s. Points off s are extrapolated along its axis without any check.
func CostForSegment(p m.Point, s m.Segment) int {
	if s.Horizontal() {
		if s.Mirrored {
			return s.Steps + s.End2.X - p.X
		}

		return s.Steps + p.X - s.End1.X
	}

	if s.Mirrored {
		return s.Steps + s.End2.Y - p.Y
	}

	return s.Steps + p.Y - s.End1.Y
}

// Cost is the combined length both wires walk to reach p.
func Cost(p m.Point, a, b m.Segment) int {
	return CostForSegment(p, a) + CostForSegment(p, b)
}
