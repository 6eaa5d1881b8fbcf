package domain

import m "crosswire.dev/pkg/crosswire/internal/model"

// Between reports whether low <= i <= high.
func Between(i, low, high int) bool {
	return i >= low && i <= high
}

// Crossing returns the point where a horizontal and a vertical segment cross, if any.
// Both segments must be normalized.
func Crossing(horizontal, vertical m.Segment) (m.Point, bool) {
	if !Between(vertical.End1.X, horizontal.End1.X, horizontal.End2.X) {
		return m.Point{}, false
	}

	if !Between(horizontal.End1.Y, vertical.End1.Y, vertical.End2.Y) {
		return m.Point{}, false
	}

	return m.Point{X: vertical.End1.X, Y: horizontal.End1.Y}, true
}

// Overlap returns the two boundary points of the run shared by two collinear segments
// of the same orientation. Only the boundaries are sampled, never the points between.
func Overlap(a, b m.Segment) (m.Point, m.Point, bool) {
	if a.Vertical() {
		if a.End1.X != b.End1.X {
			return m.Point{}, m.Point{}, false
		}

		bottom := max(a.End1.Y, b.End1.Y)
		top := min(a.End2.Y, b.End2.Y)

		if bottom > top {
			return m.Point{}, m.Point{}, false
		}

		return m.Point{X: a.End1.X, Y: bottom}, m.Point{X: a.End1.X, Y: top}, true
	}

	if a.End1.Y != b.End1.Y {
		return m.Point{}, m.Point{}, false
	}

	leftmost := max(a.End1.X, b.End1.X)
	rightmost := min(a.End2.X, b.End2.X)

	if leftmost > rightmost {
		return m.Point{}, m.Point{}, false
	}

	return m.Point{X: leftmost, Y: a.End1.Y}, m.Point{X: rightmost, Y: a.End1.Y}, true
}

// Intersections lists every point where segment meets the other wire, given as its
// horizontal and vertical groups. All segments must be normalized.
func Intersections(segment m.Segment, horizontals, verticals []m.Segment) []m.PointWithCost {
	same, perpendicular := horizontals, verticals
	if segment.Vertical() {
		same, perpendicular = verticals, horizontals
	}

	var found []m.PointWithCost

	for _, other := range same {
		p1, p2, ok := Overlap(segment, other)
		if !ok {
			continue
		}

		found = append(found,
			m.PointWithCost{Point: p1, Cost: Cost(p1, segment, other)},
			m.PointWithCost{Point: p2, Cost: Cost(p2, segment, other)},
		)
	}

	for _, other := range perpendicular {
		h, v := segment, other
		if segment.Vertical() {
			h, v = other, segment
		}

		p, ok := Crossing(h, v)
		if !ok {
			continue
		}

		found = append(found, m.PointWithCost{Point: p, Cost: Cost(p, segment, other)})
	}

	return found
}

// AllIntersections tests every segment of first against the whole of second.
func AllIntersections(first, second []m.Segment) []m.PointWithCost {
	horizontals, verticals := Split(second)

	var candidates []m.PointWithCost
	for _, segment := range first {
		candidates = append(candidates, Intersections(segment, horizontals, verticals)...)
	}

	return candidates
}
