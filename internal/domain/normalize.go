package domain

import m "crosswire.dev/pkg/crosswire/internal/model"

// NormalizeSegment orders the endpoints of s so End1 <= End2, marking swapped segments
// as mirrored. Already ordered segments are returned unchanged.
func NormalizeSegment(s m.Segment) m.Segment {
	if s.End2.Less(s.End1) {
		return m.Segment{End1: s.End2, End2: s.End1, Steps: s.Steps, Mirrored: true}
	}

	return s
}

// Normalize returns a normalized copy of segments.
func Normalize(segments []m.Segment) []m.Segment {
	normalized := make([]m.Segment, 0, len(segments))
	for _, s := range segments {
		normalized = append(normalized, NormalizeSegment(s))
	}

	return normalized
}

// Split partitions segments into horizontals and verticals, keeping their order.
func Split(segments []m.Segment) (horizontals, verticals []m.Segment) {
	for _, s := range segments {
		if s.Vertical() {
			verticals = append(verticals, s)
		} else {
			horizontals = append(horizontals, s)
		}
	}

	return horizontals, verticals
}
