package domain

import (
	"fmt"
	"log/slog"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// BuildSegments walks steps from the origin and returns one segment per step, in
// traversal order. Each segment carries the wire length walked before it.
//
// Directions are guaranteed valid by ParseSteps; steps built by hand are checked again
// and rejected with ErrInvalidDirection.
func BuildSegments(steps []m.PathStep) ([]m.Segment, error) {
	segments := make([]m.Segment, 0, len(steps))
	current := m.Origin
	walked := 0

	for i, step := range steps {
		dx, dy, ok := step.Direction.Offset()
		if !ok {
			return nil, fmt.Errorf("step %d: %w %q", i+1, ErrInvalidDirection, step.Direction)
		}

		next := current.Add(dx, dy, step.Distance)
		segment := m.Segment{End1: current, End2: next, Steps: walked}

		slog.Debug("built segment", "step", step.String(), "segment", segment.String())

		segments = append(segments, segment)
		walked += step.Distance
		current = next
	}

	return segments, nil
}

// EndPoint returns where the wire made of segments finishes. Segments may be
// normalized. A wire with no segments never leaves the origin.
func EndPoint(segments []m.Segment) m.Point {
	if len(segments) == 0 {
		return m.Origin
	}

	return segments[len(segments)-1].End()
}
