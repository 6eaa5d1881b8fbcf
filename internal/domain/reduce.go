package domain

import m "crosswire.dev/pkg/crosswire/internal/model"

// Reduce picks the crossing closest to the origin and the cheapest crossing to reach.
// Candidates at distance 0 or cost 0 are the shared origin and never win. Ties keep the
// first candidate seen.
func Reduce(candidates []m.PointWithCost) m.Result {
	var result m.Result

	for _, c := range candidates {
		distance := c.Point.Manhattan()

		if distance > 0 && (result.Closest == nil || distance < result.Closest.Distance) {
			result.Closest = &m.Intersection{Point: c.Point, Distance: distance, Cost: c.Cost}
		}

		if c.Cost > 0 && (result.Cheapest == nil || c.Cost < result.Cheapest.Cost) {
			result.Cheapest = &m.Intersection{Point: c.Point, Distance: distance, Cost: c.Cost}
		}
	}

	return result
}
