package controller

import (
	"strconv"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

const (
	noIntersectionLabel = "no intersection"
	missingValue        = "-"
)

var (
	resultHeader    = []string{"Task", "Metric", "Value", "Point"}
	segmentHeader   = []string{"#", "Step", "From", "To", "Segment", "Length", "Walked", "Mirrored"}
	candidateHeader = []string{"#", "Point", "Distance", "Cost"}
)

func resultRows(result m.Result) [][]string {
	return [][]string{
		intersectionRow("TASK 1", "distance", result.Closest, func(i *m.Intersection) int { return i.Distance }),
		intersectionRow("TASK 2", "cost", result.Cheapest, func(i *m.Intersection) int { return i.Cost }),
	}
}

func intersectionRow(task, metric string, i *m.Intersection, value func(*m.Intersection) int) []string {
	if i == nil {
		return []string{task, metric, missingValue, noIntersectionLabel}
	}

	return []string{task, metric, strconv.Itoa(value(i)), i.Point.String()}
}

func segmentRows(wire m.Wire) [][]string {
	rows := make([][]string, 0, len(wire.Segments))

	for i, s := range wire.Segments {
		step := missingValue
		if i < len(wire.Steps) {
			step = wire.Steps[i].String()
		}

		mirrored := ""
		if s.Mirrored {
			mirrored = "yes"
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			step,
			s.Start().String(),
			s.End().String(),
			s.String(),
			strconv.Itoa(s.Length()),
			strconv.Itoa(s.Steps),
			mirrored,
		})
	}

	return rows
}

func candidateRows(candidates []m.PointWithCost) [][]string {
	rows := make([][]string, 0, len(candidates))

	for i, c := range candidates {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.Point.String(),
			strconv.Itoa(c.Point.Manhattan()),
			strconv.Itoa(c.Cost),
		})
	}

	return rows
}
