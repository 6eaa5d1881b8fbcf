package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

func TestCostForSegment(t *testing.T) {
	tests := []struct {
		name    string
		point   m.Point
		segment m.Segment
		want    int
	}{
		{
			"horizontal",
			m.Point{X: 6, Y: 0},
			m.Segment{End1: m.Point{X: 0, Y: 0}, End2: m.Point{X: 8, Y: 0}, Steps: 0},
			6,
		},
		{
			"horizontal mirrored",
			m.Point{X: 6, Y: 5},
			m.Segment{End1: m.Point{X: 3, Y: 5}, End2: m.Point{X: 8, Y: 5}, Steps: 13, Mirrored: true},
			15,
		},
		{
			"vertical",
			m.Point{X: 8, Y: 4},
			m.Segment{End1: m.Point{X: 8, Y: 0}, End2: m.Point{X: 8, Y: 5}, Steps: 8},
			12,
		},
		{
			"vertical mirrored",
			m.Point{X: 3, Y: 3},
			m.Segment{End1: m.Point{X: 3, Y: 2}, End2: m.Point{X: 3, Y: 5}, Steps: 18, Mirrored: true},
			20,
		},
		{
			"off segment extrapolates",
			m.Point{X: 12, Y: 0},
			m.Segment{End1: m.Point{X: 0, Y: 0}, End2: m.Point{X: 8, Y: 0}, Steps: 2},
			14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CostForSegment(tt.point, tt.segment))
		})
	}
}

func TestCostForSegment_IndependentOfMirroring(t *testing.T) {
	raw := buildWire(t, "R8,U5,L5,D3,L2,D4,R1")

	for _, s := range raw {
		dx, dy := sign(s.End2.X-s.End1.X), sign(s.End2.Y-s.End1.Y)
		normalized := NormalizeSegment(s)

		for d := 0; d <= s.Length(); d++ {
			p := s.End1.Add(dx, dy, d)
			assert.Equal(t, s.Steps+d, CostForSegment(p, normalized), "segment %s offset %d", s, d)
		}
	}
}

func TestCost(t *testing.T) {
	a := m.Segment{End1: m.Point{X: 3, Y: 5}, End2: m.Point{X: 8, Y: 5}, Steps: 13, Mirrored: true}
	b := m.Segment{End1: m.Point{X: 6, Y: 3}, End2: m.Point{X: 6, Y: 7}, Steps: 13, Mirrored: true}
	p := m.Point{X: 6, Y: 5}

	assert.Equal(t, 30, Cost(p, a, b))
	assert.Equal(t, Cost(p, a, b), Cost(p, b, a))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
