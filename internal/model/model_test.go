package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point{X: -3, Y: 4}

	assert.Equal(t, "(-3,4)", p.String())
	assert.Equal(t, 7, p.Manhattan())
	assert.Equal(t, 0, Origin.Manhattan())
	assert.Equal(t, Point{X: -3, Y: 10}, p.Add(0, 1, 6))
}

func TestPoint_Less(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"smaller x", Point{X: 1, Y: 9}, Point{X: 2, Y: 0}, true},
		{"same x smaller y", Point{X: 2, Y: 1}, Point{X: 2, Y: 3}, true},
		{"equal", Point{X: 2, Y: 3}, Point{X: 2, Y: 3}, false},
		{"greater", Point{X: 5, Y: 0}, Point{X: 2, Y: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		direction Direction
		dx, dy    int
	}{
		{Up, 0, 1},
		{Down, 0, -1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			dx, dy, ok := tt.direction.Offset()
			assert.True(t, ok)
			assert.True(t, tt.direction.Valid())
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}

	_, _, ok := Direction('X').Offset()
	assert.False(t, ok)
	assert.False(t, Direction('u').Valid())
}

func TestSegment(t *testing.T) {
	s := Segment{End1: Point{X: 3, Y: 5}, End2: Point{X: 8, Y: 5}, Steps: 13, Mirrored: true}

	assert.True(t, s.Horizontal())
	assert.False(t, s.Vertical())
	assert.Equal(t, 5, s.Length())
	assert.Equal(t, Point{X: 8, Y: 5}, s.Start())
	assert.Equal(t, Point{X: 3, Y: 5}, s.End())
	assert.Equal(t, "((3,5)-(8,5)#13<>)", s.String())

	v := Segment{End1: Point{X: 8, Y: 0}, End2: Point{X: 8, Y: 5}, Steps: 8}
	assert.True(t, v.Vertical())
	assert.Equal(t, v.End1, v.Start())
	assert.Equal(t, "((8,0)-(8,5)#8)", v.String())
}

func TestStepAndCostStrings(t *testing.T) {
	assert.Equal(t, "R75", PathStep{Direction: Right, Distance: 75}.String())
	assert.Equal(t, "(6,5)#30", PointWithCost{Point: Point{X: 6, Y: 5}, Cost: 30}.String())
}

func TestResult_Found(t *testing.T) {
	assert.False(t, Result{}.Found())
	assert.False(t, Result{Closest: &Intersection{}}.Found())
	assert.True(t, Result{Closest: &Intersection{}, Cheapest: &Intersection{}}.Found())
}
