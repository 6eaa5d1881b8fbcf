// Package model defines the data structures shared by the wire-crossing pipeline.
package model

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Origin is the shared starting point of both wires.
var Origin = Point{}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders points by x, then y.
func (p Point) Less(other Point) bool {
	return p.X < other.X || (p.X == other.X && p.Y < other.Y)
}

// Manhattan returns the taxicab distance from the origin.
func (p Point) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

// Add returns p moved by (dx*n, dy*n).
func (p Point) Add(dx, dy, n int) Point {
	return Point{X: p.X + dx*n, Y: p.Y + dy*n}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// PointWithCost is a point together with the combined length both wires walk to reach it.
type PointWithCost struct {
	Point Point
	Cost  int
}

func (p PointWithCost) String() string {
	return fmt.Sprintf("%s#%d", p.Point, p.Cost)
}
