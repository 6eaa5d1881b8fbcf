package model

import "time"

// Intersection is a winning crossing point with both of its metrics.
type Intersection struct {
	Point    Point `yaml:"point"`
	Distance int   `yaml:"distance"`
	Cost     int   `yaml:"cost"`
}

// Result holds the two answers. A nil field means no crossing qualified.
type Result struct {
	Closest  *Intersection `yaml:"closest,omitempty"`
	Cheapest *Intersection `yaml:"cheapest,omitempty"`
}

// Found reports whether both answers are present.
func (r Result) Found() bool {
	return r.Closest != nil && r.Cheapest != nil
}

// Wire is one named input line, the segments built from it and where it finishes.
type Wire struct {
	Name     string
	Raw      string
	Steps    []PathStep
	Segments []Segment
	End      Point
}

// Report is the persisted summary of a solve.
type Report struct {
	Version    int       `yaml:"version"`
	Generated  time.Time `yaml:"generated"`
	Wires      []string  `yaml:"wires"`
	Segments   []int     `yaml:"segments"`
	Candidates int       `yaml:"candidates"`
	Result     Result    `yaml:"result"`
}
