package model

import "fmt"

// Direction is one of the four axis-aligned headings a step can take.
type Direction rune

const (
	// Up moves towards +y.
	Up Direction = 'U'
	// Down moves towards -y.
	Down Direction = 'D'
	// Left moves towards -x.
	Left Direction = 'L'
	// Right moves towards +x.
	Right Direction = 'R'
)

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}

	return false
}

// Offset returns the unit displacement of d. Invalid directions return ok=false.
func (d Direction) Offset() (dx, dy int, ok bool) {
	switch d {
	case Up:
		return 0, 1, true
	case Down:
		return 0, -1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	}

	return 0, 0, false
}

func (d Direction) String() string {
	return string(d)
}

// PathStep is a single parsed instruction such as R75.
type PathStep struct {
	Direction Direction
	Distance  int
}

func (s PathStep) String() string {
	return fmt.Sprintf("%c%d", s.Direction, s.Distance)
}
