package domain

import "errors"

var (
	// ErrEmptyWire is returned when a wire line has no tokens at all.
	ErrEmptyWire = errors.New("wire has no steps")
	// ErrEmptyToken is returned for an empty token between two delimiters.
	ErrEmptyToken = errors.New("empty step token")
	// ErrInvalidDirection is returned when a token does not start with U, D, L or R.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidDistance is returned when a token's distance is not a non-negative integer.
	ErrInvalidDistance = errors.New("invalid distance")
	// ErrNoIntersection is returned when the wires never cross away from the origin.
	ErrNoIntersection = errors.New("wires do not intersect")
)
