// Package domain implements the wire-crossing pipeline: parsing, path building,
// normalization, intersection and reduction.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// StepDelimiter separates tokens on a wire line.
const StepDelimiter = ","

// ParseSteps converts a line such as "R75,D30,U83" into path steps.
func ParseSteps(line string) ([]m.PathStep, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyWire
	}

	tokens := strings.Split(line, StepDelimiter)
	steps := make([]m.PathStep, 0, len(tokens))

	for i, token := range tokens {
		step, err := parseStep(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}

		steps = append(steps, step)
	}

	return steps, nil
}

func parseStep(token string) (m.PathStep, error) {
	if token == "" {
		return m.PathStep{}, ErrEmptyToken
	}

	direction := m.Direction(token[0])
	if !direction.Valid() {
		return m.PathStep{}, fmt.Errorf("%w %q in %q", ErrInvalidDirection, token[:1], token)
	}

	// Atoi accepts a sign; the distance must be plain digits.
	if len(token) < 2 || token[1] < '0' || token[1] > '9' {
		return m.PathStep{}, fmt.Errorf("%w in %q", ErrInvalidDistance, token)
	}

	distance, err := strconv.Atoi(token[1:])
	if err != nil {
		return m.PathStep{}, fmt.Errorf("%w in %q", ErrInvalidDistance, token)
	}

	return m.PathStep{Direction: direction, Distance: distance}, nil
}
