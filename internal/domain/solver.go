package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// Solution is everything computed for one pair of wires.
type Solution struct {
	Wires      []m.Wire
	Candidates []m.PointWithCost
	Result     m.Result
}

// Err returns ErrNoIntersection when either answer is missing.
func (s Solution) Err() error {
	if !s.Result.Found() {
		return ErrNoIntersection
	}

	return nil
}

// Solver runs the full pipeline for two wire lines.
type Solver interface {
	Solve(ctx context.Context, first, second string) (Solution, error)
	Wire(ctx context.Context, name, line string) (m.Wire, error)
}

type solver struct{}

// NewSolver returns the default Solver.
func NewSolver() Solver {
	return &solver{}
}

// Wire parses line and builds its normalized segments.
func (s *solver) Wire(ctx context.Context, name, line string) (m.Wire, error) {
	if err := ctx.Err(); err != nil {
		return m.Wire{}, err
	}

	steps, err := ParseSteps(line)
	if err != nil {
		slog.Error("Failed to parse wire", "wire", name, "error", err)
		return m.Wire{}, fmt.Errorf("parse %s wire: %w", name, err)
	}

	segments, err := BuildSegments(steps)
	if err != nil {
		slog.Error("Failed to build wire", "wire", name, "error", err)
		return m.Wire{}, fmt.Errorf("build %s wire: %w", name, err)
	}

	return m.Wire{
		Name:     name,
		Raw:      line,
		Steps:    steps,
		Segments: Normalize(segments),
		End:      EndPoint(segments),
	}, nil
}

func (s *solver) Solve(ctx context.Context, first, second string) (Solution, error) {
	firstWire, err := s.Wire(ctx, "first", first)
	if err != nil {
		return Solution{}, err
	}

	secondWire, err := s.Wire(ctx, "second", second)
	if err != nil {
		return Solution{}, err
	}

	slog.Debug("wires built", "first", len(firstWire.Segments), "second", len(secondWire.Segments))

	candidates := AllIntersections(firstWire.Segments, secondWire.Segments)
	result := Reduce(candidates)

	slog.Info("solved", "candidates", len(candidates), "found", result.Found())

	return Solution{
		Wires:      []m.Wire{firstWire, secondWire},
		Candidates: candidates,
		Result:     result,
	}, nil
}
