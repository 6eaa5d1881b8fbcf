package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

func TestSolver_Solve(t *testing.T) {
	tests := []struct {
		name         string
		first        string
		second       string
		wantDistance int
		wantCost     int
	}{
		{"small example", "R8,U5,L5,D3", "U7,R6,D4,L4", 6, 30},
		{"first example", "R75,D30,R83,U83,L12,D49,R71,U7,L72", "U62,R66,U55,R34,D71,R55,D58,R83", 159, 610},
		{"second example", "R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51", "U98,R91,D20,R16,D67,R40,U7,R15,U6,R7", 135, 410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solution, err := NewSolver().Solve(context.Background(), tt.first, tt.second)
			require.NoError(t, err)
			require.NoError(t, solution.Err())

			assert.Equal(t, tt.wantDistance, solution.Result.Closest.Distance)
			assert.Equal(t, tt.wantCost, solution.Result.Cheapest.Cost)
			assert.NotEqual(t, m.Origin, solution.Result.Closest.Point)
			assert.NotEqual(t, m.Origin, solution.Result.Cheapest.Point)
			require.Len(t, solution.Wires, 2)
			assert.Equal(t, tt.first, solution.Wires[0].Raw)
			assert.Equal(t, tt.second, solution.Wires[1].Raw)
		})
	}
}

func TestSolver_Solve_NoIntersection(t *testing.T) {
	solution, err := NewSolver().Solve(context.Background(), "R5", "L5")
	require.NoError(t, err)

	assert.NotEmpty(t, solution.Candidates)
	assert.False(t, solution.Result.Found())
	assert.ErrorIs(t, solution.Err(), ErrNoIntersection)
}

func TestSolver_Solve_ParseErrorNamesWire(t *testing.T) {
	_, err := NewSolver().Solve(context.Background(), "R8,U5", "U7,X6")
	require.ErrorIs(t, err, ErrInvalidDirection)
	assert.Contains(t, err.Error(), "second")
	assert.Contains(t, err.Error(), "X6")
}

func TestSolver_Solve_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver().Solve(ctx, "R8", "U7")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolver_Wire(t *testing.T) {
	wire, err := NewSolver().Wire(context.Background(), "first", "R8,U5,L5,D3")
	require.NoError(t, err)

	assert.Equal(t, "first", wire.Name)
	assert.Len(t, wire.Steps, 4)
	require.Len(t, wire.Segments, 4)
	assert.True(t, wire.Segments[2].Mirrored)
	assert.True(t, wire.Segments[3].Mirrored)
	assert.Equal(t, m.Point{X: 3, Y: 2}, wire.End)
}
