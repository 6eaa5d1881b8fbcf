package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

func TestBuildSegments(t *testing.T) {
	steps, err := ParseSteps("R8,U5,L5,D3")
	require.NoError(t, err)

	segments, err := BuildSegments(steps)
	require.NoError(t, err)

	want := []m.Segment{
		{End1: m.Point{X: 0, Y: 0}, End2: m.Point{X: 8, Y: 0}, Steps: 0},
		{End1: m.Point{X: 8, Y: 0}, End2: m.Point{X: 8, Y: 5}, Steps: 8},
		{End1: m.Point{X: 8, Y: 5}, End2: m.Point{X: 3, Y: 5}, Steps: 13},
		{End1: m.Point{X: 3, Y: 5}, End2: m.Point{X: 3, Y: 2}, Steps: 18},
	}
	assert.Equal(t, want, segments)
}

func TestBuildSegments_EndsAtVectorSum(t *testing.T) {
	tests := []string{
		"R8,U5,L5,D3",
		"U7,R6,D4,L4",
		"R75,D30,R83,U83,L12,D49,R71,U7,L72",
		"L1,L1,D9,R40,U2,U2",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			steps, err := ParseSteps(line)
			require.NoError(t, err)

			var want m.Point
			for _, step := range steps {
				switch step.Direction {
				case m.Up:
					want.Y += step.Distance
				case m.Down:
					want.Y -= step.Distance
				case m.Left:
					want.X -= step.Distance
				case m.Right:
					want.X += step.Distance
				}
			}

			segments, err := BuildSegments(steps)
			require.NoError(t, err)
			require.Len(t, segments, len(steps))

			assert.Equal(t, m.Origin, segments[0].End1)
			assert.Equal(t, want, segments[len(segments)-1].End2)
			assert.Equal(t, want, EndPoint(segments))
			assert.Equal(t, want, EndPoint(Normalize(segments)))

			for i := 1; i < len(segments); i++ {
				assert.Equal(t, segments[i-1].End2, segments[i].End1, "segment %d is not connected", i)
				assert.Equal(t, segments[i-1].Steps+steps[i-1].Distance, segments[i].Steps)
			}
		})
	}
}

func TestBuildSegments_Empty(t *testing.T) {
	segments, err := BuildSegments(nil)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestBuildSegments_RejectsUnknownDirection(t *testing.T) {
	steps := []m.PathStep{
		{Direction: m.Up, Distance: 2},
		{Direction: m.Direction('Q'), Distance: 3},
	}

	segments, err := BuildSegments(steps)
	require.ErrorIs(t, err, ErrInvalidDirection)
	assert.Contains(t, err.Error(), "step 2")
	assert.Nil(t, segments)
}

func TestEndPoint_NoSegmentsStaysAtOrigin(t *testing.T) {
	assert.Equal(t, m.Origin, EndPoint(nil))
}
