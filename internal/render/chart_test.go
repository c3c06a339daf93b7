package render

import (
	"testing"

	"github-insights/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(counts ...int) []domain.ContributionDay {
	out := make([]domain.ContributionDay, len(counts))
	for i, c := range counts {
		out[i] = domain.ContributionDay{Count: c}
	}
	return out
}

func TestChartPoints(t *testing.T) {
	data := days(0, 5, 10)
	points := chartPoints(data, 0, 0, 100, 50, 10)
	require.Len(t, points, 3)

	assert.Equal(t, chartPoint{0, 50}, points[0], "zero count sits on the floor")
	assert.Equal(t, chartPoint{50, 25}, points[1])
	assert.Equal(t, chartPoint{100, 0}, points[2], "max count touches the top")
}

func TestChartPoints_SinglePoint(t *testing.T) {
	points := chartPoints(days(5), 10, 20, 100, 50, 10)
	require.Len(t, points, 1)
	assert.Equal(t, 10.0, points[0].x)
}

func TestPolylineAndAreaPaths(t *testing.T) {
	points := []chartPoint{{0, 50}, {50, 25}, {100, 0}}

	line := polylinePath(points)
	assert.Equal(t, "M 0,50 L 50,25 L 100,0", line)

	area := areaPath(points, 50)
	assert.Equal(t, "M 0,50 L 50,25 L 100,0 L 100,50 L 0,50 Z", area)

	assert.Empty(t, polylinePath(nil))
	assert.Empty(t, areaPath(nil, 50))
}

func TestMaxCount(t *testing.T) {
	assert.Equal(t, 10, maxCount(days(1, 2, 3), 10), "floor dominates quiet windows")
	assert.Equal(t, 25, maxCount(days(1, 25, 3), 10))
	assert.Equal(t, 10, maxCount(nil, 10))
}

func TestYAxisTicks(t *testing.T) {
	ticks := yAxisTicks(100)
	assert.Equal(t, []int{100, 83, 67, 50, 33, 17, 0}, ticks)

	for i := 1; i < len(ticks); i++ {
		assert.GreaterOrEqual(t, ticks[i-1], ticks[i], "ticks descend top to bottom")
	}
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		wantStart  int
		wantEnd    int
	}{
		{"single run", []int{0, 1, 1, 1, 0}, 1, 3},
		{"picks the longer of two runs", []int{1, 1, 0, 2, 2, 2}, 3, 5},
		{"first of equal runs wins", []int{1, 1, 0, 2, 2}, 0, 1},
		{"all zero", []int{0, 0, 0}, -1, -1},
		{"empty", nil, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := longestRun(days(tt.counts...))
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
