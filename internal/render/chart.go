package render

import (
	"math"
	"strings"

	"github-insights/internal/domain"
)

// chartPoint is one plotted coordinate of the activity polyline.
type chartPoint struct {
	x, y float64
}

// chartPoints spreads the window over the plot area, scaling counts
// against maxValue. The line is a plain point-to-point polyline.
func chartPoints(data []domain.ContributionDay, x, y, w, h float64, maxValue int) []chartPoint {
	if len(data) == 0 {
		return nil
	}
	span := float64(len(data) - 1)
	if span == 0 {
		span = 1
	}

	points := make([]chartPoint, 0, len(data))
	for i, day := range data {
		px := x + (float64(i)/span)*w
		py := y + h - (float64(day.Count)/float64(maxValue))*h
		points = append(points, chartPoint{px, py})
	}
	return points
}

// polylinePath builds the "M x,y L x,y ..." path for the points.
func polylinePath(points []chartPoint) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M " + fmtFloat(points[0].x) + "," + fmtFloat(points[0].y))
	for _, p := range points[1:] {
		b.WriteString(" L " + fmtFloat(p.x) + "," + fmtFloat(p.y))
	}
	return b.String()
}

// areaPath closes the polyline down to the chart floor for the gradient
// fill under the line.
func areaPath(points []chartPoint, floorY float64) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(polylinePath(points))
	b.WriteString(" L " + fmtFloat(points[len(points)-1].x) + "," + fmtFloat(floorY))
	b.WriteString(" L " + fmtFloat(points[0].x) + "," + fmtFloat(floorY))
	b.WriteString(" Z")
	return b.String()
}

// maxCount returns the window maximum, floored so a quiet month still
// gets a readable axis.
func maxCount(data []domain.ContributionDay, floor int) int {
	max := floor
	for _, d := range data {
		if d.Count > max {
			max = d.Count
		}
	}
	return max
}

// yAxisTicks derives the tick labels shown top-to-bottom beside the
// chart, at fixed fractions of the maximum.
func yAxisTicks(maxValue int) []int {
	fractions := []float64{1, 0.83, 0.67, 0.5, 0.33, 0.17, 0}
	ticks := make([]int, len(fractions))
	for i, f := range fractions {
		ticks[i] = int(math.Round(float64(maxValue) * f))
	}
	return ticks
}

// longestRun finds the start and end indices of the longest run of
// consecutive non-zero days. Returns (-1, -1) for an all-zero window.
func longestRun(window []domain.ContributionDay) (start, end int) {
	start, end = -1, -1
	bestLen := 0

	runStart := -1
	for i, day := range window {
		if day.Count > 0 {
			if runStart < 0 {
				runStart = i
			}
			if length := i - runStart + 1; length > bestLen {
				bestLen = length
				start, end = runStart, i
			}
		} else {
			runStart = -1
		}
	}
	return start, end
}
