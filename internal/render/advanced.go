package render

import (
	"fmt"
	"math"

	"github-insights/internal/domain"
)

const (
	advancedWidth  = 760
	advancedHeight = 800

	advLeftColX      = 30
	advRightColX     = 390
	advColWidth      = 340
	advSectionHeight = 200

	streakBoxHeight = 100
	streakRingR     = 22

	// Progress ring sweep saturates at a 30-day streak.
	streakRingFullDays = 30

	activityChartHeight = 200
	rangeDateFormat     = "Jan 2, 2006"
)

func buildAdvancedScene(stats *domain.Stats, cfg CardConfig, user *domain.User) *Scene {
	s := NewScene(advancedWidth, advancedHeight)
	p := ThemePalette(cfg.Theme)
	opts := cfg.DisplayOptions

	s.AddGradient(Gradient{
		ID: "borderGradient",
		X1: "0%", Y1: "0%", X2: "100%", Y2: "100%",
		Stops: []GradientStop{
			{Offset: "0%", Color: p.BorderGradient1, Opacity: 1},
			{Offset: "100%", Color: p.BorderGradient2, Opacity: 1},
		},
	})
	s.AddGradient(Gradient{
		ID: "areaGradient",
		X1: "0%", Y1: "0%", X2: "0%", Y2: "100%",
		Stops: []GradientStop{
			{Offset: "0%", Color: p.Highlight, Opacity: 0.3},
			{Offset: "100%", Color: p.Highlight, Opacity: 0.05},
		},
	})

	s.Add(Rect{W: advancedWidth, H: advancedHeight, Fill: p.Bg})
	s.Add(Rect{
		X: 20, Y: 20, W: advancedWidth - 40, H: advancedHeight - 40,
		Fill: p.Card, Rx: 16, Stroke: "url(#borderGradient)", StrokeWidth: 2,
	})

	y := advancedHeader(s, p, opts, cfg.Username, user)
	y = advancedInfoRows(s, p, opts, stats, user, y)

	advancedStatColumn(s, p, stats, y)
	if opts.ShowLanguageChart && len(stats.TopLanguages) > 0 {
		advancedLanguageColumn(s, p, stats.TopLanguages, y)
	}
	y += advSectionHeight + 20

	if opts.ShowStreak {
		advancedStreakRow(s, p, stats, y)
		y += streakBoxHeight + 20
	}

	if opts.ShowCharts {
		advancedActivityChart(s, p, cfg.Username, stats, y)
	}

	return s
}

func advancedHeader(s *Scene, p Palette, opts DisplayOptions, username string, user *domain.User) float64 {
	y := 50.0
	s.Add(Text{X: 40, Y: y, Size: 32, Content: username, Fill: p.Highlight, Bold: true})
	y += 30

	if user != nil && user.Name != "" && opts.ShowName {
		s.Add(Text{X: 40, Y: y, Size: 14, Content: user.Name, Fill: p.TextLight})
		y += 35
	} else {
		y += 25
	}
	return y
}

func advancedInfoRows(s *Scene, p Palette, opts DisplayOptions, stats *domain.Stats, user *domain.User, y float64) float64 {
	type infoRow struct {
		text string
		show bool
	}

	location := ""
	if user != nil {
		location = user.Location
	}

	rows := []infoRow{
		{fmt.Sprintf("🔥 %s contributions in the last year", FormatNumber(stats.Contributions)), opts.ShowContributions},
		{fmt.Sprintf("📚 %s public repositories", FormatNumber(stats.TotalRepos)), opts.ShowRepositories},
		{fmt.Sprintf("📅 Joined GitHub %s", stats.JoinedDate), opts.ShowJoinDate},
		{fmt.Sprintf("📍 %s", location), opts.ShowLocation && location != ""},
	}

	for _, row := range rows {
		if !row.show {
			continue
		}
		s.Add(Text{X: 40, Y: y, Size: 13, Content: row.text, Fill: p.Text})
		y += 25
	}
	return y + 15
}

func advancedStatColumn(s *Scene, p Palette, stats *domain.Stats, y float64) {
	s.Add(Rect{X: advLeftColX, Y: y, W: advColWidth, H: advSectionHeight, Fill: p.CardLight, Rx: 10})
	s.Add(Text{X: advLeftColX + 15, Y: y + 25, Size: 14, Content: "⚡ GitHub Stats", Fill: p.Highlight, Bold: true})

	type statRow struct {
		label string
		value int
	}
	rows := []statRow{
		{"⭐ Total Stars Earned", stats.TotalStars},
		{"🔀 Commits (Last Year)", stats.Contributions},
		{"🔀 Pull Requests (Last Year)", stats.PullRequests},
		{"⭕ Issues (Last Year)", stats.Issues},
		{"🤝 Contributed To", stats.ContributedTo},
	}

	rowY := y + 50
	for _, row := range rows {
		s.Add(Text{X: advLeftColX + 15, Y: rowY, Size: 11, Content: row.label, Fill: p.TextLight})
		s.Add(Text{X: advLeftColX + advColWidth - 15, Y: rowY, Size: 11,
			Content: FormatNumber(row.value), Fill: p.Text, Bold: true, Anchor: "end"})
		rowY += 28
	}

	ratingX := float64(advLeftColX + advColWidth - 50)
	ratingY := y + advSectionHeight - 50
	s.Add(Circle{CX: ratingX, CY: ratingY, R: 28, Fill: p.Accent, Stroke: p.Highlight, StrokeWidth: 3})
	s.Add(Text{X: ratingX, Y: ratingY + 8, Size: 24, Content: ratingGrade(stats), Fill: p.Highlight, Bold: true, Anchor: "middle"})
	s.Add(Text{X: ratingX, Y: ratingY + 38, Size: 9, Content: "Rating", Fill: p.TextLight, Anchor: "middle"})
}

// ratingGrade buckets overall activity into a letter for the badge.
func ratingGrade(stats *domain.Stats) string {
	score := stats.TotalStars + stats.Contributions
	switch {
	case score >= 5000:
		return "S"
	case score >= 1000:
		return "A"
	case score >= 200:
		return "B"
	default:
		return "C"
	}
}

func advancedLanguageColumn(s *Scene, p Palette, langs []domain.LanguageCount, y float64) {
	s.Add(Rect{X: advRightColX, Y: y, W: advColWidth, H: advSectionHeight, Fill: p.CardLight, Rx: 10})
	s.Add(Text{X: advRightColX + 15, Y: y + 25, Size: 14, Content: "📊 Most Used Languages", Fill: p.Highlight, Bold: true})

	total := 0
	for _, l := range langs {
		total += l.Count
	}
	if total == 0 {
		return
	}

	// Proportional stacked bar.
	barX := float64(advRightColX + 15)
	barWidth := float64(advColWidth - 30)
	for _, l := range langs {
		segment := barWidth * float64(l.Count) / float64(total)
		s.Add(Rect{X: barX, Y: y + 35, W: segment, H: 8, Fill: p.LanguageColor(l.Name), Rx: 2})
		barX += segment
	}

	// Ranked legend with share of the top-5 total.
	rowY := y + 60
	for _, l := range langs {
		pct := float64(l.Count) / float64(total) * 100
		s.Add(Circle{CX: advRightColX + 20, CY: rowY - 4, R: 4, Fill: p.LanguageColor(l.Name)})
		s.Add(Text{X: advRightColX + 30, Y: rowY, Size: 11, Content: l.Name, Fill: p.Text})
		s.Add(Text{X: advRightColX + advColWidth - 15, Y: rowY, Size: 11,
			Content: fmt.Sprintf("%.1f%%", pct), Fill: p.Text, Bold: true, Anchor: "end"})
		rowY += 22
	}
}

func advancedStreakRow(s *Scene, p Palette, stats *domain.Stats, y float64) {
	boxWidth := float64(advancedWidth-80) / 3
	const spacing = 10

	// Total contributions box.
	box1X := float64(advLeftColX)
	s.Add(Rect{X: box1X, Y: y, W: boxWidth - spacing, H: streakBoxHeight, Fill: p.CardLight, Rx: 10})
	s.Add(Text{X: box1X + 15, Y: y + 35, Size: 28, Content: "✨", Fill: p.Highlight, Bold: true})
	s.Add(Text{X: box1X + 50, Y: y + 35, Size: 28, Content: FormatNumber(stats.Contributions), Fill: p.Highlight, Bold: true})
	s.Add(Text{X: box1X + 15, Y: y + 58, Size: 12, Content: "Total Contributions", Fill: p.Text})
	s.Add(Text{X: box1X + 15, Y: y + 75, Size: 9, Content: contributionsRange(stats), Fill: p.TextLight})

	// Current streak box with progress ring.
	box2X := box1X + boxWidth
	s.Add(Rect{X: box2X, Y: y, W: boxWidth - spacing, H: streakBoxHeight, Fill: p.CardLight, Rx: 10})

	ringX := box2X + boxWidth/2 - 5
	ringY := y + 35
	circumference := 2 * math.Pi * streakRingR
	progress := math.Min(float64(stats.CurrentStreak)/streakRingFullDays, 1)
	rotate := fmt.Sprintf("rotate(-90 %s %s)", fmtFloat(ringX), fmtFloat(ringY))

	s.Add(Circle{CX: ringX, CY: ringY, R: streakRingR, Stroke: p.Accent, StrokeWidth: 3})
	s.Add(Circle{
		CX: ringX, CY: ringY, R: streakRingR,
		Stroke: p.Warning, StrokeWidth: 3,
		DashArray: circumference, DashOffset: circumference * (1 - progress),
		LineCap: "round", Transform: rotate,
	})
	s.Add(Text{X: ringX, Y: ringY + 7, Size: 20, Content: "🔥", Fill: p.Warning, Bold: true, Anchor: "middle"})
	s.Add(Text{X: ringX + 35, Y: ringY + 5, Size: 24, Content: FormatNumber(stats.CurrentStreak), Fill: p.Warning, Bold: true})
	s.Add(Text{X: box2X + 15, Y: y + 75, Size: 12, Content: "Current Streak", Fill: p.Text})
	s.Add(Text{X: box2X + 15, Y: y + 90, Size: 9, Content: currentStreakRange(stats), Fill: p.TextLight})

	// Longest streak box.
	box3X := box2X + boxWidth
	s.Add(Rect{X: box3X, Y: y, W: boxWidth - spacing, H: streakBoxHeight, Fill: p.CardLight, Rx: 10})
	s.Add(Text{X: box3X + 15, Y: y + 35, Size: 28, Content: "✅", Fill: p.Success, Bold: true})
	s.Add(Text{X: box3X + 50, Y: y + 35, Size: 28, Content: FormatNumber(stats.LongestStreak), Fill: p.Success, Bold: true})
	s.Add(Text{X: box3X + 15, Y: y + 58, Size: 12, Content: "Longest Streak", Fill: p.Text})
	s.Add(Text{X: box3X + 15, Y: y + 75, Size: 9, Content: longestStreakRange(stats), Fill: p.TextLight})
}

func contributionsRange(stats *domain.Stats) string {
	if stats.HasContributionData() {
		return stats.ContributionData[0].Date.Format(rangeDateFormat) + " - Present"
	}
	return stats.JoinedDate + " - Present"
}

func currentStreakRange(stats *domain.Stats) string {
	window := stats.ContributionData
	if stats.CurrentStreak <= 0 || len(window) < stats.CurrentStreak {
		return "No active streak"
	}
	start := window[len(window)-stats.CurrentStreak].Date
	end := window[len(window)-1].Date
	return start.Format(rangeDateFormat) + " - " + end.Format(rangeDateFormat)
}

func longestStreakRange(stats *domain.Stats) string {
	start, end := longestRun(stats.ContributionData)
	if start < 0 {
		return "Last 31 days"
	}
	return stats.ContributionData[start].Date.Format(rangeDateFormat) +
		" - " + stats.ContributionData[end].Date.Format(rangeDateFormat)
}

func advancedActivityChart(s *Scene, p Palette, username string, stats *domain.Stats, y float64) {
	panelW := float64(advancedWidth - 60)
	s.Add(Rect{X: advLeftColX, Y: y, W: panelW, H: activityChartHeight, Fill: p.CardLight, Rx: 10})
	s.Add(Text{X: advLeftColX + panelW/2, Y: y + 22, Size: 14,
		Content: username + "'s Contribution Graph", Fill: p.Highlight, Bold: true, Anchor: "middle"})

	if !stats.HasContributionData() {
		// Explicit no-data state instead of fabricated values.
		s.Add(Text{X: advLeftColX + panelW/2, Y: y + activityChartHeight/2 + 5, Size: 12,
			Content: "No contribution data available", Fill: p.TextLight, Anchor: "middle"})
		return
	}

	const (
		padLeft   = 45
		padRight  = 20
		padTop    = 45
		padBottom = 30
		gridSteps = 6
	)

	data := stats.ContributionData
	maxValue := maxCount(data, 10)

	chartX := float64(advLeftColX + padLeft)
	chartY := y + padTop
	chartW := panelW - padLeft - padRight
	chartH := float64(activityChartHeight - padTop - padBottom)

	// Dashed gridlines.
	for i := 0; i <= gridSteps; i++ {
		gy := chartY + (chartH/gridSteps)*float64(i)
		s.Add(Line{X1: chartX, Y1: gy, X2: chartX + chartW, Y2: gy, Stroke: p.Accent, StrokeWidth: 0.5, Dash: "2,2"})
	}
	for i := 0; i <= gridSteps; i++ {
		gx := chartX + (chartW/gridSteps)*float64(i)
		s.Add(Line{X1: gx, Y1: chartY, X2: gx, Y2: chartY + chartH, Stroke: p.Accent, StrokeWidth: 0.5, Dash: "2,2"})
	}

	// Axis labels and ticks.
	axisX := float64(advLeftColX + 12)
	axisY := chartY + chartH/2
	s.Add(Text{X: axisX, Y: axisY, Size: 10, Content: "Contributions", Fill: p.TextLight, Anchor: "middle",
		Transform: fmt.Sprintf("rotate(-90 %s %s)", fmtFloat(axisX), fmtFloat(axisY))})

	for i, tick := range yAxisTicks(maxValue) {
		ty := chartY + (chartH/gridSteps)*float64(i)
		s.Add(Text{X: chartX - 8, Y: ty + 3, Size: 9, Content: FormatNumber(tick), Fill: p.TextLight, Anchor: "end"})
	}

	s.Add(Text{X: chartX + chartW/2, Y: chartY + chartH + 25, Size: 10, Content: "Days", Fill: p.TextLight, Anchor: "middle"})
	for day := 0; day < len(data); day += 5 {
		tx := chartX + (float64(day)/float64(len(data)-1))*chartW
		s.Add(Text{X: tx, Y: chartY + chartH + 15, Size: 8, Content: FormatNumber(day), Fill: p.TextLight, Anchor: "middle"})
	}

	// Area fill, then the line, then the dots.
	points := chartPoints(data, chartX, chartY, chartW, chartH, maxValue)
	s.Add(Path{D: areaPath(points, chartY + chartH), Fill: "url(#areaGradient)"})
	s.Add(Path{D: polylinePath(points), Stroke: p.Highlight, StrokeWidth: 2.5, Rounded: true})
	for _, pt := range points {
		s.Add(Circle{CX: pt.x, CY: pt.y, R: 3, Fill: "#ffffff", Stroke: p.Highlight, StrokeWidth: 1.5})
	}
}
