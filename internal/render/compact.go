package render

import (
	"fmt"

	"github-insights/internal/domain"
)

const (
	compactWidth  = 800
	compactHeight = 600
)

func buildCompactScene(stats *domain.Stats, cfg CardConfig, user *domain.User) *Scene {
	s := NewScene(compactWidth, compactHeight)
	p := ThemePalette(cfg.Theme)
	opts := cfg.DisplayOptions

	s.Add(Rect{W: compactWidth, H: compactHeight, Fill: p.Bg})
	s.Add(Rect{
		X: 20, Y: 20, W: compactWidth - 40, H: compactHeight - 40,
		Fill: p.Card, Rx: 12, Stroke: p.Border, StrokeWidth: 1,
	})

	y := 40.0
	s.Add(Text{X: 40, Y: y, Size: 32, Content: cfg.Username, Fill: p.Highlight, Bold: true})
	y += 35

	if user != nil && user.Name != "" && opts.ShowName {
		s.Add(Text{X: 40, Y: y, Size: 14, Content: user.Name, Fill: p.Text})
		y += 25
	}

	y = compactSummaryRow(s, p, opts, stats, y)

	if opts.ShowLanguages && len(stats.TopLanguages) > 0 {
		y = compactLanguageGrid(s, p, stats, y)
	}

	if opts.ShowContributions {
		y = compactStatTiles(s, p, stats, y)
	}

	s.Add(Text{X: 40, Y: compactHeight - 20, Size: 11, Content: "Generated with GitHub Insights", Fill: p.Text})

	return s
}

func compactSummaryRow(s *Scene, p Palette, opts DisplayOptions, stats *domain.Stats, y float64) float64 {
	type summary struct {
		label string
		value int
		show  bool
	}
	items := []summary{
		{"Repos", stats.TotalRepos, opts.ShowRepositories},
		{"Stars", stats.TotalStars, opts.ShowStars},
		{"Followers", stats.TotalFollowers, opts.ShowFollowers},
	}

	colWidth := float64(compactWidth-80) / 3
	x := 40.0
	for _, item := range items {
		if !item.show {
			continue
		}
		s.Add(Text{X: x, Y: y, Size: 12, Content: item.label, Fill: p.Text})
		s.Add(Text{X: x, Y: y + 20, Size: 24, Content: FormatNumber(item.value), Fill: p.Highlight, Bold: true})
		x += colWidth
	}
	return y + 60
}

func compactLanguageGrid(s *Scene, p Palette, stats *domain.Stats, y float64) float64 {
	s.Add(Text{X: 40, Y: y, Size: 16, Content: "Top Languages", Fill: p.Text, Bold: true})
	y += 25

	boxWidth := float64(compactWidth-80) / 5
	x := 40.0
	for _, lang := range stats.TopLanguages {
		pct := 0.0
		if stats.TotalRepos > 0 {
			pct = float64(lang.Count) / float64(stats.TotalRepos) * 100
		}
		s.Add(Rect{X: x, Y: y, W: boxWidth - 5, H: 50, Fill: p.Accent, Rx: 6})
		s.Add(Text{X: x + 10, Y: y + 20, Size: 12, Content: lang.Name, Fill: p.Highlight, Bold: true})
		s.Add(Text{X: x + 10, Y: y + 38, Size: 11, Content: fmt.Sprintf("%.0f%%", pct), Fill: p.Text})
		x += boxWidth
	}
	return y + 70
}

func compactStatTiles(s *Scene, p Palette, stats *domain.Stats, y float64) float64 {
	type tile struct {
		label string
		value int
	}
	tiles := []tile{
		{"Contributions", stats.Contributions},
		{"Gists", stats.TotalGists},
		{"Forks", stats.TotalForks},
	}

	boxWidth := float64(compactWidth-80) / 3
	x := 40.0
	for _, t := range tiles {
		s.Add(Rect{X: x, Y: y, W: boxWidth - 5, H: 60, Fill: p.Accent, Rx: 6})
		s.Add(Text{X: x + 15, Y: y + 25, Size: 11, Content: t.label, Fill: p.Text})
		s.Add(Text{X: x + 15, Y: y + 45, Size: 20, Content: FormatNumber(t.value), Fill: p.Highlight, Bold: true})
		x += boxWidth
	}
	return y + 80
}
