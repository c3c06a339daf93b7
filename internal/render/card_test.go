package render

import (
	"strings"
	"testing"
	"time"

	"github-insights/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() *domain.Stats {
	window := make([]domain.ContributionDay, 31)
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := range window {
		count := 0
		if i%2 == 0 {
			count = i
		}
		window[i] = domain.ContributionDay{Date: base.AddDate(0, 0, i), Count: count}
	}

	return &domain.Stats{
		TotalRepos:     42,
		TotalFollowers: 1500,
		TotalFollowing: 12,
		TotalStars:     2300,
		TotalForks:     87,
		TotalGists:     5,
		JoinedDate:     "January 25, 2011",
		TopLanguages: []domain.LanguageCount{
			{Name: "Go", Count: 20},
			{Name: "Rust", Count: 10},
			{Name: "Python", Count: 5},
		},
		TopRepos:         []*domain.Repo{{Name: "hello", Stars: 100}},
		Contributions:    1234,
		ContributionData: window,
		CurrentStreak:    0,
		LongestStreak:    5,
		PullRequests:     33,
		Issues:           21,
		ContributedTo:    9,
	}
}

func sampleUser() *domain.User {
	return &domain.User{
		Login:    "octocat",
		Name:     "The Octocat",
		Location: "San Francisco",
	}
}

func allOn() CardConfig {
	return BuildCardConfig("octocat", "dark", nil)
}

func TestRender_Idempotent(t *testing.T) {
	stats := sampleStats()
	cfg := allOn()
	user := sampleUser()

	first := Render(stats, cfg, user)
	second := Render(stats, cfg, user)
	assert.Equal(t, first, second, "identical inputs must produce byte-identical SVG")
}

func TestRender_AdvancedSections(t *testing.T) {
	svg := Render(sampleStats(), allOn(), sampleUser())

	assert.Contains(t, svg, `width="760" height="800"`)
	assert.Contains(t, svg, "octocat")
	assert.Contains(t, svg, "The Octocat")
	assert.Contains(t, svg, "1.2K contributions in the last year")
	assert.Contains(t, svg, "42 public repositories")
	assert.Contains(t, svg, "Joined GitHub January 25, 2011")
	assert.Contains(t, svg, "San Francisco")
	assert.Contains(t, svg, "Total Stars Earned")
	assert.Contains(t, svg, "2.3K")
	assert.Contains(t, svg, "Most Used Languages")
	assert.Contains(t, svg, "Current Streak")
	assert.Contains(t, svg, "Longest Streak")
	assert.Contains(t, svg, "octocat's Contribution Graph")
	assert.Contains(t, svg, "url(#borderGradient)")
	assert.Contains(t, svg, "url(#areaGradient)")
}

func TestRender_TogglesRemoveExactlyOneSection(t *testing.T) {
	stats := sampleStats()
	user := sampleUser()

	tests := []struct {
		option string
		marker string
	}{
		{"showName", "The Octocat"},
		{"showContributions", "contributions in the last year"},
		{"showRepositories", "public repositories"},
		{"showJoinDate", "Joined GitHub"},
		{"showLocation", "San Francisco"},
		{"showLanguageChart", "Most Used Languages"},
		{"showStreak", "Current Streak"},
		{"showCharts", "Contribution Graph"},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			on := Render(stats, BuildCardConfig("octocat", "dark", nil), user)
			off := Render(stats, BuildCardConfig("octocat", "dark", map[string]string{tt.option: "false"}), user)

			assert.Contains(t, on, tt.marker)
			assert.NotContains(t, off, tt.marker)

			// Only the toggled section disappears.
			for _, other := range tests {
				if other.option != tt.option {
					assert.Contains(t, off, other.marker, "disabling %s must not remove %s", tt.option, other.option)
				}
			}
		})
	}
}

func TestRender_UnknownThemeUsesDefault(t *testing.T) {
	stats := sampleStats()
	user := sampleUser()

	unknown := Render(stats, BuildCardConfig("octocat", "sparkle-pony", nil), user)
	dark := Render(stats, BuildCardConfig("octocat", "dark", nil), user)
	assert.Equal(t, dark, unknown)
}

func TestRender_ThemesProduceDistinctOutput(t *testing.T) {
	stats := sampleStats()
	seen := map[string]string{}
	for _, name := range ThemeNames() {
		svg := Render(stats, BuildCardConfig("octocat", name, nil), sampleUser())
		for prev, prevSVG := range seen {
			assert.NotEqual(t, prevSVG, svg, "%s and %s must differ", prev, name)
		}
		seen[name] = svg
	}
}

func TestRender_NoContributionDataState(t *testing.T) {
	stats := sampleStats()
	stats.ContributionData = nil

	svg := Render(stats, allOn(), sampleUser())
	assert.Contains(t, svg, "No contribution data available")
	assert.NotContains(t, svg, "url(#areaGradient)\"", "no chart geometry without data")
}

func TestRender_NilUserOmitsProfileSections(t *testing.T) {
	svg := Render(sampleStats(), allOn(), nil)
	assert.NotContains(t, svg, "The Octocat")
	assert.NotContains(t, svg, "San Francisco")
	assert.Contains(t, svg, "octocat", "username header is always drawn")
}

func TestRender_EmptyLanguagesOmitsLanguageColumn(t *testing.T) {
	stats := sampleStats()
	stats.TopLanguages = nil

	svg := Render(stats, allOn(), sampleUser())
	assert.NotContains(t, svg, "Most Used Languages")
}

func TestBuildScene_LanguagePercentages(t *testing.T) {
	scene := BuildScene(sampleStats(), allOn(), sampleUser())

	var percents []string
	for _, op := range scene.Ops {
		if txt, ok := op.(Text); ok && strings.HasSuffix(txt.Content, "%") {
			percents = append(percents, txt.Content)
		}
	}
	// 20/35, 10/35, 5/35 of the top-languages total.
	require.Equal(t, []string{"57.1%", "28.6%", "14.3%"}, percents)
}

func TestBuildScene_StreakRing(t *testing.T) {
	stats := sampleStats()
	stats.CurrentStreak = 15 // half of the 30-day full sweep

	scene := BuildScene(stats, allOn(), sampleUser())

	var ring *Circle
	for _, op := range scene.Ops {
		if c, ok := op.(Circle); ok && c.DashArray > 0 {
			ring = &c
			break
		}
	}
	require.NotNil(t, ring, "progress ring must be drawn")
	assert.InDelta(t, ring.DashArray/2, ring.DashOffset, 0.01, "half streak leaves half the ring undrawn")

	stats.CurrentStreak = 90 // sweep saturates at 30 days
	scene = BuildScene(stats, allOn(), sampleUser())
	for _, op := range scene.Ops {
		if c, ok := op.(Circle); ok && c.DashArray > 0 {
			assert.Zero(t, c.DashOffset)
			break
		}
	}
}

func TestRender_CompactLayout(t *testing.T) {
	stats := sampleStats()
	cfg := BuildCardConfig("octocat", "dark", map[string]string{"layout": "compact"})

	svg := Render(stats, cfg, sampleUser())
	assert.Contains(t, svg, `width="800" height="600"`)
	assert.Contains(t, svg, "Top Languages")
	assert.Contains(t, svg, "Followers")
	assert.Contains(t, svg, "Generated with GitHub Insights")
	assert.NotContains(t, svg, "Contribution Graph", "compact layout has no activity chart")
}

func TestRender_CompactToggles(t *testing.T) {
	stats := sampleStats()

	off := Render(stats, BuildCardConfig("octocat", "dark", map[string]string{
		"layout": "compact", "showLanguages": "false",
	}), sampleUser())
	assert.NotContains(t, off, "Top Languages")

	noStars := Render(stats, BuildCardConfig("octocat", "dark", map[string]string{
		"layout": "compact", "showStars": "false",
	}), sampleUser())
	assert.NotContains(t, noStars, ">Stars</text>")
	assert.Contains(t, noStars, ">Repos</text>")
}
