package github

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github-insights/internal/common"
	"github-insights/internal/domain"

	"github.com/google/go-github/v53/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	reposPerPage = 100

	// The public events feed caps out at 300 events, 100 per page.
	eventsPerPage = 100
	maxEventPages = 3
)

// Provider implements port.ProfileProvider against the GitHub REST API.
type Provider struct {
	client    *github.Client
	retryOpts []common.Option
	log       *logrus.Entry
}

// NewProvider builds a GitHub-backed provider. An empty token yields an
// unauthenticated client (60 requests/hour; search calls will throttle
// quickly, which the aggregation layer degrades from).
func NewProvider(token string) *Provider {
	var client *github.Client

	if token == "" {
		client = github.NewClient(&http.Client{Timeout: 10 * time.Second})
	} else {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = 10 * time.Second
		client = github.NewClient(tc)
	}

	return &Provider{
		client: client,
		retryOpts: []common.Option{
			common.WithMaxRetries(3),
			common.WithInitialDelay(time.Second),
			common.WithRetryIf(retryable),
		},
		log: logrus.WithField("component", "github"),
	}
}

// mapError translates go-github failures into the application error
// taxonomy so callers can branch on kind instead of HTTP plumbing.
func mapError(username string, err error) error {
	switch e := err.(type) {
	case *github.RateLimitError, *github.AbuseRateLimitError:
		return common.WrapError(common.ErrCodeRateLimited,
			fmt.Sprintf("GitHub API rate limit exceeded for %q; set GITHUB_TOKEN for higher limits", username), err)
	case *github.ErrorResponse:
		if e.Response != nil {
			switch e.Response.StatusCode {
			case http.StatusNotFound:
				return common.WrapError(common.ErrCodeNotFound,
					fmt.Sprintf("user %q not found on GitHub", username), err)
			case http.StatusForbidden, http.StatusTooManyRequests:
				return common.WrapError(common.ErrCodeRateLimited,
					fmt.Sprintf("GitHub API rate limit exceeded for %q; set GITHUB_TOKEN for higher limits", username), err)
			}
		}
	}
	return common.WrapError(common.ErrCodeTransport,
		fmt.Sprintf("GitHub API call failed for %q", username), err)
}

// retryable excludes error kinds a retry cannot fix: a missing profile
// stays missing and a rate limit will not clear within the backoff.
func retryable(err error) bool {
	return !common.IsNotFound(err) && !common.IsRateLimited(err)
}

// GetProfile fetches the user profile.
func (p *Provider) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	var user *github.User
	err := common.Do(ctx, func() error {
		u, _, apiErr := p.client.Users.Get(ctx, username)
		if apiErr != nil {
			return mapError(username, apiErr)
		}
		user = u
		return nil
	}, p.retryOpts...)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Bio:         user.GetBio(),
		Location:    user.GetLocation(),
		Company:     user.GetCompany(),
		Blog:        user.GetBlog(),
		CreatedAt:   user.GetCreatedAt().Time,
		PublicRepos: user.GetPublicRepos(),
		PublicGists: user.GetPublicGists(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

// ListRepositories returns the user's repositories sorted by stars
// descending. The REST list endpoint does not sort by stars, so the
// contract is enforced client-side after fetching one full page.
func (p *Provider) ListRepositories(ctx context.Context, username string) ([]*domain.Repo, error) {
	opts := &github.RepositoryListOptions{
		Type: "owner",
		ListOptions: github.ListOptions{
			PerPage: reposPerPage,
		},
	}

	var items []*github.Repository
	err := common.Do(ctx, func() error {
		list, _, apiErr := p.client.Repositories.List(ctx, username, opts)
		if apiErr != nil {
			return mapError(username, apiErr)
		}
		items = list
		return nil
	}, p.retryOpts...)
	if err != nil {
		return nil, err
	}

	repos := make([]*domain.Repo, 0, len(items))
	for _, item := range items {
		repos = append(repos, &domain.Repo{
			Name:     item.GetName(),
			Language: item.GetLanguage(),
			Stars:    item.GetStargazersCount(),
			Forks:    item.GetForksCount(),
			Fork:     item.GetFork(),
			PushedAt: item.GetPushedAt().Time,
		})
	}

	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Stars > repos[j].Stars
	})

	return repos, nil
}

// GetContributionCalendar derives a daily contribution series from the
// public events feed. The feed only reaches back about 90 days, so the
// series is a suffix of the trailing year; an empty feed yields an empty
// series, never an error beyond transport failures.
func (p *Provider) GetContributionCalendar(ctx context.Context, username string) ([]domain.ContributionDay, error) {
	counts := make(map[time.Time]int)

	opts := &github.ListOptions{PerPage: eventsPerPage}
	for page := 1; page <= maxEventPages; page++ {
		opts.Page = page

		var events []*github.Event
		var resp *github.Response
		err := common.Do(ctx, func() error {
			evs, r, apiErr := p.client.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
			if apiErr != nil {
				return mapError(username, apiErr)
			}
			events, resp = evs, r
			return nil
		}, p.retryOpts...)
		if err != nil {
			return nil, err
		}

		for _, ev := range events {
			day := ev.GetCreatedAt().UTC().Truncate(24 * time.Hour)
			counts[day] += eventWeight(ev)
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
	}

	if len(counts) == 0 {
		return nil, nil
	}

	first := time.Now().UTC().Truncate(24 * time.Hour)
	for day := range counts {
		if day.Before(first) {
			first = day
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var series []domain.ContributionDay
	for day := first; !day.After(today); day = day.AddDate(0, 0, 1) {
		series = append(series, domain.ContributionDay{Date: day, Count: counts[day]})
	}

	p.log.WithFields(logrus.Fields{
		"username": username,
		"days":     len(series),
	}).Debug("derived contribution calendar from events feed")

	return series, nil
}

// eventWeight counts a push as its number of commits and everything else
// as a single contribution.
func eventWeight(ev *github.Event) int {
	if ev.GetType() != "PushEvent" {
		return 1
	}
	payload, err := ev.ParsePayload()
	if err != nil {
		return 1
	}
	push, ok := payload.(*github.PushEvent)
	if !ok || push.GetSize() <= 0 {
		return 1
	}
	return push.GetSize()
}

// CountPullRequests returns the total pull requests authored by the user.
func (p *Provider) CountPullRequests(ctx context.Context, username string) (int, error) {
	return p.searchTotal(ctx, username, fmt.Sprintf("author:%s type:pr", username))
}

// CountIssues returns the total issues authored by the user.
func (p *Provider) CountIssues(ctx context.Context, username string) (int, error) {
	return p.searchTotal(ctx, username, fmt.Sprintf("author:%s type:issue", username))
}

func (p *Provider) searchTotal(ctx context.Context, username, query string) (int, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}

	var total int
	err := common.Do(ctx, func() error {
		result, _, apiErr := p.client.Search.Issues(ctx, query, opts)
		if apiErr != nil {
			return mapError(username, apiErr)
		}
		total = result.GetTotal()
		return nil
	}, p.retryOpts...)
	if err != nil {
		return 0, err
	}
	return total, nil
}
