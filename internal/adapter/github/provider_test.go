package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github-insights/internal/common"

	"github.com/google/go-github/v53/github"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider points a provider at a mock GitHub API server with
// retry backoff shrunk so failure tests stay fast.
func newTestProvider(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Provider) {
	server := httptest.NewServer(handler)

	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL

	provider := &Provider{
		client: client,
		retryOpts: []common.Option{
			common.WithMaxRetries(1),
			common.WithInitialDelay(time.Millisecond),
			common.WithRetryIf(retryable),
		},
		log: logrus.WithField("component", "github"),
	}
	return server, provider
}

func TestGetProfile(t *testing.T) {
	server, provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"login": "octocat",
			"name": "The Octocat",
			"avatar_url": "https://example.com/a.png",
			"location": "San Francisco",
			"created_at": "2011-01-25T18:44:36Z",
			"public_repos": 8,
			"public_gists": 3,
			"followers": 100,
			"following": 9
		}`)
	})
	defer server.Close()

	user, err := provider.GetProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, "San Francisco", user.Location)
	assert.Equal(t, 8, user.PublicRepos)
	assert.Equal(t, 3, user.PublicGists)
	assert.Equal(t, 100, user.Followers)
	assert.Equal(t, 2011, user.CreatedAt.Year())
}

func TestGetProfile_ErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantCalls  int
		check      func(*testing.T, error)
	}{
		{
			name:       "404 maps to NotFound without retrying",
			statusCode: http.StatusNotFound,
			body:       `{"message": "Not Found"}`,
			wantCalls:  1,
			check: func(t *testing.T, err error) {
				assert.True(t, common.IsNotFound(err))
				assert.Contains(t, err.Error(), "octocat")
			},
		},
		{
			name:       "403 maps to RateLimited without retrying",
			statusCode: http.StatusForbidden,
			body:       `{"message": "API rate limit exceeded"}`,
			wantCalls:  1,
			check: func(t *testing.T, err error) {
				assert.True(t, common.IsRateLimited(err))
				assert.Contains(t, err.Error(), "GITHUB_TOKEN")
			},
		},
		{
			name:       "500 maps to TransportError after retries",
			statusCode: http.StatusInternalServerError,
			body:       `{"message": "oops"}`,
			wantCalls:  2,
			check: func(t *testing.T, err error) {
				assert.False(t, common.IsNotFound(err))
				assert.False(t, common.IsRateLimited(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server, provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			user, err := provider.GetProfile(context.Background(), "octocat")
			require.Error(t, err)
			assert.Nil(t, user)
			assert.Equal(t, tt.wantCalls, calls)
			tt.check(t, err)
		})
	}
}

func TestListRepositories_SortsByStars(t *testing.T) {
	server, provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"name": "small", "stargazers_count": 2, "forks_count": 1, "language": "Go"},
			{"name": "big", "stargazers_count": 50, "forks_count": 9, "language": "Rust", "fork": true},
			{"name": "medium", "stargazers_count": 10, "language": "Go"}
		]`)
	})
	defer server.Close()

	repos, err := provider.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 3)

	assert.Equal(t, "big", repos[0].Name)
	assert.Equal(t, "medium", repos[1].Name)
	assert.Equal(t, "small", repos[2].Name)
	assert.True(t, repos[0].Fork)
	assert.Equal(t, 9, repos[0].Forks)
	assert.Equal(t, "Go", repos[1].Language)
}

func TestGetContributionCalendar(t *testing.T) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)

	event := func(kind string, at time.Time, payload string) map[string]any {
		return map[string]any{
			"type":       kind,
			"created_at": at.Format(time.RFC3339),
			"payload":    json.RawMessage(payload),
		}
	}

	server, provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/events/public", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			event("PushEvent", now.Add(10*time.Hour), `{"size": 3}`),
			event("IssuesEvent", now.Add(2*time.Hour), `{}`),
			event("PushEvent", yesterday.Add(5*time.Hour), `{"size": 1}`),
		})
	})
	defer server.Close()

	series, err := provider.GetContributionCalendar(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, series, 2, "one entry per day from first event to today")

	assert.Equal(t, yesterday, series[0].Date)
	assert.Equal(t, 1, series[0].Count)
	assert.Equal(t, now, series[1].Date)
	assert.Equal(t, 4, series[1].Count, "push commits plus one issue event")
}

func TestGetContributionCalendar_EmptyFeed(t *testing.T) {
	server, provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})
	defer server.Close()

	series, err := provider.GetContributionCalendar(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, series, "empty feed degrades to no data, not an error")
}

func TestCountPullRequestsAndIssues(t *testing.T) {
	server, provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/issues", r.URL.Path)
		q := r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		if q == "author:octocat type:pr" {
			fmt.Fprint(w, `{"total_count": 42, "items": []}`)
		} else {
			fmt.Fprint(w, `{"total_count": 7, "items": []}`)
		}
	})
	defer server.Close()

	prs, err := provider.CountPullRequests(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 42, prs)

	issues, err := provider.CountIssues(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 7, issues)
}

func TestNewProvider(t *testing.T) {
	assert.NotNil(t, NewProvider(""))
	assert.NotNil(t, NewProvider("ghp_sometoken"))
}
