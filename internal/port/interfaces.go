package port

import (
	"context"

	"github-insights/internal/domain"
)

// ProfileProvider exposes user, repository, and contribution data for a
// username. The GitHub adapter is the production implementation; tests
// substitute fakes.
type ProfileProvider interface {
	// GetProfile fetches the user profile. Fails with a NOT_FOUND error
	// when the profile does not exist, RATE_LIMITED when the upstream is
	// throttling, TRANSPORT_ERROR otherwise.
	GetProfile(ctx context.Context, username string) (*domain.User, error)

	// ListRepositories returns the user's repositories sorted by star
	// count descending. Same failure kinds as GetProfile.
	ListRepositories(ctx context.Context, username string) ([]*domain.Repo, error)

	// GetContributionCalendar returns daily contribution counts in
	// ascending date order, covering up to the trailing year. An empty
	// slice means the upstream has no calendar data; callers degrade
	// rather than fail.
	GetContributionCalendar(ctx context.Context, username string) ([]domain.ContributionDay, error)

	// CountPullRequests returns the total number of pull requests the
	// user has authored. Failures degrade to an estimate in the caller.
	CountPullRequests(ctx context.Context, username string) (int, error)

	// CountIssues returns the total number of issues the user has
	// authored. Failures degrade to an estimate in the caller.
	CountIssues(ctx context.Context, username string) (int, error)
}
