package domain

import "time"

// User is a snapshot of a GitHub profile at fetch time.
// JSON tags match the upstream field names because the {stats, user}
// pair is served verbatim by the HTTP layer.
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	Company     string    `json:"company,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
}

// Repo is a single repository record. Lists of these are ordered by
// star count descending (provider contract).
type Repo struct {
	Name     string    `json:"name"`
	Language string    `json:"language,omitempty"`
	Stars    int       `json:"stargazers_count"`
	Forks    int       `json:"forks_count"`
	Fork     bool      `json:"fork"`
	PushedAt time.Time `json:"pushed_at"`
}

// ContributionDay is one day of contribution activity.
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// LanguageCount pairs a language name with the number of repositories
// tagged with it. Count is a raw occurrence count, not a percentage;
// percentages are derived at render time from the top-5 total.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the aggregate derived once per request. It is never mutated
// after construction.
type Stats struct {
	TotalRepos     int    `json:"totalRepos"`
	TotalFollowers int    `json:"totalFollowers"`
	TotalFollowing int    `json:"totalFollowing"`
	TotalStars     int    `json:"totalStars"`
	TotalForks     int    `json:"totalForks"`
	TotalGists     int    `json:"totalGists"`
	JoinedDate     string `json:"joinedDate"`

	// TopLanguages holds at most 5 entries, ordered by descending count.
	TopLanguages []LanguageCount `json:"topLanguages"`

	// TopRepos holds the first 5 entries of the star-sorted repo list.
	TopRepos []*Repo `json:"topRepos"`

	// Contributions is the total activity count for the trailing year.
	Contributions int `json:"contributions"`

	// ContributionData is nil when no calendar data exists upstream,
	// otherwise exactly 31 consecutive days ending at the most recent one.
	ContributionData []ContributionDay `json:"contributionData,omitempty"`

	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`

	// Real counts when the search API path succeeded, heuristic
	// estimates otherwise.
	PullRequests  int `json:"pullRequests"`
	Issues        int `json:"issues"`
	ContributedTo int `json:"contributedTo"`
}

// HasContributionData reports whether a real 31-day window exists.
func (s *Stats) HasContributionData() bool {
	return len(s.ContributionData) > 0
}

// DisplayName prefers the profile name and falls back to the login.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}
