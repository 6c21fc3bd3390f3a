// Package domain contains the core data structures and domain logic for the application.
package domain

// UserStats holds the aggregated activity counts for a single GitHub user.
// It is the core domain entity of this application: the aggregator fills it
// in once, the grader and renderer only read it.
type UserStats struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Avatar    []byte `json:"-"`
	Repos     int    `json:"repos"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Stars     int    `json:"stars"`
	PRs       int    `json:"prs"`
	Issues    int    `json:"issues"`
	Commits   int    `json:"commits"`
}

// CommitEstimate is the best-effort result of a per-repository commit lookup.
// Known is false when the lookup failed and the count was defaulted to zero,
// which keeps "no commits" and "could not fetch" distinguishable.
type CommitEstimate struct {
	Count int
	Known bool
}
