// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/montanaflynn/stats"

	"github.com/statscard/github-stats-card/internal/domain"
	"github.com/statscard/github-stats-card/internal/gateway"
)

// maxReposForCommits caps how many repositories are sampled for commit
// counts. Repositories beyond the cap are not counted, trading accuracy for
// fewer API calls.
const maxReposForCommits = 10

// Aggregator is the use case for building one UserStats record.
// It orchestrates the fixed sequence of gateway calls and merges the results.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate fetches everything needed for one user's stats card, strictly in
// sequence. Failures of the profile lookup, repository listing or either
// search query abort the whole run; the avatar fetch and each per-repository
// commit lookup are best-effort and default to empty/zero.
func (a *Aggregator) Aggregate(ctx context.Context, username string) (*domain.UserStats, error) {
	a.logger.Printf("[1/6] Fetching profile for %s...", username)
	profile, err := a.fetcher.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	a.logger.Println("[2/6] Listing repositories...")
	repos, err := a.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	a.logger.Println("[3/6] Counting pull requests...")
	prs, err := a.fetcher.CountPullRequests(ctx, username)
	if err != nil {
		return nil, err
	}

	a.logger.Println("[4/6] Counting issues...")
	issues, err := a.fetcher.CountIssues(ctx, username)
	if err != nil {
		return nil, err
	}

	a.logger.Println("[5/6] Fetching avatar...")
	var avatar []byte
	if profile.AvatarURL != "" {
		avatar, err = a.fetcher.FetchAvatar(ctx, profile.AvatarURL)
		if err != nil {
			a.logger.Printf("Warning: could not fetch avatar: %v", err)
			avatar = nil
		}
	}

	a.logger.Println("[6/6] Estimating commit counts...")
	totalCommits := 0
	for i, repo := range repos {
		if i >= maxReposForCommits {
			break
		}
		totalCommits += a.estimateCommits(ctx, username, repo.Name).Count
	}

	totalStars := 0
	starCounts := make([]float64, 0, len(repos))
	for _, repo := range repos {
		totalStars += repo.Stars
		starCounts = append(starCounts, float64(repo.Stars))
	}
	a.logStarSummary(starCounts)

	name := profile.Name
	if name == "" {
		name = username
	}

	a.logger.Println("Aggregation complete.")
	return &domain.UserStats{
		Username:  username,
		Name:      name,
		Avatar:    avatar,
		Repos:     profile.PublicRepos,
		Followers: profile.Followers,
		Following: profile.Following,
		Stars:     totalStars,
		PRs:       prs,
		Issues:    issues,
		Commits:   totalCommits,
	}, nil
}

// estimateCommits wraps a single best-effort commit lookup. A failed lookup
// yields an estimate with Known=false and a zero count, and never aborts the
// pipeline.
func (a *Aggregator) estimateCommits(ctx context.Context, username, repo string) domain.CommitEstimate {
	count, err := a.fetcher.EstimateCommits(ctx, username, repo)
	if err != nil {
		a.logger.Printf("Warning: could not estimate commits for %s/%s: %v", username, repo, err)
		return domain.CommitEstimate{}
	}
	return domain.CommitEstimate{Count: count, Known: true}
}

// logStarSummary reports the star distribution across the listed
// repositories. Verbose-only diagnostics, never part of the record.
func (a *Aggregator) logStarSummary(starCounts []float64) {
	if len(starCounts) == 0 {
		return
	}
	mean, err := stats.Mean(starCounts)
	if err != nil {
		return
	}
	median, _ := stats.Median(starCounts)
	most, _ := stats.Max(starCounts)
	a.logger.Printf("Stars per repository: mean=%.1f median=%.1f max=%.0f", mean, median, most)
}
