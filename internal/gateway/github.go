// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// apiTimeout bounds each individual HTTP request. There is no overall
// deadline across a whole aggregation run.
const apiTimeout = 30 * time.Second

// Profile holds the subset of a GitHub user profile the aggregator needs.
type Profile struct {
	Login       string
	Name        string
	AvatarURL   string
	PublicRepos int
	Followers   int
	Following   int
}

// Repository holds the per-repository fields the aggregator needs.
type Repository struct {
	Name  string
	Stars int
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (*Profile, error)
	FetchRepositories(ctx context.Context, username string) ([]Repository, error)
	CountPullRequests(ctx context.Context, username string) (int, error)
	CountIssues(ctx context.Context, username string) (int, error)
	FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error)
	EstimateCommits(ctx context.Context, username, repo string) (int, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	httpClient    *http.Client
	logger        *log.Logger
}

// searchCountQuery reads only the total hit count of one issue search.
type searchCountQuery struct {
	Search struct {
		IssueCount githubv4.Int
	} `graphql:"search(query: $query, type: ISSUE, first: 1)"`
}

// NewGitHubGateway creates a gateway backed by the GitHub API. An empty
// token yields an unauthenticated client, subject to the API's anonymous
// rate limits.
func NewGitHubGateway(token string, logger *log.Logger) *GitHubGateway {
	apiClient := &http.Client{Timeout: apiTimeout}
	if token != "" {
		apiClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return &GitHubGateway{
		restClient:    github.NewClient(apiClient),
		graphqlClient: githubv4.NewClient(apiClient),
		// Avatars live on a public CDN; fetch them without credentials.
		httpClient: &http.Client{Timeout: apiTimeout},
		logger:     logger,
	}
}

// FetchProfile looks up the user's public profile.
func (g *GitHubGateway) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	g.logger.Printf("GET /users/%s", username)
	user, _, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile for %s: %w", username, err)
	}
	return &Profile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

// FetchRepositories lists the first page of up to 100 of the user's
// repositories. Repositories beyond the first 100 are excluded from star
// totals, a documented limitation of the card.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]Repository, error) {
	g.logger.Printf("GET /users/%s/repos (first page of 100)", username)
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}
	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, Repository{Name: r.GetName(), Stars: r.GetStargazersCount()})
	}
	return result, nil
}

// CountPullRequests returns the total number of pull requests the user authored.
func (g *GitHubGateway) CountPullRequests(ctx context.Context, username string) (int, error) {
	return g.countSearchResults(ctx, fmt.Sprintf("author:%s type:pr", username), "pull request")
}

// CountIssues returns the total number of issues the user authored.
func (g *GitHubGateway) CountIssues(ctx context.Context, username string) (int, error) {
	return g.countSearchResults(ctx, fmt.Sprintf("author:%s type:issue", username), "issue")
}

// countSearchResults runs one issue-search query over GraphQL and reads only
// the total hit count.
func (g *GitHubGateway) countSearchResults(ctx context.Context, query, kind string) (int, error) {
	g.logger.Printf("GraphQL search: %s", query)
	variables := map[string]interface{}{"query": githubv4.String(query)}
	var q searchCountQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return 0, fmt.Errorf("failed to search %ss with query %q: %w", kind, query, err)
	}
	return int(q.Search.IssueCount), nil
}

// FetchAvatar downloads the raw avatar image.
func (g *GitHubGateway) FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build avatar request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch avatar: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("avatar fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read avatar body: %w", err)
	}
	return data, nil
}

// EstimateCommits approximates how many commits the user authored in one
// repository. It requests a single page of one commit and inspects the parsed
// Link pagination header: when a last page is advertised, the last page
// number is the commit count (the page size is 1); otherwise the number of
// returned items (zero or one) is the count. The approximation is known to be
// coarse and is kept as is because changing it changes scores.
func (g *GitHubGateway) EstimateCommits(ctx context.Context, username, repo string) (int, error) {
	opts := &github.CommitsListOptions{
		Author:      username,
		ListOptions: github.ListOptions{PerPage: 1},
	}
	commits, resp, err := g.restClient.Repositories.ListCommits(ctx, username, repo, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to list commits for %s/%s: %w", username, repo, err)
	}
	if resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(commits), nil
}
