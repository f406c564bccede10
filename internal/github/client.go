// Package github provides the GitHub API access used by gh-chrono.
package github

import (
	"context"
	"fmt"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

// OwnerType represents the type of account owner (User or Organization).
type OwnerType string

const (
	// OwnerTypeUser represents a user account.
	OwnerTypeUser OwnerType = "User"
	// OwnerTypeOrganization represents an organization account.
	OwnerTypeOrganization OwnerType = "Organization"

	pageSize = 100
)

// ClientOptions configures the GitHub API client.
type ClientOptions struct {
	AuthToken    string
	CacheDir     string
	CacheTTL     time.Duration
	DisableCache bool
}

// Client wraps the go-gh REST client.
type Client struct {
	rest *api.RESTClient
}

// NewClient creates a new GitHub API client with the given options.
func NewClient(opts ClientOptions) (*Client, error) {
	apiOpts := api.ClientOptions{
		AuthToken:   opts.AuthToken,
		CacheDir:    opts.CacheDir,
		CacheTTL:    opts.CacheTTL,
		EnableCache: !opts.DisableCache,
	}

	rest, err := api.NewRESTClient(apiOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &Client{
		rest: rest,
	}, nil
}

// GetOwnerType determines if a name is a "User" or "Organization".
func (c *Client) GetOwnerType(ctx context.Context, name string) (OwnerType, error) {
	var result struct {
		Type OwnerType `json:"type"`
	}

	endpoint := fmt.Sprintf("users/%s", name)
	err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &result)
	if err != nil {
		return "", fmt.Errorf("failed to get owner type for %s: %w", name, err)
	}

	return result.Type, nil
}

// ListRepos returns an owner's repositories, following pagination. Forks and
// archived repositories are skipped unless opts asks for them.
func (c *Client) ListRepos(ctx context.Context, name string, opts ListOptions) ([]Repository, error) {
	accountType, err := c.GetOwnerType(ctx, name)
	if err != nil {
		return nil, err
	}

	var baseEndpoint string
	if accountType == OwnerTypeOrganization {
		baseEndpoint = fmt.Sprintf("orgs/%s/repos", name)
	} else {
		baseEndpoint = fmt.Sprintf("users/%s/repos", name)
	}

	var repos []Repository
	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("%s?type=all&per_page=%d&page=%d", baseEndpoint, pageSize, page)

		var batch []Repository
		if err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &batch); err != nil {
			return nil, fmt.Errorf("failed to list repos for %s: %w", name, err)
		}

		for _, repo := range batch {
			if repo.Fork && !opts.Forks {
				continue
			}
			if repo.Archived && !opts.Archived {
				continue
			}
			repos = append(repos, repo)
		}

		if len(batch) < pageSize {
			break
		}
	}

	return repos, nil
}

// GetRepo fetches a single repository.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (Repository, error) {
	var result Repository

	endpoint := fmt.Sprintf("repos/%s/%s", owner, repo)
	err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &result)
	if err != nil {
		return Repository{}, fmt.Errorf("failed to get repo %s/%s: %w", owner, repo, err)
	}

	return result, nil
}
