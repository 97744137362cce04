package github

import (
	"context"

	"go.uber.org/zap"

	"repo-directory/internal/domain/repo"
	"repo-directory/internal/github"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
	log    *zap.SugaredLogger
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client, log *zap.SugaredLogger) repo.GitHubService {
	return &GitHubServiceImpl{client: client, log: log}
}

// ListOrganizationRepositories fetches all repositories of an organization from GitHub
func (g *GitHubServiceImpl) ListOrganizationRepositories(ctx context.Context, org repo.Organization) ([]*repo.RepositorySummary, error) {
	githubRepos, err := g.client.ListOrgRepositories(ctx, org.String())
	if err != nil {
		return nil, g.translate(err, "repositories", "org", org.String())
	}

	summaries := make([]*repo.RepositorySummary, 0, len(githubRepos))
	for _, ghRepo := range githubRepos {
		if ghRepo == nil {
			continue
		}
		summaries = append(summaries, &repo.RepositorySummary{
			Name:        ghRepo.GetName(),
			Description: ghRepo.Description,
		})
	}

	return summaries, nil
}

// GetRepository fetches one repository record from GitHub
func (g *GitHubServiceImpl) GetRepository(ctx context.Context, org repo.Organization, name repo.Name) (*repo.RepositoryDetail, error) {
	ghRepo, err := g.client.GetRepository(ctx, org.String(), name.String())
	if err != nil {
		return nil, g.translate(err, "repository", "repo", name.String())
	}
	if ghRepo == nil {
		return nil, nil
	}

	return &repo.RepositoryDetail{
		Name:            ghRepo.GetName(),
		Description:     ghRepo.Description,
		HTMLURL:         ghRepo.GetHTMLURL(),
		LanguagesURL:    ghRepo.LanguagesURL,
		ForksCount:      ghRepo.GetForksCount(),
		OpenIssuesCount: ghRepo.GetOpenIssuesCount(),
		WatchersCount:   ghRepo.GetWatchersCount(),
	}, nil
}

// ListLanguages resolves the languages URL of a repository record
func (g *GitHubServiceImpl) ListLanguages(ctx context.Context, languagesURL string) (repo.LanguageSet, error) {
	languages, err := g.client.GetLanguages(ctx, languagesURL)
	if err != nil {
		return nil, g.translate(err, "languages", "url", languagesURL)
	}
	return repo.LanguageSet(languages), nil
}

// translate maps client errors to domain errors. Status codes are logged but
// never surface in the error message.
func (g *GitHubServiceImpl) translate(err error, resource, key, value string) error {
	if github.IsStatusError(err) {
		g.log.Warnw("github returned non-success status",
			"resource", resource, key, value, "status", github.StatusCode(err))
		return repo.ErrFetchFailed(resource, err)
	}
	g.log.Warnw("github request failed", "resource", resource, key, value, "error", err)
	return repo.ErrUpstreamUnavailable(err)
}
