package service

import (
	"context"

	"go.uber.org/zap"

	"repo-directory/internal/application/dto"
	"repo-directory/internal/domain/repo"
	"repo-directory/internal/infrastructure/cache"
)

// RepositoryDetails is the outcome of loading one repository for the detail view
type RepositoryDetails struct {
	// Name is the requested repository name
	Name string
	// Repository is nil when the upstream answered with an empty body
	Repository *repo.RepositoryDetail
	Languages  repo.LanguageSet
}

// Found reports whether a repository record was returned
func (d *RepositoryDetails) Found() bool {
	return d != nil && d.Repository != nil
}

// RepositoryService handles repository-related use cases
type RepositoryService struct {
	githubService repo.GitHubService
	cache         *cache.Cache
	org           repo.Organization
	log           *zap.SugaredLogger
}

// NewRepositoryService creates a new repository service
func NewRepositoryService(githubService repo.GitHubService, c *cache.Cache, org repo.Organization, log *zap.SugaredLogger) *RepositoryService {
	return &RepositoryService{
		githubService: githubService,
		cache:         c,
		org:           org,
		log:           log,
	}
}

// Organization returns the organization whose repositories are served
func (s *RepositoryService) Organization() repo.Organization {
	return s.org
}

// ListRepositories returns every repository of the organization in upstream order.
// Failures are returned as is; there is no retry.
func (s *RepositoryService) ListRepositories(ctx context.Context) ([]*repo.RepositorySummary, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{Kind: cache.KindRepos},
		func(ctx context.Context) ([]*repo.RepositorySummary, error) {
			return s.githubService.ListOrganizationRepositories(ctx, s.org)
		})
}

// GetRepositoryDetails loads a repository record and then, only when the record
// references one, its languages. A languages failure is logged and leaves the
// language set empty.
func (s *RepositoryService) GetRepositoryDetails(ctx context.Context, repoName string) (*RepositoryDetails, error) {
	name, err := repo.NewName(repoName)
	if err != nil {
		return nil, repo.ErrInvalidRepositoryData("repository name", err)
	}

	detail, err := cache.Fetch(ctx, s.cache, cache.Key{Kind: cache.KindRepoDetails, Param: name.String()},
		func(ctx context.Context) (*repo.RepositoryDetail, error) {
			return s.githubService.GetRepository(ctx, s.org, name)
		})
	if err != nil {
		return nil, err
	}

	result := &RepositoryDetails{
		Name:       name.String(),
		Repository: detail,
		Languages:  repo.LanguageSet{},
	}
	if !detail.HasLanguagesURL() {
		return result, nil
	}

	languagesURL := *detail.LanguagesURL
	languages, err := cache.Fetch(ctx, s.cache, cache.Key{Kind: cache.KindRepoLanguages, Param: name.String()},
		func(ctx context.Context) (repo.LanguageSet, error) {
			return s.githubService.ListLanguages(ctx, languagesURL)
		})
	if err != nil {
		s.log.Warnw("languages unavailable, rendering without them",
			"repo", name.String(), "error", err)
		return result, nil
	}
	if languages != nil {
		result.Languages = languages
	}

	return result, nil
}

// ToListResponse converts summaries to the API representation
func (s *RepositoryService) ToListResponse(summaries []*repo.RepositorySummary) *dto.RepositoryListResponse {
	items := make([]*dto.RepositorySummaryResponse, len(summaries))
	for i, summary := range summaries {
		items[i] = &dto.RepositorySummaryResponse{
			Name:        summary.Name,
			Description: summary.Description,
		}
	}
	return &dto.RepositoryListResponse{
		Organization: s.org.String(),
		Repositories: items,
	}
}

// ToDetailResponse converts a found repository to the API representation
func (s *RepositoryService) ToDetailResponse(d *RepositoryDetails) *dto.RepositoryDetailResponse {
	r := d.Repository
	languages := []string(d.Languages)
	if languages == nil {
		languages = []string{}
	}
	return &dto.RepositoryDetailResponse{
		Name:            r.Name,
		Description:     r.Description,
		HTMLURL:         r.HTMLURL,
		LanguagesURL:    r.LanguagesURL,
		Languages:       languages,
		ForksCount:      r.ForksCount,
		OpenIssuesCount: r.OpenIssuesCount,
		WatchersCount:   r.WatchersCount,
	}
}
