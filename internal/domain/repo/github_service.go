package repo

import (
	"context"
)

// GitHubService is a domain service interface for reading repositories from GitHub
// Implementation will be in infrastructure layer
type GitHubService interface {
	// ListOrganizationRepositories fetches all repositories of an organization, in upstream order
	ListOrganizationRepositories(ctx context.Context, org Organization) ([]*RepositorySummary, error)

	// GetRepository fetches a single repository record.
	// A nil record with a nil error means the upstream answered with an empty body.
	GetRepository(ctx context.Context, org Organization, name Name) (*RepositoryDetail, error)

	// ListLanguages resolves a languages URL taken from a repository record
	ListLanguages(ctx context.Context, languagesURL string) (LanguageSet, error)
}
