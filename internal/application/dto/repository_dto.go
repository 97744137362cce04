package dto

// RepositorySummaryResponse represents one entry of the repository listing
type RepositorySummaryResponse struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// RepositoryListResponse represents the repositories of the organization, in upstream order
type RepositoryListResponse struct {
	Organization string                       `json:"organization"`
	Repositories []*RepositorySummaryResponse `json:"repositories"`
}

// RepositoryDetailResponse represents a single repository with its languages
type RepositoryDetailResponse struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	HTMLURL         string   `json:"html_url"`
	LanguagesURL    *string  `json:"languages_url"`
	Languages       []string `json:"languages"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	WatchersCount   int      `json:"watchers_count"`
}
