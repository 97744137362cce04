package repo

import (
	"fmt"
	"strings"
)

// RepositorySummary is a single entry of an organization's repository listing
type RepositorySummary struct {
	Name        string
	Description *string
}

// DescriptionOr returns the description, or fallback when it is nil or empty
func (s *RepositorySummary) DescriptionOr(fallback string) string {
	if s.Description == nil || *s.Description == "" {
		return fallback
	}
	return *s.Description
}

// RepositoryDetail is the full record of a single repository
type RepositoryDetail struct {
	Name            string
	Description     *string
	HTMLURL         string
	LanguagesURL    *string
	ForksCount      int
	OpenIssuesCount int
	WatchersCount   int
}

// HasLanguagesURL reports whether the record references a languages resource.
// The languages request must only be issued when this is true.
func (d *RepositoryDetail) HasLanguagesURL() bool {
	return d != nil && d.LanguagesURL != nil && strings.TrimSpace(*d.LanguagesURL) != ""
}

// GetDescription returns the description or an empty string
func (d *RepositoryDetail) GetDescription() string {
	if d == nil || d.Description == nil {
		return ""
	}
	return *d.Description
}

// String returns string representation (for debugging)
func (d *RepositoryDetail) String() string {
	return fmt.Sprintf("RepositoryDetail{name: %s, forks: %d, issues: %d, watchers: %d}",
		d.Name, d.ForksCount, d.OpenIssuesCount, d.WatchersCount)
}

// LanguageSet is the ordered list of language names used by a repository,
// in the order the upstream mapping lists them.
type LanguageSet []string

// Join renders the set as a comma separated list without spaces
func (l LanguageSet) Join() string {
	return strings.Join(l, ",")
}

// IsEmpty reports whether no languages are listed
func (l LanguageSet) IsEmpty() bool {
	return len(l) == 0
}
