// Package views renders the repository list and detail screens.
//
// Each screen has a page template, served immediately with the pending
// placeholders, and a fragment template holding the request outcome. The page
// loads its fragment from FragmentURL and swaps it in.
package views

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	"repo-directory/internal/application/service"
	"repo-directory/internal/domain/repo"
)

// Template names
const (
	ListPageTemplate       = "repo_list_page"
	ListFragmentTemplate   = "repo_list_fragment"
	DetailPageTemplate     = "repo_details_page"
	DetailFragmentTemplate = "repo_details_fragment"
)

// ListSkeletonCount is the number of placeholder cards shown while the listing loads
const ListSkeletonCount = 5

//go:embed templates/*.tmpl
var templateFS embed.FS

// Load parses the embedded templates
func Load() (*template.Template, error) {
	tmpl, err := template.New("views").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parsing view templates")
	}
	return tmpl, nil
}

// DetailPath is the in-app path of a repository's detail view
func DetailPath(name string) string {
	return "/repo/" + url.PathEscape(name)
}

// RepositoryCard is one entry of the listing
type RepositoryCard struct {
	Name        string
	Description string
	DetailPath  string
}

// ListPage is the model of the repository listing
type ListPage struct {
	Title         string
	Heading       string
	FragmentURL   string
	SkeletonCount int
	Result        Result[[]RepositoryCard]
}

// NewListPage builds the listing model. Cards keep upstream order.
func NewListPage(heading, fragmentURL string, result Result[[]*repo.RepositorySummary]) ListPage {
	page := ListPage{
		Title:         heading,
		Heading:       heading,
		FragmentURL:   fragmentURL,
		SkeletonCount: ListSkeletonCount,
	}

	switch {
	case result.IsPending():
		page.Result = Pending[[]RepositoryCard]()
	case result.IsError():
		page.Result = Failure[[]RepositoryCard](result.Err())
	default:
		summaries := result.Value()
		cards := make([]RepositoryCard, 0, len(summaries))
		for _, s := range summaries {
			if s == nil {
				continue
			}
			card := RepositoryCard{Name: s.Name, DetailPath: DetailPath(s.Name)}
			if s.Description != nil {
				card.Description = *s.Description
			}
			cards = append(cards, card)
		}
		page.Result = Success(cards)
	}
	return page
}

// DetailCard is the rendered form of a found repository
type DetailCard struct {
	Name            string
	Description     string
	HTMLURL         string
	Languages       []string
	ForksCount      int
	OpenIssuesCount int
	WatchersCount   int
}

// DetailPage is the model of a repository's detail view. A successful result
// with a nil card means the repository was not found.
type DetailPage struct {
	Title       string
	Name        string
	FragmentURL string
	Result      Result[*DetailCard]
}

// NewDetailPage builds the detail model for the repository named in the path
func NewDetailPage(name, fragmentURL string, result Result[*service.RepositoryDetails]) DetailPage {
	page := DetailPage{
		Title:       name,
		Name:        name,
		FragmentURL: fragmentURL,
	}

	switch {
	case result.IsPending():
		page.Result = Pending[*DetailCard]()
	case result.IsError():
		page.Result = Failure[*DetailCard](result.Err())
	case !result.Value().Found():
		page.Result = Success[*DetailCard](nil)
	default:
		details := result.Value()
		r := details.Repository
		page.Result = Success(&DetailCard{
			Name:            name,
			Description:     r.GetDescription(),
			HTMLURL:         r.HTMLURL,
			Languages:       details.Languages,
			ForksCount:      r.ForksCount,
			OpenIssuesCount: r.OpenIssuesCount,
			WatchersCount:   r.WatchersCount,
		})
	}
	return page
}
