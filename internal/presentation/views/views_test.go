package views

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-directory/internal/application/service"
	"repo-directory/internal/domain/repo"
)

func strPtr(s string) *string { return &s }

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestResultStates(t *testing.T) {
	p := Pending[int]()
	assert.True(t, p.IsPending())
	assert.Equal(t, "pending", p.State().String())

	f := From(0, errors.New("boom"))
	assert.True(t, f.IsError())
	assert.Equal(t, "boom", f.ErrorMessage())

	s := From(7, nil)
	assert.True(t, s.IsSuccess())
	assert.Equal(t, 7, s.Value())
	assert.Empty(t, s.ErrorMessage())
}

func TestListPendingRendersFiveSkeletons(t *testing.T) {
	page := NewListPage("GoDaddy Repositories", "/partials/repos", Pending[[]*repo.RepositorySummary]())
	out := render(t, ListPageTemplate, page)

	assert.Equal(t, ListSkeletonCount, strings.Count(out, "skeleton-card"))
	assert.Contains(t, out, "GoDaddy Repositories")
	assert.Contains(t, out, `data-src="/partials/repos"`)
	assert.NotContains(t, out, "View Details")
}

func TestListSuccessRendersOneCardPerItem(t *testing.T) {
	summaries := []*repo.RepositorySummary{
		{Name: "test-repo-1", Description: strPtr("Test description 1")},
		{Name: "test-repo-2", Description: strPtr("Test description 2")},
		{Name: "test-repo-3", Description: nil},
	}
	out := render(t, ListFragmentTemplate, NewListPage("GoDaddy Repositories", "", Success(summaries)))

	assert.Equal(t, 3, strings.Count(out, `aria-label="View Details"`))
	assert.Contains(t, out, "test-repo-1:")
	assert.Contains(t, out, "test-repo-2:")
	assert.Contains(t, out, "test-repo-3:")
	assert.Contains(t, out, "<p>Test description 1</p>")
	assert.Contains(t, out, "<p>Test description 2</p>")
	assert.Equal(t, 1, strings.Count(out, "<p>No description available</p>"))
	assert.Contains(t, out, `data-href="/repo/test-repo-1"`)
	assert.Contains(t, out, `data-href="/repo/test-repo-3"`)
	assert.NotContains(t, out, "skeleton-card")

	// upstream order is kept
	assert.Less(t, strings.Index(out, "test-repo-1:"), strings.Index(out, "test-repo-2:"))
	assert.Less(t, strings.Index(out, "test-repo-2:"), strings.Index(out, "test-repo-3:"))
}

func TestListEmpty(t *testing.T) {
	out := render(t, ListFragmentTemplate, NewListPage("GoDaddy Repositories", "", Success([]*repo.RepositorySummary{})))

	assert.Contains(t, out, "No repositories found.")
	assert.NotContains(t, out, "View Details")
	assert.NotContains(t, out, "GoDaddy Repositories")
}

func TestListError(t *testing.T) {
	out := render(t, ListFragmentTemplate, NewListPage("GoDaddy Repositories", "",
		Failure[[]*repo.RepositorySummary](repo.ErrUpstreamUnavailable(errors.New("Network Error")))))

	assert.Contains(t, out, "Error loading repositories: Network Error")
	assert.NotContains(t, out, "GoDaddy Repositories")
	assert.NotContains(t, out, "View Details")
}

func TestListEscapesDescriptions(t *testing.T) {
	summaries := []*repo.RepositorySummary{{Name: "x", Description: strPtr("<script>alert(1)</script>")}}
	out := render(t, ListFragmentTemplate, NewListPage("H", "", Success(summaries)))

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestDetailPendingRendersSkeleton(t *testing.T) {
	out := render(t, DetailPageTemplate, NewDetailPage("acme", "/partials/repo/acme", Pending[*service.RepositoryDetails]()))

	assert.Equal(t, 1, strings.Count(out, "skeleton-title"))
	assert.Equal(t, 2, strings.Count(out, "skeleton skeleton-text"))
	assert.Equal(t, 1, strings.Count(out, "skeleton-rect"))
	assert.Contains(t, out, `data-src="/partials/repo/acme"`)
}

func acmeDetails(languages repo.LanguageSet) *service.RepositoryDetails {
	return &service.RepositoryDetails{
		Name: "acme",
		Repository: &repo.RepositoryDetail{
			Name:            "acme",
			Description:     strPtr("demo"),
			HTMLURL:         "https://github.com/godaddy/acme",
			LanguagesURL:    strPtr("https://api.github.com/repos/godaddy/acme/languages"),
			ForksCount:      3,
			OpenIssuesCount: 1,
			WatchersCount:   9,
		},
		Languages: languages,
	}
}

func TestDetailSuccess(t *testing.T) {
	out := render(t, DetailFragmentTemplate, NewDetailPage("acme", "", Success(acmeDetails(repo.LanguageSet{"Go", "Rust"}))))

	assert.Contains(t, out, "<h3>acme</h3>")
	assert.Contains(t, out, `<div class="repo-description">demo</div>`)
	assert.Contains(t, out, `<span class="repo-languages">Go,Rust</span>`)
	assert.Contains(t, out, `<span class="repo-forks">3</span>`)
	assert.Contains(t, out, `<span class="repo-open-issues">1</span>`)
	assert.Contains(t, out, `<span class="repo-watchers">9</span>`)
	assert.Contains(t, out, `onclick="window.history.go(-1)"`)
	assert.Contains(t, out, `data-href="https://github.com/godaddy/acme" onclick="window.open(this.dataset.href, '_blank')"`)
}

func TestDetailLanguageFallback(t *testing.T) {
	tests := []struct {
		name      string
		languages repo.LanguageSet
	}{
		{"empty mapping", repo.LanguageSet{}},
		{"absent mapping", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, DetailFragmentTemplate, NewDetailPage("acme", "", Success(acmeDetails(tt.languages))))
			assert.Contains(t, out, `<span class="repo-languages">No languages listed</span>`)
		})
	}
}

func TestDetailNotFound(t *testing.T) {
	out := render(t, DetailFragmentTemplate, NewDetailPage("acme", "", Success(&service.RepositoryDetails{Name: "acme"})))

	assert.Contains(t, out, "Repository not found.")
	assert.NotContains(t, out, "Forks Count")
}

func TestDetailError(t *testing.T) {
	out := render(t, DetailFragmentTemplate, NewDetailPage("acme", "",
		Failure[*service.RepositoryDetails](repo.ErrUpstreamUnavailable(errors.New("Failed to fetch")))))

	assert.Contains(t, out, "Error loading repositories: Failed to fetch")
	assert.NotContains(t, out, "Forks Count")
	assert.NotContains(t, out, "Watchers Count")
	assert.NotContains(t, out, "Open Issues Count")
}

func TestDetailPath(t *testing.T) {
	assert.Equal(t, "/repo/test-repo-1", DetailPath("test-repo-1"))
	assert.Equal(t, "/repo/a%20b", DetailPath("a b"))
}
