package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"repo-directory/internal/application/service"
	"repo-directory/internal/domain/repo"
	"repo-directory/internal/presentation/views"
)

// Fragment routes loaded by the page shells
const (
	FragmentBase     = "/partials"
	ListFragmentPath = FragmentBase + "/repos"
)

// PageHandler serves the HTML views
type PageHandler struct {
	repositoryService *service.RepositoryService
	heading           string
	log               *zap.SugaredLogger
}

// NewPageHandler creates a new page handler. The listing is titled
// "<orgDisplayName> Repositories".
func NewPageHandler(repositoryService *service.RepositoryService, orgDisplayName string, log *zap.SugaredLogger) *PageHandler {
	return &PageHandler{
		repositoryService: repositoryService,
		heading:           orgDisplayName + " Repositories",
		log:               log,
	}
}

// RepositoryList handles GET /
func (h *PageHandler) RepositoryList(c *gin.Context) {
	page := views.NewListPage(h.heading, ListFragmentPath, views.Pending[[]*repo.RepositorySummary]())
	c.HTML(http.StatusOK, views.ListPageTemplate, page)
}

// RepositoryListFragment handles GET /partials/repos
func (h *PageHandler) RepositoryListFragment(c *gin.Context) {
	summaries, err := h.repositoryService.ListRepositories(c.Request.Context())
	if h.abandoned(c) {
		return
	}

	status := http.StatusOK
	if err != nil {
		_ = c.Error(err)
		status = errorStatus(err)
	}
	page := views.NewListPage(h.heading, ListFragmentPath, views.From(summaries, err))
	c.HTML(status, views.ListFragmentTemplate, page)
}

// RepositoryDetail handles GET /repo/:repoName
func (h *PageHandler) RepositoryDetail(c *gin.Context) {
	repoName := c.Param("repoName")
	page := views.NewDetailPage(repoName, FragmentBase+views.DetailPath(repoName),
		views.Pending[*service.RepositoryDetails]())
	c.HTML(http.StatusOK, views.DetailPageTemplate, page)
}

// RepositoryDetailFragment handles GET /partials/repo/:repoName
func (h *PageHandler) RepositoryDetailFragment(c *gin.Context) {
	repoName := c.Param("repoName")

	details, err := h.repositoryService.GetRepositoryDetails(c.Request.Context(), repoName)
	if h.abandoned(c) {
		return
	}

	status := http.StatusOK
	switch {
	case err != nil:
		_ = c.Error(err)
		status = errorStatus(err)
	case !details.Found():
		status = http.StatusNotFound
	}
	page := views.NewDetailPage(repoName, FragmentBase+views.DetailPath(repoName), views.From(details, err))
	c.HTML(status, views.DetailFragmentTemplate, page)
}

// abandoned reports whether the browser went away while the request was in
// flight. The result stays cached; nothing is rendered.
func (h *PageHandler) abandoned(c *gin.Context) bool {
	if err := c.Request.Context().Err(); err != nil {
		h.log.Debugw("client gone, discarding result", "path", c.Request.URL.Path, "error", err)
		c.Abort()
		return true
	}
	return false
}
