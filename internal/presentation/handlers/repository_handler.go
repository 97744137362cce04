package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repo-directory/internal/application/service"
	"repo-directory/internal/domain/repo"
)

// RepositoryHandler serves the repository JSON API
type RepositoryHandler struct {
	repositoryService *service.RepositoryService
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService *service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{repositoryService: repositoryService}
}

// ListRepositories handles GET /repos
// @Summary List organization repositories
// @Description Returns every repository of the configured organization in the order GitHub lists them
// @Tags Repositories
// @Produce json
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos [get]
func (h *RepositoryHandler) ListRepositories(c *gin.Context) {
	summaries, err := h.repositoryService.ListRepositories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(errorStatus(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, h.repositoryService.ToListResponse(summaries))
}

// GetRepository handles GET /repos/:repoName
// @Summary Get repository details
// @Description Returns a repository with its languages. Languages are empty when they cannot be loaded.
// @Tags Repositories
// @Produce json
// @Param repoName path string true "Repository name"
// @Success 200 {object} dto.RepositoryDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos/{repoName} [get]
func (h *RepositoryHandler) GetRepository(c *gin.Context) {
	repoName := c.Param("repoName")

	details, err := h.repositoryService.GetRepositoryDetails(c.Request.Context(), repoName)
	if err != nil {
		_ = c.Error(err)
		c.JSON(errorStatus(err), newErrorResponse(err))
		return
	}
	if !details.Found() {
		err := repo.ErrRepositoryNotFound(details.Name)
		c.JSON(errorStatus(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, h.repositoryService.ToDetailResponse(details))
}
