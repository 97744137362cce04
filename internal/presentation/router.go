// Package presentation wires HTTP routes to handlers.
package presentation

import (
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"repo-directory/internal/middleware"
	"repo-directory/internal/presentation/handlers"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	Page       *handlers.PageHandler
	Repository *handlers.RepositoryHandler
	Health     *handlers.HealthHandler
}

// NewRouter builds the gin engine: the two HTML views with their fragments,
// the JSON API under /api/v1 and the API documentation.
func NewRouter(h Handlers, tmpl *template.Template, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))

	// Registered globally so preflight requests to unrouted OPTIONS are answered
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.SetHTMLTemplate(tmpl)

	// Views
	router.GET("/", h.Page.RepositoryList)
	router.GET("/repo/:repoName", h.Page.RepositoryDetail)

	partials := router.Group(handlers.FragmentBase)
	{
		partials.GET("/repos", h.Page.RepositoryListFragment)
		partials.GET("/repo/:repoName", h.Page.RepositoryDetailFragment)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)
		v1.GET("/repos", h.Repository.ListRepositories)
		v1.GET("/repos/:repoName", h.Repository.GetRepository)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
