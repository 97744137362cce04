package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/uber-go/tally/v4"

	_ "repo-directory/docs"
	"repo-directory/internal/application/service"
	"repo-directory/internal/config"
	"repo-directory/internal/domain/repo"
	"repo-directory/internal/github"
	"repo-directory/internal/infrastructure/cache"
	infraGitHub "repo-directory/internal/infrastructure/github"
	"repo-directory/internal/logging"
	"repo-directory/internal/presentation"
	"repo-directory/internal/presentation/handlers"
	"repo-directory/internal/presentation/views"
)

// @title Repository Directory API
// @version 1.0
// @description Read-only view of an organization's GitHub repositories

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// flagOverrides holds command line values that take precedence over the environment
type flagOverrides struct {
	Host     string
	Port     string
	Org      string
	LogLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags flagOverrides

	c := &cobra.Command{
		Use:           "repo-directory",
		Short:         "Serve the repository directory",
		Long:          `Serve a browsable directory of a GitHub organization's repositories`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	c.PersistentFlags().StringVarP(&flags.Host, "host", "", "", "address to listen on (overrides SERVER_HOST)")
	c.PersistentFlags().StringVarP(&flags.Port, "port", "p", "", "port to listen on (overrides SERVER_PORT)")
	c.PersistentFlags().StringVarP(&flags.Org, "org", "", "", "GitHub organization to list (overrides GITHUB_ORG)")
	c.PersistentFlags().StringVarP(&flags.LogLevel, "log-level", "", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	return c
}

func (f flagOverrides) apply(cfg *config.Config) {
	if f.Host != "" {
		cfg.Server.Host = f.Host
	}
	if f.Port != "" {
		cfg.Server.Port = f.Port
	}
	if f.Org != "" {
		cfg.GitHub.Organization = f.Org
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
}

func run(cfg *config.Config) error {
	log, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	// Metrics
	scope, closer := tally.NewRootScope(tally.ScopeOptions{Prefix: "repo_directory"}, time.Second)
	defer closer.Close()

	// Initialize infrastructure layer
	githubClient, err := github.NewClient(&cfg.GitHub)
	if err != nil {
		return err
	}
	githubService := infraGitHub.NewGitHubService(githubClient, log)
	requestCache := cache.New(cfg.Cache.Size, cfg.Cache.TTL, scope)

	// Initialize application layer
	org, err := repo.NewOrganization(cfg.GitHub.Organization)
	if err != nil {
		return errors.Wrap(err, "invalid organization")
	}
	repositoryService := service.NewRepositoryService(githubService, requestCache, org, log)

	// Initialize presentation layer
	tmpl, err := views.Load()
	if err != nil {
		return err
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := presentation.NewRouter(presentation.Handlers{
		Page:       handlers.NewPageHandler(repositoryService, cfg.GitHub.OrgDisplayName, log),
		Repository: handlers.NewRepositoryHandler(repositoryService),
		Health:     handlers.NewHealthHandler(org.String(), requestCache),
	}, tmpl, log)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"addr", cfg.GetServerAddress(),
			"org", org.String(),
			"github_api", cfg.GitHub.APIBaseURL())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		log.Errorw("server failed", "error", err)
		return errors.Wrap(err, "failed to start server")
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited")
	return nil
}
