package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// GitHubConfig holds upstream API configuration
type GitHubConfig struct {
	APIURL         string
	Organization   string
	OrgDisplayName string
	Timeout        time.Duration
	HTTPCache      bool
	UserAgent      string
}

// CacheConfig holds request cache configuration
type CacheConfig struct {
	TTL  time.Duration
	Size int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
		},
		GitHub: GitHubConfig{
			APIURL:         getEnv("GITHUB_API_URL", "https://api.github.com/"),
			Organization:   getEnv("GITHUB_ORG", "godaddy"),
			OrgDisplayName: getEnv("GITHUB_ORG_DISPLAY_NAME", "GoDaddy"),
			Timeout:        getEnvAsDuration("GITHUB_TIMEOUT", 30*time.Second),
			HTTPCache:      getEnvAsBool("GITHUB_HTTP_CACHE", false),
			UserAgent:      getEnv("GITHUB_USER_AGENT", "repo-directory"),
		},
		Cache: CacheConfig{
			TTL:  getEnvAsDuration("CACHE_TTL", 5*time.Minute),
			Size: getEnvAsInt("CACHE_SIZE", 256),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.GitHub.Organization == "" {
		return fmt.Errorf("GITHUB_ORG is required")
	}
	u, err := url.Parse(c.GitHub.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GITHUB_API_URL must be an absolute http(s) URL")
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("GITHUB_TIMEOUT must be positive")
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL cannot be negative")
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// APIBaseURL returns the upstream API URL with the trailing slash the client requires
func (c *GitHubConfig) APIBaseURL() string {
	if strings.HasSuffix(c.APIURL, "/") {
		return c.APIURL
	}
	return c.APIURL + "/"
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as boolean with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("90s") or plain seconds ("90")
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
