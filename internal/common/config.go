package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string            `toml:"environment"` // "development" or "production"
	Server      ServerConfig      `toml:"server"`
	Logging     LoggingConfig     `toml:"logging"`
	Notion      NotionConfig      `toml:"notion"`
	Enrichment  EnrichmentConfig  `toml:"enrichment"`
	Cache       CacheConfig       `toml:"cache"`
	Suggestions SuggestionsConfig `toml:"suggestions"`
	Scheduler   SchedulerConfig   `toml:"scheduler"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// NotionConfig contains the document database credentials and collection ids.
// Collection ids may be database ids or parent page ids; the client resolves
// the queryable id at fetch time.
type NotionConfig struct {
	Token             string        `toml:"token"`                 // Integration secret (server-side only)
	Version           string        `toml:"version"`               // Notion-Version header
	BooksDB           string        `toml:"books_db"`              // Books collection id
	HallOfFameDB      string        `toml:"hall_of_fame_db"`       // Primary designers collection id
	HallOfFameExtraDB string        `toml:"hall_of_fame_extra_db"` // Optional secondary designers collection id
	MuseumDB          string        `toml:"museum_db"`             // Museum collection id
	ResourcesDB       string        `toml:"resources_db"`          // Resources collection id
	SuggestionsDB     string        `toml:"suggestions_db"`        // Destination for user suggestions
	RequestTimeout    time.Duration `toml:"request_timeout"`       // HTTP request timeout
	RequestsPerSecond int           `toml:"requests_per_second"`   // Outbound rate limit against the Notion API
}

// EnrichmentConfig controls the image enrichment engine.
type EnrichmentConfig struct {
	Concurrency    int           `toml:"concurrency"`     // Worker pool size (capped at MaxConcurrency)
	RequestTimeout time.Duration `toml:"request_timeout"` // Timeout per lookup API call
	UserAgent      string        `toml:"user_agent"`      // User agent sent to lookup APIs
}

// CacheConfig controls the Badger-backed enrichment cache.
// InMemory keeps the cache for the process lifetime only, matching the
// documented cache lifecycle. A path enables persistence across restarts.
type CacheConfig struct {
	InMemory bool   `toml:"in_memory"`
	Path     string `toml:"path"`
}

// SuggestionsConfig controls the suggestion submission rate limit.
type SuggestionsConfig struct {
	Window      time.Duration `toml:"window"`       // Sliding window length
	MaxRequests int           `toml:"max_requests"` // Requests allowed per client IP per window
}

// SchedulerConfig controls the background collection refresh.
// An empty schedule disables the refresh job.
type SchedulerConfig struct {
	RefreshSchedule string `toml:"refresh_schedule"` // Cron schedule format
}

// MaxConcurrency is the hard cap on enrichment workers regardless of config.
// Third-party lookup APIs throttle aggressively above this.
const MaxConcurrency = 8

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in indexd.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Notion: NotionConfig{
			Version:           "2022-06-28",
			RequestTimeout:    15 * time.Second,
			RequestsPerSecond: 3, // Notion allows ~3 rps per integration
		},
		Enrichment: EnrichmentConfig{
			Concurrency:    5,
			RequestTimeout: 15 * time.Second,
			UserAgent:      "indexd/1.0 (index-design aggregation)",
		},
		Cache: CacheConfig{
			InMemory: true,
			Path:     "./data/cache",
		},
		Suggestions: SuggestionsConfig{
			Window:      10 * time.Minute,
			MaxRequests: 3,
		},
		Scheduler: SchedulerConfig{
			RefreshSchedule: "", // Disabled by default - user must explicitly opt-in
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI. Later files override
// earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("INDEXD_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("INDEXD_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("INDEXD_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("INDEXD_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("INDEXD_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Notion configuration. The token is a secret and normally arrives via
	// environment rather than the config file.
	if token := os.Getenv("INDEXD_NOTION_TOKEN"); token != "" {
		config.Notion.Token = token
	} else if token := os.Getenv("NOTION_TOKEN"); token != "" {
		config.Notion.Token = token
	}
	if version := os.Getenv("INDEXD_NOTION_VERSION"); version != "" {
		config.Notion.Version = version
	}
	if id := os.Getenv("INDEXD_BOOKS_DB"); id != "" {
		config.Notion.BooksDB = id
	}
	if id := os.Getenv("INDEXD_HALL_OF_FAME_DB"); id != "" {
		config.Notion.HallOfFameDB = id
	}
	if id := os.Getenv("INDEXD_HALL_OF_FAME_EXTRA_DB"); id != "" {
		config.Notion.HallOfFameExtraDB = id
	}
	if id := os.Getenv("INDEXD_MUSEUM_DB"); id != "" {
		config.Notion.MuseumDB = id
	}
	if id := os.Getenv("INDEXD_RESOURCES_DB"); id != "" {
		config.Notion.ResourcesDB = id
	}
	if id := os.Getenv("INDEXD_SUGGESTIONS_DB"); id != "" {
		config.Notion.SuggestionsDB = id
	}
	if timeout := os.Getenv("INDEXD_NOTION_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Notion.RequestTimeout = d
		}
	}

	// Enrichment configuration
	if concurrency := os.Getenv("INDEXD_ENRICHMENT_CONCURRENCY"); concurrency != "" {
		if c, err := strconv.Atoi(concurrency); err == nil {
			config.Enrichment.Concurrency = c
		}
	}
	if timeout := os.Getenv("INDEXD_ENRICHMENT_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Enrichment.RequestTimeout = d
		}
	}

	// Cache configuration
	if inMemory := os.Getenv("INDEXD_CACHE_IN_MEMORY"); inMemory != "" {
		if b, err := strconv.ParseBool(inMemory); err == nil {
			config.Cache.InMemory = b
		}
	}
	if path := os.Getenv("INDEXD_CACHE_PATH"); path != "" {
		config.Cache.Path = path
	}

	// Suggestions configuration
	if window := os.Getenv("INDEXD_SUGGESTIONS_WINDOW"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			config.Suggestions.Window = d
		}
	}
	if maxRequests := os.Getenv("INDEXD_SUGGESTIONS_MAX_REQUESTS"); maxRequests != "" {
		if m, err := strconv.Atoi(maxRequests); err == nil {
			config.Suggestions.MaxRequests = m
		}
	}

	// Scheduler configuration
	if schedule := os.Getenv("INDEXD_REFRESH_SCHEDULE"); schedule != "" {
		config.Scheduler.RefreshSchedule = schedule
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// EnrichmentWorkers returns the effective worker pool size after applying
// the default and the hard cap.
func (c *Config) EnrichmentWorkers() int {
	n := c.Enrichment.Concurrency
	if n < 1 {
		n = 5
	}
	if n > MaxConcurrency {
		n = MaxConcurrency
	}
	return n
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
