package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("YouTube API key is required")

const (
	defaultLogDir           = "logs"
	defaultSearchPageSize   = 20
	defaultRelatedLimit     = 5
	defaultCommentsPageSize = 20
	defaultMaxQPS           = 5.0
	defaultHTTPTimeout      = 15 * time.Second
	defaultSearchDebounce   = 400 * time.Millisecond
)

type Config struct {
	YouTubeAPIKey    string
	YouTubeEndpoint  string
	LogDir           string
	SearchPageSize   int64
	RelatedLimit     int64
	CommentsPageSize int64
	MaxQPS           float64
	HTTPTimeout      time.Duration
	SearchDebounce   time.Duration
}

// LoadDotEnv loads .env.local and .env when present. Variables already set in
// the environment are never overwritten, and .env.local wins over .env.
// It returns the files that were applied; a file that fails to parse is
// skipped and reported in the error.
func LoadDotEnv() ([]string, error) {
	var loaded []string
	var errs []error
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			errs = append(errs, fmt.Errorf("error loading %s: %w", f, err))
			continue
		}
		loaded = append(loaded, f)
	}
	return loaded, errors.Join(errs...)
}

// Load reads the configuration from the environment. A missing API key is not
// an error here; see Validate.
func Load() (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey:   firstNonEmpty(os.Getenv("YOUTUBE_API_KEY"), os.Getenv("GOOGLE_API_KEY")),
		YouTubeEndpoint: strings.TrimSpace(os.Getenv("YOUTUBE_API_ENDPOINT")),
		LogDir:          envOr("LOG_DIR", defaultLogDir),
	}

	var err error
	if cfg.SearchPageSize, err = envInt("SEARCH_PAGE_SIZE", defaultSearchPageSize); err != nil {
		return nil, err
	}
	if cfg.RelatedLimit, err = envInt("RELATED_LIMIT", defaultRelatedLimit); err != nil {
		return nil, err
	}
	if cfg.CommentsPageSize, err = envInt("COMMENTS_PAGE_SIZE", defaultCommentsPageSize); err != nil {
		return nil, err
	}
	if cfg.MaxQPS, err = envFloat("YOUTUBE_MAX_QPS", defaultMaxQPS); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = envDuration("HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.SearchDebounce, err = envDuration("SEARCH_DEBOUNCE", defaultSearchDebounce); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is usable against the real API.
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, raw)
	}
	return n, nil
}

func envFloat(name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", name, raw)
	}
	return f, nil
}

func envDuration(name string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", name, raw)
	}
	return d, nil
}
