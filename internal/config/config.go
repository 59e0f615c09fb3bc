package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidLimitFloor   = errors.New("LIMIT_FLOOR must be at least 1")
	ErrInvalidLimitCeiling = errors.New("LIMIT_CEILING must be >= LIMIT_FLOOR")
	ErrInvalidFetchTimeout = errors.New("FETCH_TIMEOUT_SEC must be at least 1")
)

// defaultFeedURLs are the BBC feeds aggregated into one logical source.
var defaultFeedURLs = []string{
	"http://feeds.bbci.co.uk/news/world/rss.xml",
	"http://feeds.bbci.co.uk/news/technology/rss.xml",
	"http://feeds.bbci.co.uk/news/business/rss.xml",
}

type Config struct {
	NewsAPIKey     string
	GuardianAPIKey string
	ReutersAPIKey  string
	FeedURLs       []string
	LimitFloor     int
	LimitCeiling   int
	FetchTimeout   time.Duration
	Port           string
	FrontendURL    string
}

// Load reads settings from the environment, falling back to defaults for
// everything except provider credentials.
func Load() (*Config, error) {
	cfg := &Config{
		NewsAPIKey:     os.Getenv("NEWSAPI_KEY"),
		GuardianAPIKey: os.Getenv("GUARDIAN_API_KEY"),
		ReutersAPIKey:  os.Getenv("REUTERS_API_KEY"),
		FeedURLs:       feedURLs(),
		LimitFloor:     getEnvInt("LIMIT_FLOOR", 20),
		LimitCeiling:   getEnvInt("LIMIT_CEILING", 30),
		FetchTimeout:   time.Duration(getEnvInt("FETCH_TIMEOUT_SEC", 10)) * time.Second,
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
	}

	if cfg.LimitFloor < 1 {
		return nil, ErrInvalidLimitFloor
	}
	if cfg.LimitCeiling < cfg.LimitFloor {
		return nil, ErrInvalidLimitCeiling
	}
	if cfg.FetchTimeout < time.Second {
		return nil, ErrInvalidFetchTimeout
	}

	return cfg, nil
}

func feedURLs() []string {
	raw := os.Getenv("RSS_FEED_URLS")
	if raw == "" {
		return defaultFeedURLs
	}

	var urls []string
	for _, u := range strings.Split(raw, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	if len(urls) == 0 {
		return defaultFeedURLs
	}
	return urls
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid env value, using default", "name", name, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return v
}
