package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	AvatarSize = 64

	DefaultPort         = "8080"
	DefaultFeedCacheTTL = 20 * time.Second
	DefaultSessionTTL   = 24 * time.Hour
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port    string
	GinMode string

	// DBDriver is either "mysql" (production) or "sqlite" (tests, local runs).
	DBDriver string
	DBUser   string
	DBPass   string
	DBHost   string
	DBName   string
	DBPath   string

	MediaDir        string
	FrontendOrigins []string

	SessionCookie string
	SessionTTL    time.Duration
	FeedCacheTTL  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOr("PORT", DefaultPort),
		GinMode:       os.Getenv("GIN_MODE"),
		DBDriver:      envOr("DB_DRIVER", "mysql"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        os.Getenv("DB_HOST"),
		DBName:        envOr("DB_NAME", "yatube"),
		DBPath:        envOr("DB_PATH", "yatube.db"),
		MediaDir:      envOr("MEDIA_DIR", "media"),
		SessionCookie: envOr("SESSION_COOKIE", "session_id"),
		SessionTTL:    DefaultSessionTTL,
		FeedCacheTTL:  DefaultFeedCacheTTL,
	}

	if origins := os.Getenv("FE_ORIGINS"); origins != "" {
		cfg.FrontendOrigins = strings.Split(origins, ";")
	}

	var err error
	if cfg.SessionTTL, err = durationOr("SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.FeedCacheTTL, err = durationOr("FEED_CACHE_TTL", DefaultFeedCacheTTL); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case "mysql":
		if cfg.DBHost == "" {
			return nil, fmt.Errorf("$DB_HOST must be set when DB_DRIVER is mysql")
		}
	case "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("malformed $%v: %w", key, err)
	}
	return d, nil
}
