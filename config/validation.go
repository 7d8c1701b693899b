package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable before
// anything connects to a backend with it.
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			errs = append(errs, "DB_PATH is required when DB_DRIVER=sqlite")
		}
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, "DB_HOST is required when DB_DRIVER=postgres")
		}
		if cfg.DBUser == "" {
			errs = append(errs, "DB_USER is required when DB_DRIVER=postgres")
		}
		if cfg.DBName == "" {
			errs = append(errs, "DB_NAME is required when DB_DRIVER=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("unsupported DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver))
	}

	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errs = append(errs, "REDIS_URL or REDIS_HOST/REDIS_PORT must be set")
	}

	if cfg.MealDBBaseURL == "" {
		errs = append(errs, "MEALDB_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(cfg.MealDBBaseURL, "http://") && !strings.HasPrefix(cfg.MealDBBaseURL, "https://") {
		errs = append(errs, fmt.Sprintf("MEALDB_BASE_URL %q is not an http(s) URL", cfg.MealDBBaseURL))
	}

	if cfg.MealDBTimeout <= 0 {
		errs = append(errs, "MEALDB_TIMEOUT_SECONDS must be positive")
	}
	if cfg.CacheTTL <= 0 {
		errs = append(errs, "CACHE_TTL_SECONDS must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
