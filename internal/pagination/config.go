// Package pagination runs count+data statement pairs and shapes the uniform
// page envelope returned by every listing endpoint.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination defaults and bounds.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns page=1, limit=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_LIMIT and
// PAGINATION_MAX_LIMIT, falling back to DefaultConfig values.
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 1 {
		return defaultValue
	}
	return val
}
