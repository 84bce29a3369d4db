// Package config reads process configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strconv"
	"time"

	"praxis/pkg/cnp"
)

// Server captures the full runtime configuration.
type Server struct {
	Addr          string
	PostgresURL   string
	Redis         RedisConfig
	JWTSigningKey string

	// Analyzer policy knobs; see pkg/cnp.
	ChecksumEnabled bool
	CenturyPolicy   cnp.CenturyPolicy

	RateLimit RateLimitConfig
}

// RedisConfig captures Redis connection settings. An empty URL disables
// Redis and the in-memory fallbacks are used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RateLimitConfig tunes the intake rate limiter.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("PRAXIS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	policy := cnp.CenturyFixed
	if os.Getenv("CNP_CENTURY_POLICY") == string(cnp.CenturyHeuristic) {
		policy = cnp.CenturyHeuristic
	}

	return Server{
		Addr:        addr,
		PostgresURL: os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		JWTSigningKey:   jwtSigningKey,
		ChecksumEnabled: os.Getenv("CNP_FORMAT_ONLY") != "true",
		CenturyPolicy:   policy,
		RateLimit: RateLimitConfig{
			Requests: envInt("RATE_LIMIT_REQUESTS", 120),
			Window:   time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
