package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	VenueFile      string        // path to the venues.yaml file
	ReloadInterval time.Duration // interval to reload venues.yaml (default: 24h)

	UpstreamURL     string        // base URL of the availability gateway (ex: https://ayo.co.id)
	UpstreamTimeout time.Duration // per-call timeout for upstream requests

	DayEndpoint string        // URL the scanner posts {venueId,date} to; defaults to this process
	CacheTTL    time.Duration // how long a normalized day payload stays fresh (default: 60s)
	ItemDelay   time.Duration // pause between consecutive day fetches (default: 250ms)
	RetryDelay  time.Duration // pause before the single 429/5xx retry (default: 1s)

	// Redis (optional; empty RedisAddr => in-memory cache only)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	// Load .env if present; environment always wins.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("COURTSCAN_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("COURTSCAN_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("COURTSCAN_LOG_LEVEL", "info"),
		PrettyLog: mustBool("COURTSCAN_PRETTY_LOG", true),

		// Venue source
		VenueFile:      getenv("COURTSCAN_VENUE_FILE", "/app/venues.yaml"),
		ReloadInterval: mustDuration("COURTSCAN_RELOAD_INTERVAL", 24*time.Hour),

		// Upstream gateway
		UpstreamURL:     strings.TrimRight(requireEnv("COURTSCAN_UPSTREAM_URL"), "/"),
		UpstreamTimeout: mustDuration("COURTSCAN_UPSTREAM_TIMEOUT", 10*time.Second),

		// Scan cadence and cache
		DayEndpoint: getenv("COURTSCAN_DAY_ENDPOINT", "http://localhost:8080/api/day"),
		CacheTTL:    mustDuration("COURTSCAN_CACHE_TTL", 60*time.Second),
		ItemDelay:   mustDuration("COURTSCAN_ITEM_DELAY", 250*time.Millisecond),
		RetryDelay:  mustDuration("COURTSCAN_RETRY_DELAY", time.Second),

		// Redis settings
		RedisAddr:           getenv("COURTSCAN_REDIS_ADDR", ""),
		RedisUser:           getenv("COURTSCAN_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("COURTSCAN_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("COURTSCAN_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
