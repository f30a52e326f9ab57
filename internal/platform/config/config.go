// Package config builds the process configuration from environment
// variables so main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RedisConfig holds connection settings for the statistics cache. An empty
// URL disables Redis entirely.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds the audit relay's broker settings. No brokers disables
// the relay; outbox rows then wait until one is configured.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// Server captures the whole process configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	PostgresDSN   string
	Redis         RedisConfig
	Kafka         KafkaConfig
	StatsCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("KLEINGARTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default; override in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("KLEINGARTEN_KAFKA_BROKERS"); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
	}
	auditTopic := os.Getenv("KLEINGARTEN_AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "kleingarten.plot-audit"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		PostgresDSN:   os.Getenv("KLEINGARTEN_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("KLEINGARTEN_REDIS_URL"),
			PoolSize:     envInt("KLEINGARTEN_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("KLEINGARTEN_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDuration("KLEINGARTEN_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("KLEINGARTEN_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("KLEINGARTEN_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    brokers,
			AuditTopic: auditTopic,
		},
		StatsCacheTTL: envDuration("KLEINGARTEN_STATS_TTL", 5*time.Minute),
	}
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envDuration(name string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(name); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}
