// README: Config loader with env defaults for HTTP, DB, Redis, weather, Kafka.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN renders the pgx connection string for the configured database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type NegotiationConfig struct {
	MinOfferRatio float64
	MaxOfferRatio float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB    DBConfig
	Redis struct {
		Addr string
	}
	Weather struct {
		APIKey    string
		Freshness time.Duration
	}
	Maps struct {
		APIKey string
	}
	Kafka struct {
		Brokers []string
		Topic   string
	}
	Negotiation NegotiationConfig
	LogLevel    string
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FARELINE_HTTP_ADDR", ":8080")

	cfg.DB.Host = envOrDefault("FARELINE_DB_HOST", "localhost")
	cfg.DB.Port = envOrDefaultInt("FARELINE_DB_PORT", 5432)
	cfg.DB.User = envOrDefault("FARELINE_DB_USER", "postgres")
	cfg.DB.Password = envOrDefault("FARELINE_DB_PASSWORD", "postgres")
	cfg.DB.Name = envOrDefault("FARELINE_DB_NAME", "fareline")

	cfg.Redis.Addr = envOrDefault("FARELINE_REDIS_ADDR", "localhost:6379")

	cfg.Weather.APIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.Weather.Freshness = envOrDefaultDuration("FARELINE_WEATHER_TTL", 30*time.Minute)

	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = splitAndTrim(brokers)
	}
	cfg.Kafka.Topic = envOrDefault("FARELINE_KAFKA_TOPIC", "negotiation-events")

	cfg.Negotiation.MinOfferRatio = envOrDefaultFloat("FARELINE_MIN_OFFER_RATIO", 0.70)
	cfg.Negotiation.MaxOfferRatio = envOrDefaultFloat("FARELINE_MAX_OFFER_RATIO", 1.10)

	cfg.LogLevel = envOrDefault("FARELINE_LOG_LEVEL", "info")

	if cfg.Negotiation.MinOfferRatio <= 0 || cfg.Negotiation.MaxOfferRatio < cfg.Negotiation.MinOfferRatio {
		return cfg, fmt.Errorf("invalid offer ratio band [%v, %v]", cfg.Negotiation.MinOfferRatio, cfg.Negotiation.MaxOfferRatio)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(v string) []string {
	raw := strings.Split(v, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
