// README: Config loader with env defaults for HTTP, ledger, journal sinks and logging.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	LedgerMemory = "memory"
	LedgerRedis  = "redis"
)

type LedgerConfig struct {
	Backend    string
	SessionTTL time.Duration
	SeatsSL    int
	Seats3A    int
}

type TatkalConfig struct {
	MaxSeats int
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Log struct {
		Level  string
		Format string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Kafka struct {
		Brokers []string
		Topic   string
	}
	Routes struct {
		File string
	}
	Ledger LedgerConfig
	Tatkal TatkalConfig
}

func Load() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("RAILSIM_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = envList("RAILSIM_CORS_ORIGINS")
	cfg.Log.Level = envOrDefault("RAILSIM_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("RAILSIM_LOG_FORMAT", "json")
	cfg.DB.DSN = os.Getenv("RAILSIM_DB_DSN")
	cfg.Redis.Addr = envOrDefault("RAILSIM_REDIS_ADDR", "localhost:6379")
	cfg.Kafka.Brokers = envList("RAILSIM_KAFKA_BROKERS")
	cfg.Kafka.Topic = envOrDefault("RAILSIM_KAFKA_TOPIC", "railsim.bookings")
	cfg.Routes.File = os.Getenv("RAILSIM_ROUTES_FILE")
	cfg.Ledger.Backend = strings.ToLower(envOrDefault("RAILSIM_LEDGER_BACKEND", LedgerMemory))

	var err error
	if cfg.Ledger.SessionTTL, err = envOrDefaultDuration("RAILSIM_SESSION_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Ledger.SeatsSL, err = envOrDefaultInt("RAILSIM_SEATS_SL", 5); err != nil {
		return Config{}, err
	}
	if cfg.Ledger.Seats3A, err = envOrDefaultInt("RAILSIM_SEATS_3A", 3); err != nil {
		return Config{}, err
	}
	if cfg.Tatkal.MaxSeats, err = envOrDefaultInt("RAILSIM_TATKAL_MAX_SEATS", 5); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Ledger.Backend {
	case LedgerMemory, LedgerRedis:
	default:
		return fmt.Errorf("config: unknown ledger backend %q", c.Ledger.Backend)
	}
	if c.Ledger.SeatsSL < 0 || c.Ledger.Seats3A < 0 {
		return fmt.Errorf("config: seat counts must be non-negative (SL=%d, 3A=%d)", c.Ledger.SeatsSL, c.Ledger.Seats3A)
	}
	if c.Ledger.SessionTTL < time.Second {
		return fmt.Errorf("config: session ttl must be at least 1s, got %s", c.Ledger.SessionTTL)
	}
	if c.Tatkal.MaxSeats < 0 {
		return fmt.Errorf("config: tatkal max seats must be non-negative, got %d", c.Tatkal.MaxSeats)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func envOrDefaultDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
