package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:""`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	SlotCacheTTL  time.Duration `envconfig:"REDIS_SLOT_CACHE_TTL" default:"30s"`
	RateLimit     int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	RateWindow    time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	RateKeyPrefix string        `envconfig:"RATE_LIMIT_PREFIX" default:"ratelimit"`
}

// Enabled reports whether a redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type AMQPConfig struct {
	URL          string        `envconfig:"AMQP_URL" default:""`
	Queue        string        `envconfig:"AMQP_QUEUE" default:"reservation.events"`
	PollInterval time.Duration `envconfig:"NOTIFICATION_POLL_INTERVAL" default:"5s"`
	BatchSize    int32         `envconfig:"NOTIFICATION_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

type BookingConfig struct {
	TimeZone       string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Tokyo"`
	RefundTiers    string        `envconfig:"BOOKING_REFUND_TIERS" default:"24h:100,2h:50"`
	IdempotencyTTL time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

// Location falls back to UTC for an unknown zone name.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence.
	if _, statErr := os.Stat(".env"); statErr == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		return fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.Booking.TimeZone, err)
	}
	if c.Booking.IdempotencyTTL <= 0 {
		return fmt.Errorf("BOOKING_IDEMPOTENCY_TTL must be positive")
	}
	if c.Redis.Enabled() && (c.Redis.RateLimit <= 0 || c.Redis.RateWindow <= 0) {
		return fmt.Errorf("rate limit needs positive RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW")
	}
	if c.AMQP.PollInterval <= 0 || c.AMQP.BatchSize <= 0 || c.AMQP.MaxAttempts <= 0 {
		return fmt.Errorf("notification poll interval, batch size and max attempts must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Redis: RedisConfig{
			SlotCacheTTL:  30 * time.Second,
			RateLimit:     1000,
			RateWindow:    time.Minute,
			RateKeyPrefix: "ratelimit-test",
		},
		AMQP: AMQPConfig{
			Queue:        "reservation.events.test",
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
		},
		Booking: BookingConfig{
			TimeZone:       "Asia/Tokyo",
			RefundTiers:    "24h:100,2h:50",
			IdempotencyTTL: time.Hour,
		},
	}
}
