package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - booking policy: defaults here, env overrides, then optional TOML file (BOOKING_POLICY_FILE)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Booking BookingConfig
	Worker  WorkerConfig
	Events  EventsConfig
	Tracing TracingConfig
	Metrics MetricsConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// BookingConfig carries the marketplace policy. Field tags double as the
// TOML keys of the optional policy file.
type BookingConfig struct {
	PolicyFile string `envconfig:"BOOKING_POLICY_FILE" toml:"-"`

	TimeZone                  string  `envconfig:"BOOKING_TIMEZONE" default:"UTC" toml:"time_zone"`
	PlatformFeeRate           float64 `envconfig:"BOOKING_PLATFORM_FEE_RATE" default:"0.05" toml:"platform_fee_rate"`
	OwnerCommissionRate       float64 `envconfig:"BOOKING_OWNER_COMMISSION_RATE" default:"0.90" toml:"owner_commission_rate"`
	CancellationFloorHours    float64 `envconfig:"BOOKING_CANCELLATION_FLOOR_HOURS" default:"24" toml:"cancellation_floor_hours"`
	EarlyRefundThresholdHours float64 `envconfig:"BOOKING_EARLY_REFUND_THRESHOLD_HOURS" default:"48" toml:"early_refund_threshold_hours"`
	EarlyRefundFraction       float64 `envconfig:"BOOKING_EARLY_REFUND_FRACTION" default:"0.80" toml:"early_refund_fraction"`
	LateRefundFraction        float64 `envconfig:"BOOKING_LATE_REFUND_FRACTION" default:"0.50" toml:"late_refund_fraction"`
	MaxRecurrenceOccurrences  int     `envconfig:"BOOKING_MAX_RECURRENCE_OCCURRENCES" default:"366" toml:"max_recurrence_occurrences"`
	IdempotencyTTL            string  `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h" toml:"idempotency_ttl"`
}

// WorkerConfig drives the background jobs. ClaimLease is how long a claimed
// outbox job may stay unsettled before another run takes it over.
type WorkerConfig struct {
	Enabled         bool          `envconfig:"WORKER_ENABLED" default:"true"`
	OutboxSchedule  string        `envconfig:"WORKER_OUTBOX_SCHEDULE" default:"@every 10s"`
	CleanupSchedule string        `envconfig:"WORKER_CLEANUP_SCHEDULE" default:"@hourly"`
	BatchSize       int32         `envconfig:"WORKER_BATCH_SIZE" default:"50"`
	MaxAttempts     int32         `envconfig:"WORKER_MAX_ATTEMPTS" default:"8"`
	ClaimLease      time.Duration `envconfig:"WORKER_CLAIM_LEASE" default:"5m"`
}

type EventsConfig struct {
	AMQPURL  string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"venue_booking.events"`
}

type TracingConfig struct {
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	Insecure    bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"venue-booking"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1.0"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

var ErrInvalidBookingPolicy = errors.New("invalid booking policy")

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func (c BookingConfig) IdempotencyTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.IdempotencyTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

func (c BookingConfig) Validate() error {
	inUnit := func(v float64) bool { return v >= 0 && v <= 1 }
	switch {
	case !inUnit(c.PlatformFeeRate), !inUnit(c.OwnerCommissionRate):
		return fmt.Errorf("%w: rates must be within [0,1]", ErrInvalidBookingPolicy)
	case c.PlatformFeeRate+c.OwnerCommissionRate > 1:
		return fmt.Errorf("%w: platform fee and owner commission exceed the total", ErrInvalidBookingPolicy)
	case !inUnit(c.EarlyRefundFraction), !inUnit(c.LateRefundFraction):
		return fmt.Errorf("%w: refund fractions must be within [0,1]", ErrInvalidBookingPolicy)
	case c.CancellationFloorHours > c.EarlyRefundThresholdHours:
		return fmt.Errorf("%w: cancellation floor is after the early refund threshold", ErrInvalidBookingPolicy)
	case c.MaxRecurrenceOccurrences <= 0:
		return fmt.Errorf("%w: max recurrence occurrences must be positive", ErrInvalidBookingPolicy)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBookingPolicy, err)
	}
	return nil
}

// LoadPolicyFile overlays the keys present in a TOML file onto the booking config.
func LoadPolicyFile(path string, base BookingConfig) (BookingConfig, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return BookingConfig{}, fmt.Errorf("failed to decode booking policy file %s: %w", path, err)
	}
	cfg.PolicyFile = path
	return cfg, nil
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if cfg.Booking.PolicyFile != "" {
		cfg.Booking, err = LoadPolicyFile(cfg.Booking.PolicyFile, cfg.Booking)
		if err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		TimeZone:                  "UTC",
		PlatformFeeRate:           0.05,
		OwnerCommissionRate:       0.90,
		CancellationFloorHours:    24,
		EarlyRefundThresholdHours: 48,
		EarlyRefundFraction:       0.80,
		LateRefundFraction:        0.50,
		MaxRecurrenceOccurrences:  366,
		IdempotencyTTL:            "24h",
	}
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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-venue-booking",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Booking: DefaultBookingConfig(),
		Worker: WorkerConfig{
			Enabled:         false,
			OutboxSchedule:  "@every 1s",
			CleanupSchedule: "@hourly",
			BatchSize:       10,
			MaxAttempts:     3,
			ClaimLease:      time.Minute,
		},
		Events: EventsConfig{
			Exchange: "venue_booking.events",
		},
		Tracing: TracingConfig{
			ServiceName: "venue-booking-test",
			SampleRatio: 1.0,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}
