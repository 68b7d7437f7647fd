package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Configuration is read from environment variables (and a `.env` file, which
	godotenv/autoload merges into the process environment on import).

	- Env vars are read using the prefix V1API_
	- The prefix is removed and the rest is lowercased
	- A double underscore separates nesting levels:
	  V1API_SERVER__PORT -> server.port -> Config.Server.Port

	Values are unmarshalled on top of DefaultConfig(), so every key is optional
	and a bare `v1api serve` starts a working server on :4400.
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "V1API_"

// Version is reported by the root and health endpoints. Overridable at build
// time with -ldflags "-X github.com/deppfellow/v1-api/internal/config.Version=...".
var Version = "1.0.0"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Metrics       MetricsConfig        `koanf:"metrics" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Client        ClientConfig         `koanf:"client" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig holds HTTP server settings. Timeouts are expressed in seconds.
type ServerConfig struct {
	Host               string   `koanf:"host"`
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,gt=0"`
	RequestTimeout     int      `koanf:"request_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit of zero disables the limiter on /api routes.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
	RateBurst int     `koanf:"rate_burst" validate:"gte=0"`
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// DatabaseConfig is only required when Enabled is true. Without a database
// orders are kept in process memory.
type DatabaseConfig struct {
	Enabled         bool   `koanf:"enabled"`
	AutoMigrate     bool   `koanf:"auto_migrate"`
	Host            string `koanf:"host" validate:"required_if=Enabled true"`
	Port            int    `koanf:"port" validate:"required_if=Enabled true"`
	User            string `koanf:"user" validate:"required_if=Enabled true"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_if=Enabled true"`
	SSLMode         string `koanf:"ssl_mode" validate:"required_if=Enabled true"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig enables Redis (counters, background jobs, health check) when
// Address is set.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// Enabled reports whether a Redis address has been configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

const (
	MetricsStoreMemory = "memory"
	MetricsStoreRedis  = "redis"
)

type MetricsConfig struct {
	Store     string `koanf:"store" validate:"required,oneof=memory redis"`
	KeyPrefix string `koanf:"key_prefix" validate:"required"`
}

// IntegrationConfig groups credentials of third-party providers.
type IntegrationConfig struct {
	LoopsBaseURL string `koanf:"loops_base_url" validate:"omitempty,url"`
	LoopsFormID  string `koanf:"loops_form_id"`
	LoopsAPIKey  string `koanf:"loops_api_key"`

	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from" validate:"required"`
}

// ClientConfig configures the typed API client used by `v1api client`.
type ClientConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// DefaultConfig returns a configuration that runs the API with no external
// dependencies.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               "4400",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			RequestTimeout:     30,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
		Metrics: MetricsConfig{
			Store:     MetricsStoreMemory,
			KeyPrefix: "v1api:metrics",
		},
		Integration: IntegrationConfig{
			LoopsBaseURL: "https://app.loops.so",
			EmailFrom:    "V1 API <onboarding@resend.dev>",
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:4400",
			Timeout: 30 * time.Second,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey turns V1API_SERVER__PORT into server.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// LoadConfig reads the environment, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// StringToSliceHookFunc lets V1API_SERVER__CORS_ALLOWED_ORIGINS=a,b fill a []string.
	err := k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           mainConfig,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = "v1-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs struct tag validation and the cross-section rules tags cannot
// express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Metrics.Store == MetricsStoreRedis && !c.Redis.Enabled() {
		return fmt.Errorf("metrics store %q requires redis.address", MetricsStoreRedis)
	}

	if c.Observability == nil {
		return fmt.Errorf("observability config is required")
	}

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}
