package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones without a system tz database

	"github.com/spf13/viper"

	"date-arithmetic-service/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Date arithmetic
	Date DateConfig

	// Edge
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is honoured. Empty trusts none.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DateConfig struct {
	// IANA name of the location calendar dates are computed in.
	Timezone string
}

type RateLimitConfig struct {
	RequestsPerMin int // <= 0 disables the limiter
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit YAML file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	// PORT is the conventional override used by container platforms.
	if raw := strings.TrimSpace(v.GetString("port")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("PORT %q is not a number", raw)
		}
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Date.Timezone = v.GetString("date.timezone")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Split lists since viper might not parse arrays seamlessly from env
	cfg.HTTPServer.TrustedProxies = splitList(v.GetString("http_server.trusted_proxies"))
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.shutdown_timeout", "5s")
	v.SetDefault("http_server.trusted_proxies", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("date.timezone", "UTC")
	v.SetDefault("rate_limit.requests_per_min", 600)
	v.SetDefault("cors.allowed_origins", "*")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port < 1 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.ShutdownTimeout <= 0 {
		return fmt.Errorf("http_server.shutdown_timeout must be positive")
	}
	if _, err := time.LoadLocation(cfg.Date.Timezone); err != nil {
		return fmt.Errorf("date.timezone: %w", err)
	}
	return nil
}
