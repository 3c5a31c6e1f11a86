package config

import (
	"github.com/kelseyhightower/envconfig"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
	Health    HealthConfig     `envconfig:"HEALTH"`
}

type HttpServerConfig struct {
	Host         string `envconfig:"HOST" default:"0.0.0.0"`
	Port         int    `envconfig:"PORT" default:"8080"`
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"30"`
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"30"`
	IdleTimeout  int    `envconfig:"IDLE_TIMEOUT" default:"120"`

	ShutdownTimeout int   `envconfig:"SHUTDOWN_TIMEOUT" default:"30"`
	MaxBodyBytes    int64 `envconfig:"MAX_BODY_BYTES" default:"4096"`
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400"`
}

// HealthConfig tunes readiness checks. Durations are in seconds; a zero
// CacheTTL runs every check on every probe.
type HealthConfig struct {
	CheckTimeout int `envconfig:"CHECK_TIMEOUT" default:"2"`
	CacheTTL     int `envconfig:"CACHE_TTL" default:"5"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
