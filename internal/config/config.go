package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"

	"postalform/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	ServiceName string       `envconfig:"SERVICE_NAME" default:"postalform"`
	Environment string       `envconfig:"ENV" default:"development"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoggerConfig is the logger.Config derived from the base settings.
func (c *BaseConfig) LoggerConfig() logger.Config {
	env := c.Environment
	if c.IsDevelopment() {
		env = EnvDevelopment
	}
	return logger.Config{
		Service:     c.ServiceName,
		Environment: env,
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
	}
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}
