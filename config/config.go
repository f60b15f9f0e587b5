package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	configName = "config"

	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 12
	DefaultTokenHeader        = "x-access-token"

	// Bounds accepted by bcrypt.
	minBcryptCost = 4
	maxBcryptCost = 31
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           Timeouts `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

// Timeouts bounds each phase of an HTTP exchange. Zero means no limit.
type Timeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// SecretKey holds signing secrets.
type SecretKey struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig tunes credential hashing and where the session token travels.
type AuthConfig struct {
	BcryptCost  int    `json:"bcryptCost" yaml:"bcryptCost"`
	TokenHeader string `json:"tokenHeader" yaml:"tokenHeader"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New loads config.yaml from the working directory or a parent config dir, then environment overrides.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config](configName, configName, "../"+configName, "../../"+configName)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional settings left empty by the file and environment.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if strings.TrimSpace(cfg.Auth.TokenHeader) == "" {
		cfg.Auth.TokenHeader = DefaultTokenHeader
	}
}

func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be set")
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d out of range", cfg.HTTP.Port)
	}
	if cfg.Auth.BcryptCost < minBcryptCost || cfg.Auth.BcryptCost > maxBcryptCost {
		return errors.Errorf("auth.bcryptCost %d outside [%d, %d]", cfg.Auth.BcryptCost, minBcryptCost, maxBcryptCost)
	}

	return nil
}
