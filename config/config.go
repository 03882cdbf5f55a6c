package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env       string `mapstructure:"env"`
	Port      string `mapstructure:"port"`
	APIPrefix string `mapstructure:"api_prefix"`

	DatabaseURL string `mapstructure:"database_url"`
	DBHost      string `mapstructure:"db_host"`
	DBUser      string `mapstructure:"db_user"`
	DBPassword  string `mapstructure:"db_password"`
	DBName      string `mapstructure:"db_name"`
	DBPort      string `mapstructure:"db_port"`
	SQLiteDSN   string `mapstructure:"sqlite_dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`

	SecretKey      string        `mapstructure:"secret_key"`
	TokenIssuer    string        `mapstructure:"token_issuer"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	BcryptCost     int           `mapstructure:"bcrypt_cost"`

	FirstSuperuserEmail    string `mapstructure:"first_superuser_email"`
	FirstSuperuserPassword string `mapstructure:"first_superuser_password"`

	CORSOrigins    []string `mapstructure:"cors_origins"`
	LogLevel       string   `mapstructure:"log_level"`
	TracingEnabled bool     `mapstructure:"tracing_enabled"`
	ServiceName    string   `mapstructure:"service_name"`
}

var defaults = map[string]any{
	"env":                      "dev",
	"port":                     "8080",
	"api_prefix":               "/api/v1",
	"database_url":             "",
	"db_host":                  "localhost",
	"db_user":                  "",
	"db_password":              "",
	"db_name":                  "",
	"db_port":                  "5432",
	"sqlite_dsn":               "file::memory:?cache=shared&_fk=1",
	"auto_migrate":             true,
	"secret_key":               "",
	"token_issuer":             "gin-items",
	"access_token_ttl":         "60m",
	"bcrypt_cost":              10,
	"first_superuser_email":    "",
	"first_superuser_password": "",
	"cors_origins":             "*",
	"log_level":                "info",
	"tracing_enabled":          false,
	"service_name":             "gin-items",
}

// Load reads .env, an optional YAML file named by CONFIG_FILE and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	Initialize()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitOrigins(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("SECRET_KEY is required")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	if (c.FirstSuperuserEmail == "") != (c.FirstSuperuserPassword == "") {
		return errors.New("FIRST_SUPERUSER_EMAIL and FIRST_SUPERUSER_PASSWORD must be set together")
	}
	return nil
}

func (c *Config) HTTPAddress() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

// PostgresDSN builds a DSN from DB_* settings. 本番環境ではsslmode=require
func (c *Config) PostgresDSN() string {
	sslmode := "disable"
	if c.IsProduction() {
		sslmode = "require"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		sslmode,
	)
}

func splitOrigins(in []string) []string {
	var out []string
	for _, part := range in {
		for _, origin := range strings.Split(part, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
