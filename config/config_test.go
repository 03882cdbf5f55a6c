package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("secret_key: from-file\napi_prefix: /v2\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SecretKey)
	assert.Equal(t, "/v2", cfg.APIPrefix)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_SuperuserPair(t *testing.T) {
	cfg := &Config{SecretKey: "s", AccessTokenTTL: time.Minute, FirstSuperuserEmail: "admin@example.com"}
	assert.Error(t, cfg.Validate())

	cfg.FirstSuperuserPassword = "changethis"
	assert.NoError(t, cfg.Validate())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "app", DBPassword: "pw", DBName: "items", DBPort: "5432"}
	assert.Contains(t, cfg.PostgresDSN(), "sslmode=disable")

	cfg.Env = "prod"
	assert.Contains(t, cfg.PostgresDSN(), "sslmode=require")
	assert.Contains(t, cfg.PostgresDSN(), "dbname=items")
}
