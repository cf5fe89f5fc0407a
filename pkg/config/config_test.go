package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stoqr", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 5, cfg.QR.Margin)
	assert.Equal(t, 250, cfg.QR.Size)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("QR_HOST", "https://stoqr.test/s/")
	t.Setenv("QR_SIZE", "300")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://stoqr.test/s/", cfg.QR.Host)
	assert.Equal(t, 300, cfg.QR.Size)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "stoqr", Password: "p@ss/word", DBName: "stoqr", SSLMode: "disable"}
	assert.Equal(t, "postgres://stoqr:p%40ss%2Fword@db:5432/stoqr?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestLoad_AdminRequiresPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("ADMIN_EMAIL", "admin@stoqr.test")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ADMIN_PASSWORD", "secreto1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "admin@stoqr.test", cfg.Admin.Email)
	assert.Equal(t, "Administrador", cfg.Admin.Name)
}
