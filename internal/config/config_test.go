package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "recruitsss_db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, 5, cfg.AMQPRetries)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, float64(30), cfg.JWTAccessExpiry.Minutes())
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recruitsss")

	dsn := Load().DSN()
	assert.Contains(t, dsn, "host=pg")
	assert.Contains(t, dsn, "user=app")
	assert.Contains(t, dsn, "dbname=recruitsss")
	assert.Contains(t, dsn, "sslmode=disable")
}
