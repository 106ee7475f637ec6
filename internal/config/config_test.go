package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GIUSON_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "uploads/resumes", cfg.Storage.Dir)
	assert.Equal(t, "none", cfg.Mail.Provider)
	assert.Equal(t, "IL", cfg.Phone.DefaultRegion)
	assert.Equal(t, int64(10<<20), cfg.MaxResumeBytes)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "giuson.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: sqlite
  path: /var/lib/giuson/giuson.db
jwt:
  expiry_period: 30m
server:
  port: "9000"
storage:
  driver: minio
  minio:
    endpoint: minio:9000
    bucket: cvs
`), 0o600))

	t.Setenv("GIUSON_CONFIG", path)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("MINIO_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/var/lib/giuson/giuson.db", cfg.Database.Path)
	assert.Equal(t, 30*time.Minute, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "9100", cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.Equal(t, "minio:9000", cfg.Storage.Minio.Endpoint)
	assert.Equal(t, "cvs", cfg.Storage.Minio.Bucket)
	assert.True(t, cfg.Storage.Minio.Secure)
	assert.Equal(t, "uploads/resumes", cfg.Storage.Dir, "untouched values keep their defaults")
}

func TestLoadRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("GIUSON_CONFIG", "")

	t.Run("database", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("mail", func(t *testing.T) {
		t.Setenv("MAIL_PROVIDER", "pigeon")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	cfg := defaults()
	cfg.Database.Password = "secret"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=giuson sslmode=disable search_path=public",
		cfg.DSN(),
	)
}

func TestDefaultJWTSecretIsDetected(t *testing.T) {
	t.Setenv("GIUSON_CONFIG", "")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.True(t, cfg.UsesDefaultJWTSecret())

	t.Setenv("JWT_SECRET", "a-long-random-deployment-secret")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.UsesDefaultJWTSecret())
}
