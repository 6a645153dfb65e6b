package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "db.local"
port = 5432
user = "app"
password = "secret"
dbname = "booking"

[auth]
admin_token = "token-123"

[booking]
default_duration_minutes = 30
slot_step_minutes = 10
default_hours = "10:00 - 19:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "token-123", cfg.Auth.AdminToken)
	assert.Equal(t, 30, cfg.Booking.DefaultDurationMinutes)
	assert.Equal(t, 10, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, "10:00 - 19:00", cfg.Booking.DefaultHours)

	assert.Equal(t,
		"host=db.local port=5432 user=app password=secret dbname=booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "myb-booking-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 25, cfg.Booking.DefaultDurationMinutes)
	assert.Equal(t, 5, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, "09:00 - 20:00", cfg.Booking.DefaultHours)

	// Админский токен по умолчанию не задан: админские маршруты закрыты
	assert.Empty(t, cfg.Auth.AdminToken)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dbname")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
