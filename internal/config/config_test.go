package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "clinic"
password = "p@ss word"
dbname = "clinic"

[logs]
level = "debug"

[booking]
min_advance_minutes = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 60, cfg.Booking.MinAdvanceMinutes)
	assert.Equal(t, domain.DefaultMaxAdvanceDays, cfg.Booking.MaxAdvanceDays)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
[server]
http_prot = 9090
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"dbname", func(c *Config) { c.Database.DBName = "" }},
		{"idle conns", func(c *Config) { c.Database.MaxIdleConns = 50 }},
		{"metrics path", func(c *Config) { c.Metrics.Path = "" }},
		{"duration bounds", func(c *Config) { c.Booking.MaxDurationMinutes = 10 }},
		{"advance window", func(c *Config) { c.Booking.MaxAdvanceDays = 0 }},
		{"min advance above max", func(c *Config) { c.Booking.MinAdvanceMinutes = 2 * 24 * 60; c.Booking.MaxAdvanceDays = 1 }},
		{"slot duration", func(c *Config) { c.Booking.DefaultSlotDuration = 5 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDSN_EscapesCredentials(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "clinic", Password: "p@ss word", DBName: "clinic", SSLMode: "disable"}
	assert.Equal(t, "postgres://clinic:p%40ss%20word@db:5432/clinic?sslmode=disable", d.DSN())
}

func TestBookingPolicy(t *testing.T) {
	assert.Equal(t, domain.DefaultBookingPolicy(), Default().Booking.Policy())

	p := BookingConfig{MinDurationMinutes: 20, MaxDurationMinutes: 60, MinAdvanceMinutes: 30, MaxAdvanceDays: 7}.Policy()
	assert.Equal(t, 20*time.Minute, p.MinDuration)
	assert.Equal(t, 7*24*time.Hour, p.MaxAdvance)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, ResolvePath(""))

	t.Setenv(EnvConfigPath, "/etc/healthcare/config.toml")
	assert.Equal(t, "/etc/healthcare/config.toml", ResolvePath(""))
	assert.Equal(t, "local.toml", ResolvePath("local.toml"))
}
