package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "sqlite:///./lanzar.db", cfg.Database.URL)
	assert.Equal(t, time.Second, cfg.Contact.ProcessingDelay)
	assert.Equal(t, int64(64<<10), cfg.Contact.MaxBodyBytes)
	assert.Equal(t, SinkLog, cfg.Contact.Sink)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Same(t, cfg, Get())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("CONTACT_PROCESSING_DELAY", "250ms")
	t.Setenv("SUBMISSION_SINK", "DISCARD")
	t.Setenv("ALLOWED_HOSTS", "https://lanzar.in, https://www.lanzar.in")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 250*time.Millisecond, cfg.Contact.ProcessingDelay)
	assert.Equal(t, SinkDiscard, cfg.Contact.Sink)
	assert.Equal(t, []string{"https://lanzar.in", "https://www.lanzar.in"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("CONTACT_PROCESSING_DELAY", "soon")
	t.Setenv("CONTACT_MAX_BODY_BYTES", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Contact.ProcessingDelay)
	assert.Equal(t, int64(64<<10), cfg.Contact.MaxBodyBytes)
}

func TestLoad_RejectsUnknownSink(t *testing.T) {
	t.Setenv("SUBMISSION_SINK", "crm")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported SUBMISSION_SINK")
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	t.Setenv("CONTACT_PROCESSING_DELAY", "-1s")

	_, err := Load()
	assert.ErrorContains(t, err, "CONTACT_PROCESSING_DELAY")
}

func TestDatabaseConfig(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		postgres bool
		path     string
	}{
		{name: "sqlite url", url: "sqlite:///./lanzar.db", path: "./lanzar.db"},
		{name: "sqlite memory", url: "sqlite:///:memory:", path: ":memory:"},
		{name: "bare path", url: "/var/lib/lanzar.db", path: "/var/lib/lanzar.db"},
		{name: "postgres", url: "postgres://lanzar:secret@db:5432/lanzar?sslmode=disable", postgres: true},
		{name: "postgresql", url: "postgresql://db/lanzar", postgres: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DatabaseConfig{URL: tt.url}
			assert.Equal(t, tt.postgres, cfg.IsPostgres())
			if tt.postgres {
				assert.Equal(t, tt.url, cfg.PostgresDSN())
			} else {
				assert.Equal(t, tt.path, cfg.SQLitePath())
			}
		})
	}
}
