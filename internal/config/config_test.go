package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscription-api/internal/config/configs"
)

func noDotenv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, configs.StateBackendPostgres, cfg.Rotation.Backend)
	assert.Equal(t, "uniform", cfg.Rotation.Policy)
	assert.Equal(t, "current_link_id", cfg.Rotation.Key)
	assert.Zero(t, cfg.Rotation.Hold)
	assert.Equal(t, 3, cfg.Rotation.CASAttempts)
	assert.Equal(t, "https://gracedesalpes.com/fallback", cfg.Rotation.FallbackURL)
	assert.Equal(t, 256, cfg.Attribution.Buffer)
	assert.Equal(t, 2, cfg.Attribution.Workers)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, "inscription:", cfg.Redis.KeyPrefix)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5433/app?sslmode=disable")
	t.Setenv("ROTATION_STATE_BACKEND", "redis")
	t.Setenv("ROTATION_POLICY", "personalized_first")
	t.Setenv("ROTATION_HOLD", "10m")
	t.Setenv("REDIS_ADDRESS", "cache:6380")
	t.Setenv("ATTRIBUTION_TIMEOUT", "750ms")

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5433", cfg.Psql.Addr.Host)
	assert.Equal(t, configs.StateBackendRedis, cfg.Rotation.Backend)
	assert.Equal(t, "personalized_first", cfg.Rotation.Policy)
	assert.Equal(t, 10*time.Minute, cfg.Rotation.Hold)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 750*time.Millisecond, cfg.Attribution.Timeout)
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_JWT_SECRET=from-file\nROTATION_KEY=homepage\n"), 0o600))
	t.Setenv("ROTATION_KEY", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("AUTH_JWT_SECRET") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "from-env", cfg.Rotation.Key, "process environment wins over the file")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"AUTH_JWT_SECRET": ""}},
		{name: "unknown backend", env: map[string]string{"ROTATION_STATE_BACKEND": "memcached"}},
		{name: "unknown policy", env: map[string]string{"ROTATION_POLICY": "random"}},
		{name: "zero cas attempts", env: map[string]string{"ROTATION_CAS_ATTEMPTS": "0"}},
		{name: "negative hold", env: map[string]string{"ROTATION_HOLD": "-1s"}},
		{name: "bad duration", env: map[string]string{"ROTATION_HOLD": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_JWT_SECRET", "test-secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(noDotenv(t))
			assert.Error(t, err)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"err":     "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range tests {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel().String(), in)
	}
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
}

func TestLoggerNewFormat(t *testing.T) {
	var buf bytes.Buffer
	configs.Logger{Level: "info", Format: "json"}.New(&buf).Info("hello", "k", "v")
	assert.JSONEq(t, `{"level":"INFO","msg":"hello","k":"v"}`, stripTime(t, buf.Bytes()))

	buf.Reset()
	configs.Logger{Level: "warn"}.New(&buf).Info("dropped")
	assert.Empty(t, buf.String())
}

func stripTime(t *testing.T, line []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(line, &m))
	delete(m, "time")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
