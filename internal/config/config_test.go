package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_PRETTY", "DEV_MODE", "CORS_ALLOWED_ORIGINS",
		"GEMINI_API_KEY", "GEMINI_TEXT_MODEL", "GEMINI_IMAGE_MODEL",
		"IMAGERY_ENABLED", "GENERATION_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "gemini-2.0-flash", cfg.TextModel)
	assert.Equal(t, "imagen-3.0-generate-002", cfg.ImageModel)
	assert.False(t, cfg.ImageryEnabled)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
	assert.False(t, cfg.GenerationConfigured())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://npcc.example ,")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("IMAGERY_ENABLED", "1")
	t.Setenv("GENERATION_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, []string{"http://localhost:3000", "https://npcc.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.GenerationConfigured())
	assert.True(t, cfg.ImageryEnabled)
	assert.Equal(t, 45*time.Second, cfg.GenerationTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DEV_MODE", "maybe")
	t.Setenv("GENERATION_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 5000, GenerationTimeout: time.Second, CORSAllowedOrigins: []string{"*"}}
	assert.NoError(t, valid.Validate())

	badPort := valid
	badPort.Port = 70000
	assert.Error(t, badPort.Validate())

	badTimeout := valid
	badTimeout.GenerationTimeout = -time.Second
	assert.Error(t, badTimeout.Validate())

	noOrigins := valid
	noOrigins.CORSAllowedOrigins = nil
	assert.Error(t, noOrigins.Validate())
}

func TestLoad_RejectsOutOfRangePort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "0")

	_, err := Load()
	assert.Error(t, err)
}
