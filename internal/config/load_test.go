package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanpro/settings/internal/common/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDotenvFileFillsMissingVariables(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("TIME_ZONE", "UTC")

	envFile := writeFile(t, ".env", "TIME_ZONE=Africa/Lagos\nLANGUAGE_CODE=fr-fr\n")

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)

	// The process environment wins over the .env file.
	assert.Equal(t, "UTC", cfg.Locale.TimeZone)
	// Variables the environment leaves unset come from the file.
	assert.Equal(t, "fr-fr", cfg.Locale.LanguageCode)
}

func TestDotenvFileCanSatisfyRequiredSettings(t *testing.T) {
	clearEnv(t)

	envFile := writeFile(t, ".env",
		"SECRET_KEY=from-dotenv\n"+
			"EMAIL_HOST_USER=mailer@example.com\n"+
			"EMAIL_HOST_PASSWORD=mailer-password\n"+
			"TWILIO_ACCOUNT_SID=AC0000000000000000000000000000000f\n"+
			"TWILIO_AUTH_TOKEN=twilio-token\n"+
			"TWILIO_FROM_NUMBER=+2348012345678\n")

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Security.SecretKey)
	assert.Equal(t, SourceEnvironment, cfg.Source("SECRET_KEY"))
}

func TestMissingExplicitEnvFileFails(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	_, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "no-such.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such.env")
}

func TestOverridesFileApplied(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("TIME_ZONE", "UTC")

	overrides := writeFile(t, "overrides.json", `{
		"locale": {"timeZone": "Europe/Berlin", "languageCode": "de-de"},
		"session": {"cookieAge": 1800}
	}`)

	cfg, err := Load(Options{OverridesFile: overrides})
	require.NoError(t, err)

	// The environment wins over the overrides file.
	assert.Equal(t, "UTC", cfg.Locale.TimeZone)
	assert.Equal(t, SourceEnvironment, cfg.Source("TIME_ZONE"))
	// File values land where the environment is silent.
	assert.Equal(t, "de-de", cfg.Locale.LanguageCode)
	assert.Equal(t, SourceFile, cfg.Source("LANGUAGE_CODE"))
	assert.Equal(t, 1800, cfg.Session.CookieAge)
	assert.Equal(t, SourceFile, cfg.Source("SESSION_COOKIE_AGE"))
}

func TestOverridesFileCanSatisfyRequiredSettings(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("SECRET_KEY", "")

	overrides := writeFile(t, "overrides.json", `{"security": {"secretKey": "from-file"}}`)

	cfg, err := Load(Options{OverridesFile: overrides})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Security.SecretKey)
	assert.Equal(t, SourceFile, cfg.Source("SECRET_KEY"))
}

func TestEmptyRequiredValuesInOverridesFileRejected(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("EMAIL_HOST_USER", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	overrides := writeFile(t, "overrides.json", `{
		"email": {"hostUser": ""},
		"sms": {"authToken": ""}
	}`)

	_, err := Load(Options{OverridesFile: overrides})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_HOST_USER")
	assert.Contains(t, err.Error(), "TWILIO_AUTH_TOKEN")
	assert.ErrorIs(t, err, errors.ErrMissingSetting)
}

func TestOverridesFileUnknownFieldRejected(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	overrides := writeFile(t, "overrides.json", `{"security": {"secertKey": "typo"}}`)

	_, err := Load(Options{OverridesFile: overrides})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrOverridesFile)
}

func TestOverridesFileSchemaViolationRejected(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	overrides := writeFile(t, "overrides.json", `{"security": {"debug": "yes"}}`)

	_, err := Load(Options{OverridesFile: overrides})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrOverridesFile)
}

func TestOverridesFileSchemaFieldIgnored(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	overrides := writeFile(t, "overrides.json", `{
		"$schema": "./schema.json",
		"cache": {"redisUrl": "redis://cache.internal:6379/2"}
	}`)

	cfg, err := Load(Options{OverridesFile: overrides})
	require.NoError(t, err)
	assert.Equal(t, "redis://cache.internal:6379/2", cfg.Cache.RedisURL)
}
