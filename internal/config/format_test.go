package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesRedactSecrets(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	cfg := mustLoad(t)

	byName := map[string]Attribute{}
	for _, a := range cfg.Attributes() {
		byName[a.Name] = a
	}

	for _, secret := range []string{"SECRET_KEY", "EMAIL_HOST_PASSWORD", "TWILIO_AUTH_TOKEN"} {
		assert.Equalf(t, RedactedValue, byName[secret].Value, "attribute %s", secret)
	}
	// Unset secrets stay visibly empty rather than pretending to hold a value.
	assert.Equal(t, "", byName["DATABASE_PASSWORD"].Value)
	// Non-secrets pass through.
	assert.Equal(t, "smtp.gmail.com", byName["EMAIL_HOST"].Value)
}

func TestFormatTextListsEverySetting(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	cfg := mustLoad(t)

	out := cfg.FormatText()
	for _, s := range Settings() {
		assert.Contains(t, out, s.Name)
	}
	assert.NotContains(t, out, "test-secret-key")
	assert.NotContains(t, out, "twilio-token")
}

func TestFormatJSONRedacts(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	cfg := mustLoad(t)

	out, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.Contains(t, out, RedactedValue)
	assert.NotContains(t, out, "test-secret-key")
	assert.NotContains(t, out, "mailer-password")
}

func TestWriteEnvTemplate(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteEnvTemplate(&b))
	out := b.String()

	for _, s := range Settings() {
		assert.Contains(t, out, s.Name+"=")
	}

	// Required settings are flagged and left blank.
	assert.Contains(t, out, "# required\nSECRET_KEY=\n")
	assert.Contains(t, out, "# required when DATABASE_ENGINE=postgres\nDATABASE_USER=\n")
	// Optional settings carry their documented default.
	assert.Contains(t, out, "EMAIL_HOST=smtp.gmail.com")
	assert.Contains(t, out, "TIME_ZONE=Africa/Lagos")
	// The dynamic default is not rendered as a literal value.
	assert.Contains(t, out, "SESSION_COOKIE_SECURE=\n")
	// Consumer group headers are present.
	assert.Contains(t, out, "# --- framework-security ---")
	assert.Contains(t, out, "# --- sms ---")
}
