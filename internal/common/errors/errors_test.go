package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingErrorMessageNamesTheVariable(t *testing.T) {
	err := NewMissingSetting("SECRET_KEY", "framework-security")
	assert.Contains(t, err.Error(), "SECRET_KEY")
	assert.Contains(t, err.Error(), "framework-security")
}

func TestSettingErrorSentinels(t *testing.T) {
	missing := NewMissingSetting("SECRET_KEY", "framework-security")
	assert.True(t, Is(missing, ErrMissingSetting))
	assert.False(t, Is(missing, ErrInvalidSetting))

	invalid := NewInvalidSetting("EMAIL_PORT", "email", `not an integer: "smtp"`)
	assert.True(t, Is(invalid, ErrInvalidSetting))
	assert.False(t, Is(invalid, ErrMissingSetting))
}

func TestSettingErrorPartialMatching(t *testing.T) {
	err := NewMissingSetting("TWILIO_AUTH_TOKEN", "sms")

	assert.True(t, Is(err, &SettingError{Setting: "TWILIO_AUTH_TOKEN"}))
	assert.True(t, Is(err, &SettingError{Consumer: "sms"}))
	assert.False(t, Is(err, &SettingError{Setting: "SECRET_KEY"}))
}

func TestAsExtractsSettingError(t *testing.T) {
	err := Wrap(NewMissingSetting("SECRET_KEY", "framework-security"), "startup aborted")

	var se *SettingError
	assert.True(t, As(err, &se))
	assert.Equal(t, "SECRET_KEY", se.Setting)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}
