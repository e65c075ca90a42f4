// Package errors defines the error types shared across the settings loader.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors that can be compared directly
var (
	// ErrMissingSetting indicates that a required setting is absent from the environment
	ErrMissingSetting = errors.New("required setting is missing")

	// ErrInvalidSetting indicates that a setting carries a value that cannot be used
	ErrInvalidSetting = errors.New("setting has an invalid value")

	// ErrOverridesFile indicates that the overrides file could not be read or parsed
	ErrOverridesFile = errors.New("invalid overrides file")
)

// SettingError represents a problem with a single named setting. The setting
// name is always the environment variable name so that a startup failure can
// be resolved without reading code.
type SettingError struct {
	Setting  string
	Consumer string
	Reason   string
	Cause    error
}

// Error implements the error interface
func (e *SettingError) Error() string {
	if e.Consumer != "" {
		return fmt.Sprintf("setting %s (consumer: %s): %s", e.Setting, e.Consumer, e.Reason)
	}
	return fmt.Sprintf("setting %s: %s", e.Setting, e.Reason)
}

// Unwrap implements the errors.Unwrap interface
func (e *SettingError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error
func (e *SettingError) Is(target error) bool {
	t, ok := target.(*SettingError)
	if !ok {
		return errors.Is(e.Cause, target)
	}

	return (t.Setting == "" || t.Setting == e.Setting) &&
		(t.Consumer == "" || t.Consumer == e.Consumer)
}

// NewMissingSetting creates the startup failure for a required setting that is
// absent or empty.
func NewMissingSetting(setting, consumer string) error {
	return &SettingError{
		Setting:  setting,
		Consumer: consumer,
		Reason:   "required but not set",
		Cause:    ErrMissingSetting,
	}
}

// NewInvalidSetting creates the failure for a setting whose value cannot be
// parsed or does not satisfy its constraint.
func NewInvalidSetting(setting, consumer, reason string) error {
	return &SettingError{
		Setting:  setting,
		Consumer: consumer,
		Reason:   reason,
		Cause:    ErrInvalidSetting,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// As is a convenience function that wraps errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is a convenience function that wraps errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}
