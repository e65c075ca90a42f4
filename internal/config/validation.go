package config

import (
	goerrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/loanpro/settings/internal/common/errors"
)

// validatorFieldToSetting maps validator namespaces back to environment
// variable names so constraint violations name the variable, not the Go
// field.
var validatorFieldToSetting = map[string]string{
	"Config.Database.Engine":           "DATABASE_ENGINE",
	"Config.Database.Port":             "DATABASE_PORT",
	"Config.Email.Port":                "EMAIL_PORT",
	"Config.Cache.RedisURL":            "REDIS_URL",
	"Config.Session.CookieAge":         "SESSION_COOKIE_AGE",
	"Config.Uploads.MaxMemorySize":     "FILE_UPLOAD_MAX_MEMORY_SIZE",
	"Config.Uploads.DataMaxMemorySize": "DATA_UPLOAD_MAX_MEMORY_SIZE",
	"Config.Logging.Level":             "LOG_LEVEL",
	"Config.Logging.ConsoleLevel":      "CONSOLE_LOG_LEVEL",
}

// Validate enforces the startup contract: every required setting present, and
// every present value within its constraints. All failures are collected so a
// single run reports everything that is wrong.
func (c *Config) Validate() error {
	var errs []error

	// A required setting is missing when nothing beyond the compiled-in
	// default provided it, or when what was provided is empty. The source
	// check catches required settings that happen to carry a default (the
	// DATABASE_* fields under postgres); the value check catches an empty
	// string smuggled in through the overrides file.
	for _, s := range Settings() {
		if s.Required != nil && s.Required(c) &&
			(c.Source(s.Name) == SourceDefault || s.Value(c) == "") {
			errs = append(errs, errors.NewMissingSetting(s.Name, string(s.Consumer)))
		}
	}

	errs = append(errs, c.validateValues()...)

	if len(errs) > 0 {
		return goerrors.Join(errs...)
	}
	return nil
}

func (c *Config) validateValues() []error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !goerrors.As(err, &verrs) {
		return []error{errors.Wrap(err, "value validation failed")}
	}

	var out []error
	for _, fe := range verrs {
		name, ok := validatorFieldToSetting[fe.StructNamespace()]
		if !ok {
			name = fe.StructNamespace()
		}
		consumer := ""
		if s, ok := settingByName(name); ok {
			consumer = string(s.Consumer)
		}
		out = append(out, errors.NewInvalidSetting(name, consumer, describeViolation(fe)))
	}
	return out
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("value %q is not one of: %s", fe.Value(), fe.Param())
	case "min":
		return fmt.Sprintf("value %v is below the minimum of %s", fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("value %v is above the maximum of %s", fe.Value(), fe.Param())
	case "url":
		return fmt.Sprintf("value %q is not a valid URL", fe.Value())
	default:
		return fmt.Sprintf("value %v failed the %q constraint", fe.Value(), fe.Tag())
	}
}
