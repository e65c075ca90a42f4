package config

import (
	"strconv"
	"strings"
)

// Consumer names the external subsystem a setting is handed to.
type Consumer string

// Recognized consumers
const (
	ConsumerSecurity Consumer = "framework-security"
	ConsumerDatabase Consumer = "database"
	ConsumerEmail    Consumer = "email"
	ConsumerSMS      Consumer = "sms"
	ConsumerCORS     Consumer = "cors"
	ConsumerCache    Consumer = "cache"
	ConsumerSession  Consumer = "session"
	ConsumerLocale   Consumer = "locale"
	ConsumerUploads  Consumer = "uploads"
	ConsumerLogging  Consumer = "logging"
)

// Setting describes one recognized configuration setting: its environment
// variable name, who consumes it, whether its value must never be printed,
// and when it is required.
type Setting struct {
	Name     string
	Consumer Consumer
	Secret   bool

	// Default is the documented default rendered for templates and docs.
	// Empty means the setting has no default.
	Default string

	// Requirement is the human-readable requiredness note ("" = optional).
	Requirement string

	// Required reports whether the setting must be present for the given
	// config. Nil means the setting is always optional.
	Required func(*Config) bool

	// Value renders the effective value from a loaded config.
	Value func(*Config) string
}

const (
	requiredAlways   = "required"
	requiredPostgres = "required when DATABASE_ENGINE=postgres"
)

func always(*Config) bool { return true }

func whenPostgres(c *Config) bool { return c.Database.IsPostgres() }

func formatBool(b bool) string { return strconv.FormatBool(b) }

func formatList(l []string) string { return strings.Join(l, ",") }

var settings = []Setting{
	{
		Name:        "SECRET_KEY",
		Consumer:    ConsumerSecurity,
		Secret:      true,
		Requirement: requiredAlways,
		Required:    always,
		Value:       func(c *Config) string { return c.Security.SecretKey },
	},
	{
		Name:     "DEBUG",
		Consumer: ConsumerSecurity,
		Default:  "false",
		Value:    func(c *Config) string { return formatBool(c.Security.Debug) },
	},
	{
		Name:     "ALLOWED_HOSTS",
		Consumer: ConsumerSecurity,
		Default:  "localhost,127.0.0.1",
		Value:    func(c *Config) string { return formatList(c.Security.AllowedHosts) },
	},
	{
		Name:     "DATABASE_ENGINE",
		Consumer: ConsumerDatabase,
		Default:  EngineSQLite,
		Value:    func(c *Config) string { return c.Database.Engine },
	},
	{
		Name:        "DATABASE_NAME",
		Consumer:    ConsumerDatabase,
		Default:     "db.sqlite3",
		Requirement: requiredPostgres,
		Required:    whenPostgres,
		Value:       func(c *Config) string { return c.Database.Name },
	},
	{
		Name:        "DATABASE_USER",
		Consumer:    ConsumerDatabase,
		Requirement: requiredPostgres,
		Required:    whenPostgres,
		Value:       func(c *Config) string { return c.Database.User },
	},
	{
		Name:        "DATABASE_PASSWORD",
		Consumer:    ConsumerDatabase,
		Secret:      true,
		Requirement: requiredPostgres,
		Required:    whenPostgres,
		Value:       func(c *Config) string { return c.Database.Password },
	},
	{
		Name:        "DATABASE_HOST",
		Consumer:    ConsumerDatabase,
		Requirement: requiredPostgres,
		Required:    whenPostgres,
		Value:       func(c *Config) string { return c.Database.Host },
	},
	{
		Name:        "DATABASE_PORT",
		Consumer:    ConsumerDatabase,
		Requirement: requiredPostgres,
		Required:    whenPostgres,
		Value: func(c *Config) string {
			if c.Database.Port == 0 {
				return ""
			}
			return strconv.Itoa(c.Database.Port)
		},
	},
	{
		Name:     "EMAIL_HOST",
		Consumer: ConsumerEmail,
		Default:  "smtp.gmail.com",
		Value:    func(c *Config) string { return c.Email.Host },
	},
	{
		Name:     "EMAIL_PORT",
		Consumer: ConsumerEmail,
		Default:  "587",
		Value:    func(c *Config) string { return strconv.Itoa(c.Email.Port) },
	},
	{
		Name:     "EMAIL_USE_TLS",
		Consumer: ConsumerEmail,
		Default:  "true",
		Value:    func(c *Config) string { return formatBool(c.Email.UseTLS) },
	},
	{
		Name:        "EMAIL_HOST_USER",
		Consumer:    ConsumerEmail,
		Requirement: requiredAlways,
		Required:    always,
		Value:       func(c *Config) string { return c.Email.HostUser },
	},
	{
		Name:        "EMAIL_HOST_PASSWORD",
		Consumer:    ConsumerEmail,
		Secret:      true,
		Requirement: requiredAlways,
		Required:    always,
		Value:       func(c *Config) string { return c.Email.HostPassword },
	},
	{
		Name:        "TWILIO_ACCOUNT_SID",
		Consumer:    ConsumerSMS,
		Requirement: requiredAlways,
		Required:    always,
		Value:       func(c *Config) string { return c.SMS.AccountSID },
	},
	{
		Name:        "TWILIO_AUTH_TOKEN",
		Consumer:    ConsumerSMS,
		Secret:      true,
		Requirement: requiredAlways,
		Required:    always,
		Value:       func(c *Config) string { return c.SMS.AuthToken },
	},
	{
		Name:        "TWILIO_FROM_NUMBER",
		Consumer:    ConsumerSMS,
		Requirement: requiredAlways,
		Required:    always,
		Value:       func(c *Config) string { return c.SMS.FromNumber },
	},
	{
		Name:     "CORS_ALLOWED_ORIGINS",
		Consumer: ConsumerCORS,
		Default:  "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8080,http://127.0.0.1:8080",
		Value:    func(c *Config) string { return formatList(c.CORS.AllowedOrigins) },
	},
	{
		Name:     "CORS_ALLOW_CREDENTIALS",
		Consumer: ConsumerCORS,
		Default:  "true",
		Value:    func(c *Config) string { return formatBool(c.CORS.AllowCredentials) },
	},
	{
		Name:     "REDIS_URL",
		Consumer: ConsumerCache,
		Default:  "redis://127.0.0.1:6379/1",
		Value:    func(c *Config) string { return c.Cache.RedisURL },
	},
	{
		Name:     "SESSION_COOKIE_AGE",
		Consumer: ConsumerSession,
		Default:  "3600",
		Value:    func(c *Config) string { return strconv.Itoa(c.Session.CookieAge) },
	},
	{
		Name:     "SESSION_COOKIE_SECURE",
		Consumer: ConsumerSession,
		Default:  "!DEBUG",
		Value:    func(c *Config) string { return formatBool(c.Session.CookieSecure) },
	},
	{
		Name:     "SESSION_COOKIE_HTTPONLY",
		Consumer: ConsumerSession,
		Default:  "true",
		Value:    func(c *Config) string { return formatBool(c.Session.CookieHTTPOnly) },
	},
	{
		Name:     "LANGUAGE_CODE",
		Consumer: ConsumerLocale,
		Default:  "en-us",
		Value:    func(c *Config) string { return c.Locale.LanguageCode },
	},
	{
		Name:     "TIME_ZONE",
		Consumer: ConsumerLocale,
		Default:  "Africa/Lagos",
		Value:    func(c *Config) string { return c.Locale.TimeZone },
	},
	{
		Name:     "FILE_UPLOAD_MAX_MEMORY_SIZE",
		Consumer: ConsumerUploads,
		Default:  "5242880",
		Value:    func(c *Config) string { return strconv.FormatInt(c.Uploads.MaxMemorySize, 10) },
	},
	{
		Name:     "DATA_UPLOAD_MAX_MEMORY_SIZE",
		Consumer: ConsumerUploads,
		Default:  "5242880",
		Value:    func(c *Config) string { return strconv.FormatInt(c.Uploads.DataMaxMemorySize, 10) },
	},
	{
		Name:     "LOG_LEVEL",
		Consumer: ConsumerLogging,
		Default:  "INFO",
		Value:    func(c *Config) string { return c.Logging.Level },
	},
	{
		Name:     "LOG_FILE",
		Consumer: ConsumerLogging,
		Default:  "loanpro.log",
		Value:    func(c *Config) string { return c.Logging.File },
	},
	{
		Name:     "CONSOLE_LOG_LEVEL",
		Consumer: ConsumerLogging,
		Default:  "DEBUG",
		Value:    func(c *Config) string { return c.Logging.ConsoleLevel },
	},
}

// Settings returns the full table of recognized settings in documentation
// order.
func Settings() []Setting {
	return settings
}

// settingByName looks up a setting descriptor by environment variable name.
func settingByName(name string) (Setting, bool) {
	for _, s := range settings {
		if s.Name == name {
			return s, true
		}
	}
	return Setting{}, false
}
