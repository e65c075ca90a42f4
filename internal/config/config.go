// Package config handles loading and validating the backend settings
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/loanpro/settings/internal/common/errors"
)

// Database engine identifiers
const (
	EngineSQLite   = "sqlite3"
	EnginePostgres = "postgres"
)

// Source identifies where a setting's effective value came from.
type Source string

// Recognized value sources, in increasing precedence
const (
	SourceDefault     Source = "default"
	SourceFile        Source = "file"
	SourceEnvironment Source = "environment"
)

// Config holds every setting the backend reads at startup. It is populated
// once by Load and never mutated afterwards.
type Config struct {
	Security SecurityConfig `json:"security"`
	Database DatabaseConfig `json:"database"`
	Email    EmailConfig    `json:"email"`
	SMS      SMSConfig      `json:"sms"`
	CORS     CORSConfig     `json:"cors"`
	Cache    CacheConfig    `json:"cache"`
	Session  SessionConfig  `json:"session"`
	Locale   LocaleConfig   `json:"locale"`
	Uploads  UploadConfig   `json:"uploads"`
	Logging  LoggingConfig  `json:"logging"`

	// sources tracks where each setting's value came from, keyed by the
	// environment variable name.
	sources map[string]Source
}

// SecurityConfig contains the framework security settings
type SecurityConfig struct {
	SecretKey    string   `json:"secretKey,omitempty"`
	Debug        bool     `json:"debug,omitempty"`
	AllowedHosts []string `json:"allowedHosts,omitempty"`
}

// DatabaseConfig contains the database connection settings
type DatabaseConfig struct {
	Engine   string `json:"engine,omitempty" validate:"omitempty,oneof=sqlite3 postgres"`
	Name     string `json:"name,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
}

// EmailConfig contains the SMTP settings used for outbound mail
type EmailConfig struct {
	Host         string `json:"host,omitempty"`
	Port         int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	UseTLS       bool   `json:"useTls,omitempty"`
	HostUser     string `json:"hostUser,omitempty"`
	HostPassword string `json:"hostPassword,omitempty"`
}

// SMSConfig contains the Twilio credentials used for outbound SMS
type SMSConfig struct {
	AccountSID string `json:"accountSid,omitempty"`
	AuthToken  string `json:"authToken,omitempty"`
	FromNumber string `json:"fromNumber,omitempty"`
}

// CORSConfig contains the cross-origin request settings
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowedOrigins,omitempty"`
	AllowCredentials bool     `json:"allowCredentials,omitempty"`
}

// CacheConfig contains the cache backend settings
type CacheConfig struct {
	RedisURL string `json:"redisUrl,omitempty" validate:"omitempty,url"`
}

// SessionConfig contains the session cookie settings
type SessionConfig struct {
	CookieAge      int  `json:"cookieAge,omitempty" validate:"omitempty,min=1"`
	CookieSecure   bool `json:"cookieSecure,omitempty"`
	CookieHTTPOnly bool `json:"cookieHttpOnly,omitempty"`
}

// LocaleConfig contains the internationalization settings
type LocaleConfig struct {
	LanguageCode string `json:"languageCode,omitempty"`
	TimeZone     string `json:"timeZone,omitempty"`
}

// UploadConfig contains the file upload limits
type UploadConfig struct {
	MaxMemorySize     int64 `json:"maxMemorySize,omitempty" validate:"omitempty,min=1"`
	DataMaxMemorySize int64 `json:"dataMaxMemorySize,omitempty" validate:"omitempty,min=1"`
}

// LoggingConfig contains the application logging settings
type LoggingConfig struct {
	Level        string `json:"level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN WARNING ERROR CRITICAL FATAL"`
	File         string `json:"file,omitempty"`
	ConsoleLevel string `json:"consoleLevel,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN WARNING ERROR CRITICAL FATAL"`
}

// newDefault returns a config populated with the documented defaults.
func newDefault() *Config {
	cfg := &Config{
		Security: SecurityConfig{
			AllowedHosts: []string{"localhost", "127.0.0.1"},
		},
		Database: DatabaseConfig{
			Engine: EngineSQLite,
			Name:   "db.sqlite3",
		},
		Email: EmailConfig{
			Host:   "smtp.gmail.com",
			Port:   587,
			UseTLS: true,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:8080",
				"http://127.0.0.1:8080",
			},
			AllowCredentials: true,
		},
		Cache: CacheConfig{
			RedisURL: "redis://127.0.0.1:6379/1",
		},
		Session: SessionConfig{
			CookieAge:      3600,
			CookieHTTPOnly: true,
		},
		Locale: LocaleConfig{
			LanguageCode: "en-us",
			TimeZone:     "Africa/Lagos",
		},
		Uploads: UploadConfig{
			MaxMemorySize:     5242880,
			DataMaxMemorySize: 5242880,
		},
		Logging: LoggingConfig{
			Level:        "INFO",
			File:         "loanpro.log",
			ConsoleLevel: "DEBUG",
		},
		sources: make(map[string]Source),
	}
	for _, s := range Settings() {
		cfg.sources[s.Name] = SourceDefault
	}
	return cfg
}

// Source reports where the named setting's effective value came from.
func (c *Config) Source(name string) Source {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

func (c *Config) setSource(name string, src Source) {
	c.sources[name] = src
}

// applyEnvironment overlays environment variables on top of the current
// values. An empty variable counts as unset. Parse failures are collected so
// one run reports every bad value.
func (c *Config) applyEnvironment() []error {
	var errs []error

	setString := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
			c.setSource(name, SourceEnvironment)
		}
	}
	setBool := func(name string, dst *bool) {
		if v := os.Getenv(name); v != "" {
			*dst = truthy(v)
			c.setSource(name, SourceEnvironment)
		}
	}
	setInt := func(name, consumer string, dst *int) {
		if v := os.Getenv(name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, errors.NewInvalidSetting(name, consumer, fmt.Sprintf("not an integer: %q", v)))
				return
			}
			*dst = i
			c.setSource(name, SourceEnvironment)
		}
	}
	setInt64 := func(name, consumer string, dst *int64) {
		if v := os.Getenv(name); v != "" {
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				errs = append(errs, errors.NewInvalidSetting(name, consumer, fmt.Sprintf("not an integer: %q", v)))
				return
			}
			*dst = i
			c.setSource(name, SourceEnvironment)
		}
	}
	setList := func(name string, dst *[]string) {
		if v := os.Getenv(name); v != "" {
			*dst = splitAndTrim(v)
			c.setSource(name, SourceEnvironment)
		}
	}

	setString("SECRET_KEY", &c.Security.SecretKey)
	setBool("DEBUG", &c.Security.Debug)
	setList("ALLOWED_HOSTS", &c.Security.AllowedHosts)

	if v := os.Getenv("DATABASE_ENGINE"); v != "" {
		c.Database.Engine = normalizeEngine(v)
		c.setSource("DATABASE_ENGINE", SourceEnvironment)
	}
	setString("DATABASE_NAME", &c.Database.Name)
	setString("DATABASE_USER", &c.Database.User)
	setString("DATABASE_PASSWORD", &c.Database.Password)
	setString("DATABASE_HOST", &c.Database.Host)
	setInt("DATABASE_PORT", "database", &c.Database.Port)

	setString("EMAIL_HOST", &c.Email.Host)
	setInt("EMAIL_PORT", "email", &c.Email.Port)
	setBool("EMAIL_USE_TLS", &c.Email.UseTLS)
	setString("EMAIL_HOST_USER", &c.Email.HostUser)
	setString("EMAIL_HOST_PASSWORD", &c.Email.HostPassword)

	setString("TWILIO_ACCOUNT_SID", &c.SMS.AccountSID)
	setString("TWILIO_AUTH_TOKEN", &c.SMS.AuthToken)
	setString("TWILIO_FROM_NUMBER", &c.SMS.FromNumber)

	setList("CORS_ALLOWED_ORIGINS", &c.CORS.AllowedOrigins)
	setBool("CORS_ALLOW_CREDENTIALS", &c.CORS.AllowCredentials)

	setString("REDIS_URL", &c.Cache.RedisURL)

	setInt("SESSION_COOKIE_AGE", "session", &c.Session.CookieAge)
	setBool("SESSION_COOKIE_SECURE", &c.Session.CookieSecure)
	setBool("SESSION_COOKIE_HTTPONLY", &c.Session.CookieHTTPOnly)

	setString("LANGUAGE_CODE", &c.Locale.LanguageCode)
	setString("TIME_ZONE", &c.Locale.TimeZone)

	setInt64("FILE_UPLOAD_MAX_MEMORY_SIZE", "uploads", &c.Uploads.MaxMemorySize)
	setInt64("DATA_UPLOAD_MAX_MEMORY_SIZE", "uploads", &c.Uploads.DataMaxMemorySize)

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToUpper(v)
		c.setSource("LOG_LEVEL", SourceEnvironment)
	}
	setString("LOG_FILE", &c.Logging.File)
	if v := os.Getenv("CONSOLE_LOG_LEVEL"); v != "" {
		c.Logging.ConsoleLevel = strings.ToUpper(v)
		c.setSource("CONSOLE_LOG_LEVEL", SourceEnvironment)
	}

	return errs
}

// applyDynamicDefaults resolves defaults that depend on other settings.
// SESSION_COOKIE_SECURE tracks the negation of DEBUG unless set explicitly.
func (c *Config) applyDynamicDefaults() {
	if c.Source("SESSION_COOKIE_SECURE") == SourceDefault {
		c.Session.CookieSecure = !c.Security.Debug
	}
}

// IsPostgres reports whether the configured engine is PostgreSQL.
func (d DatabaseConfig) IsPostgres() bool {
	return d.Engine == EnginePostgres
}

// DSN renders the connection string for the configured engine: a postgres://
// URL for PostgreSQL, the database file path for SQLite.
func (d DatabaseConfig) DSN() string {
	if !d.IsPostgres() {
		return d.Name
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	return u.String()
}

// FromAddress returns the default sender address for outbound mail.
func (e EmailConfig) FromAddress() string {
	return e.HostUser
}

// CookieMaxAge returns the session cookie lifetime as a duration.
func (s SessionConfig) CookieMaxAge() time.Duration {
	return time.Duration(s.CookieAge) * time.Second
}

// normalizeEngine maps the legacy Django engine identifiers onto the native
// ones so existing .env files keep working. Unknown values pass through and
// are rejected by validation.
func normalizeEngine(v string) string {
	switch strings.TrimSpace(v) {
	case "django.db.backends.sqlite3", EngineSQLite:
		return EngineSQLite
	case "django.db.backends.postgresql", "django.db.backends.postgresql_psycopg2", "postgresql", EnginePostgres:
		return EnginePostgres
	default:
		return strings.TrimSpace(v)
	}
}

// truthy implements the accepted boolean spellings: true/1/yes/on,
// case-insensitive. Anything else is false.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
