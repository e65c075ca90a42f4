package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"

	"github.com/loanpro/settings/internal/common/errors"
)

//go:embed schema.json
var overridesSchema string

// Options controls the load pipeline.
type Options struct {
	// EnvFile is the path to a .env file. Empty means try ./.env; a missing
	// default file is not an error, a missing explicit one is.
	EnvFile string

	// OverridesFile is an optional JSON file layered between the defaults
	// and the environment.
	OverridesFile string

	Logger *logrus.Entry
}

// Load reads the full set of recognized settings and fails fast when a
// required one is absent or invalid. Precedence, lowest to highest:
// documented defaults, overrides file, environment variables (with the .env
// file only filling in variables the environment does not already set).
func Load(opts Options) (*Config, error) {
	if err := applyDotenv(opts.EnvFile, opts.Logger); err != nil {
		return nil, err
	}

	cfg := newDefault()

	if opts.OverridesFile != "" {
		if err := cfg.applyOverridesFile(opts.OverridesFile, opts.Logger); err != nil {
			return nil, err
		}
	}

	errs := cfg.applyEnvironment()
	cfg.applyDynamicDefaults()

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, goerrors.Join(errs...)
	}

	if opts.Logger != nil {
		opts.Logger.WithFields(logrus.Fields{
			"engine": cfg.Database.Engine,
			"debug":  cfg.Security.Debug,
		}).Info("Configuration loaded")
	}
	return cfg, nil
}

// applyDotenv fills in environment variables from a .env file without
// overriding anything the environment already sets.
func applyDotenv(path string, log *logrus.Entry) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			if log != nil {
				log.Debug("No .env file found, using process environment only")
			}
			return nil
		}
		return errors.Wrap(err, fmt.Sprintf("failed to read env file %s", path))
	}

	applied := 0
	for k, v := range values {
		if os.Getenv(k) == "" {
			if err := os.Setenv(k, v); err != nil {
				return errors.Wrap(err, fmt.Sprintf("failed to set %s from %s", k, path))
			}
			applied++
		}
	}
	if log != nil {
		log.WithFields(logrus.Fields{"file": path, "applied": applied}).Info("Loaded .env file")
	}
	return nil
}

// applyOverridesFile layers a JSON overrides file onto the config. The file
// is validated against the embedded schema and decoded strictly, so typos
// fail instead of being ignored.
func (c *Config) applyOverridesFile(path string, log *logrus.Entry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrOverridesFile, err.Error())
	}
	data = removeSchemaField(data)

	schema, err := jsonschema.CompileString("settings-overrides.json", overridesSchema)
	if err != nil {
		return errors.Wrap(err, "failed to compile overrides schema")
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(errors.ErrOverridesFile, fmt.Sprintf("%s: %v", path, err))
	}
	if err := schema.Validate(doc); err != nil {
		return errors.Wrap(errors.ErrOverridesFile, fmt.Sprintf("%s: %v", path, err))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return errors.Wrap(errors.ErrOverridesFile, fmt.Sprintf("%s: %v", path, err))
	}
	c.Database.Engine = normalizeEngine(c.Database.Engine)

	c.markFileSources(doc)

	if log != nil {
		log.WithField("file", path).Info("Applied overrides file")
	}
	return nil
}

// removeSchemaField removes the $schema field so strict decoding does not
// trip over it.
func removeSchemaField(configData []byte) []byte {
	var raw map[string]interface{}
	if err := json.Unmarshal(configData, &raw); err != nil {
		return configData
	}
	if _, ok := raw["$schema"]; !ok {
		return configData
	}
	delete(raw, "$schema")
	if clean, err := json.Marshal(raw); err == nil {
		return clean
	}
	return configData
}

// fileKeyToSetting maps "section.jsonField" paths in the overrides file to
// environment variable names for source tracking.
var fileKeyToSetting = map[string]string{
	"security.secretKey":        "SECRET_KEY",
	"security.debug":            "DEBUG",
	"security.allowedHosts":     "ALLOWED_HOSTS",
	"database.engine":           "DATABASE_ENGINE",
	"database.name":             "DATABASE_NAME",
	"database.user":             "DATABASE_USER",
	"database.password":         "DATABASE_PASSWORD",
	"database.host":             "DATABASE_HOST",
	"database.port":             "DATABASE_PORT",
	"email.host":                "EMAIL_HOST",
	"email.port":                "EMAIL_PORT",
	"email.useTls":              "EMAIL_USE_TLS",
	"email.hostUser":            "EMAIL_HOST_USER",
	"email.hostPassword":        "EMAIL_HOST_PASSWORD",
	"sms.accountSid":            "TWILIO_ACCOUNT_SID",
	"sms.authToken":             "TWILIO_AUTH_TOKEN",
	"sms.fromNumber":            "TWILIO_FROM_NUMBER",
	"cors.allowedOrigins":       "CORS_ALLOWED_ORIGINS",
	"cors.allowCredentials":     "CORS_ALLOW_CREDENTIALS",
	"cache.redisUrl":            "REDIS_URL",
	"session.cookieAge":         "SESSION_COOKIE_AGE",
	"session.cookieSecure":      "SESSION_COOKIE_SECURE",
	"session.cookieHttpOnly":    "SESSION_COOKIE_HTTPONLY",
	"locale.languageCode":       "LANGUAGE_CODE",
	"locale.timeZone":           "TIME_ZONE",
	"uploads.maxMemorySize":     "FILE_UPLOAD_MAX_MEMORY_SIZE",
	"uploads.dataMaxMemorySize": "DATA_UPLOAD_MAX_MEMORY_SIZE",
	"logging.level":             "LOG_LEVEL",
	"logging.file":              "LOG_FILE",
	"logging.consoleLevel":      "CONSOLE_LOG_LEVEL",
}

// markFileSources records which settings the overrides file actually set.
func (c *Config) markFileSources(doc interface{}) {
	root, ok := doc.(map[string]interface{})
	if !ok {
		return
	}
	for section, fields := range root {
		m, ok := fields.(map[string]interface{})
		if !ok {
			continue
		}
		for field := range m {
			if name, ok := fileKeyToSetting[section+"."+field]; ok {
				c.setSource(name, SourceFile)
			}
		}
	}
}
