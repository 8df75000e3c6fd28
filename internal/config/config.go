package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "DASHBOARD"

const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
)

var (
	validStores       = map[string]bool{StoreMemory: true, StoreFile: true, StorePostgres: true}
	validLogLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogEncodings = map[string]bool{"json": true, "console": true}
	validGroupBy      = map[string]bool{"category": true, "severity": true, "timeSeries": true}
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	Store       string // memory | file | postgres
	RecordsFile string
	PostgresDSN string

	Locale   string
	Timezone string

	LogLevel    string
	LogEncoding string

	DefaultGroupBy   string
	DefaultDarkTheme bool
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("shutdown_timeout", "5s")
	v.SetDefault("store", StoreMemory)
	v.SetDefault("records_file", "data/dashboard.json")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("locale", "en-US")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_encoding", "json")
	v.SetDefault("default_group_by", "category")
	v.SetDefault("default_dark_theme", false)
}

// LoadDotEnv loads .env style files into the process environment. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "load %s", p)
		}
	}
	return nil
}

// Load reads DASHBOARD_* environment variables and, when configFile is set,
// a config file. POSTGRES_DSN is honoured as well.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("postgres_dsn", EnvPrefix+"_POSTGRES_DSN", "POSTGRES_DSN"); err != nil {
		return nil, errors.Wrap(err, "bind postgres_dsn")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	cfg := &Config{
		HTTPAddr:         v.GetString("http_addr"),
		ShutdownTimeout:  v.GetDuration("shutdown_timeout"),
		Store:            strings.ToLower(v.GetString("store")),
		RecordsFile:      v.GetString("records_file"),
		PostgresDSN:      v.GetString("postgres_dsn"),
		Locale:           v.GetString("locale"),
		Timezone:         v.GetString("timezone"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
		LogEncoding:      strings.ToLower(v.GetString("log_encoding")),
		DefaultGroupBy:   v.GetString("default_group_by"),
		DefaultDarkTheme: v.GetBool("default_dark_theme"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("http_addr is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Newf("invalid shutdown_timeout: %s", c.ShutdownTimeout)
	}
	if !validStores[c.Store] {
		return errors.Newf("invalid store: %s (valid: memory, file, postgres)", c.Store)
	}
	if c.Store == StorePostgres && c.PostgresDSN == "" {
		return errors.New("postgres_dsn is required for the postgres store")
	}
	if c.Store != StorePostgres && c.RecordsFile == "" {
		return errors.Newf("records_file is required for the %s store", c.Store)
	}
	if !validLogLevels[c.LogLevel] {
		return errors.Newf("invalid log_level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	if !validLogEncodings[c.LogEncoding] {
		return errors.Newf("invalid log_encoding: %s (valid: json, console)", c.LogEncoding)
	}
	if !validGroupBy[c.DefaultGroupBy] {
		return errors.Newf("invalid default_group_by: %s (valid: category, severity, timeSeries)", c.DefaultGroupBy)
	}
	return nil
}
