// Package config loads server settings from an optional YAML file and
// command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // display-zone must resolve on hosts without zoneinfo

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/erazemk/custodian/internal/docstore"
	"github.com/erazemk/custodian/internal/logging"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Addr        string `koanf:"addr"`
	Backend     string `koanf:"backend"`
	DataDir     string `koanf:"data-dir"`
	SQLitePath  string `koanf:"sqlite-path"`
	S3Bucket    string `koanf:"s3-bucket"`
	S3Region    string `koanf:"s3-region"`
	S3Endpoint  string `koanf:"s3-endpoint"`
	S3Prefix    string `koanf:"s3-prefix"`
	S3PathStyle bool   `koanf:"s3-path-style"`
	RedisAddr   string `koanf:"redis-addr"`
	RedisPrefix string `koanf:"redis-prefix"`
	JWTSecret   string `koanf:"jwt-secret"`
	Autosave    bool   `koanf:"autosave"`
	LogFormat   string `koanf:"log-format"`
	LogPath     string `koanf:"log-path"`
	DisplayZone string `koanf:"display-zone"`
}

// Default values.
const (
	DefaultAddr        = ":8080"
	DefaultDataDir     = "data"
	DefaultSQLitePath  = "custodian.sqlite3"
	DefaultRedisPrefix = "custodian:"
	DefaultLogFormat   = logging.FormatText
	DefaultDisplayZone = "America/Chicago"
)

// RegisterFlags defines one flag per setting on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("addr", DefaultAddr, "HTTP listen address")
	fs.String("backend", string(docstore.DriverFile), "document backend (file, memory, sqlite, s3, redis)")
	fs.String("data-dir", DefaultDataDir, "directory for the file backend")
	fs.String("sqlite-path", DefaultSQLitePath, "database path for the sqlite backend")
	fs.String("s3-bucket", "", "bucket for the s3 backend")
	fs.String("s3-region", "", "region for the s3 backend")
	fs.String("s3-endpoint", "", "custom endpoint for S3-compatible storage")
	fs.String("s3-prefix", "", "key prefix for the s3 backend")
	fs.Bool("s3-path-style", false, "use path-style S3 addressing")
	fs.String("redis-addr", "", "address for the redis backend")
	fs.String("redis-prefix", DefaultRedisPrefix, "key prefix for the redis backend")
	fs.String("jwt-secret", "", "token signing secret (default: generated and stored with the documents)")
	fs.Bool("autosave", false, "save after every successful change")
	fs.String("log-format", DefaultLogFormat, "log format (text or json)")
	fs.String("log-path", "", "also append logs to this file")
	fs.String("display-zone", DefaultDisplayZone, "time zone for transaction times")
}

// Load reads the YAML file at path (if non-empty), then applies flags from fs.
// Flags left at their default only fill keys the file did not set.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	driver, err := docstore.ParseDriver(c.Backend)
	if err != nil {
		return err
	}
	switch driver {
	case docstore.DriverS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("s3-bucket is required for the s3 backend")
		}
	case docstore.DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis-addr is required for the redis backend")
		}
	case docstore.DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite-path is required for the sqlite backend")
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log-format must be 'json' or 'text', got %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the display time zone. Empty means local time.
func (c Config) Location() (*time.Location, error) {
	if c.DisplayZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayZone)
	if err != nil {
		return nil, fmt.Errorf("display-zone: %w", err)
	}
	return loc, nil
}

// Docstore returns the backend configuration.
func (c Config) Docstore() docstore.Config {
	driver, _ := docstore.ParseDriver(c.Backend)
	return docstore.Config{
		Driver:     driver,
		Dir:        c.DataDir,
		SQLitePath: c.SQLitePath,
		S3: docstore.S3Config{
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			Prefix:    c.S3Prefix,
			PathStyle: c.S3PathStyle,
		},
		Redis: docstore.RedisConfig{
			Addr:   c.RedisAddr,
			Prefix: c.RedisPrefix,
		},
	}
}
