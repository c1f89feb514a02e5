// Package config loads the keyword search server settings from defaults, an
// optional YAML file, the environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DefaultHTTPAddr = ":8080"
	DefaultLogLevel = "INFO"
)

// Environment variables read by LoadEnv
const (
	EnvTransport = "KEYWORD_SEARCH_TRANSPORT"
	EnvHTTPAddr  = "KEYWORD_SEARCH_HTTP_ADDR"
	EnvLogLevel  = "KEYWORD_SEARCH_LOG_LEVEL"
	EnvLogFile   = "KEYWORD_SEARCH_LOG_FILE"
	EnvBaseDir   = "KEYWORD_SEARCH_BASE_DIR"
	EnvRecover   = "KEYWORD_SEARCH_RECOVER"
)

var (
	ErrInvalidTransport = errors.New("invalid transport")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidBaseDir   = errors.New("invalid base directory")
)

type Config struct {
	Transport string `yaml:"transport"`
	HTTPAddr  string `yaml:"http_addr"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
	BaseDir   string `yaml:"base_dir"`
	Recover   bool   `yaml:"recover"`
}

func Default() Config {
	return Config{
		Transport: TransportStdio,
		HTTPAddr:  DefaultHTTPAddr,
		LogLevel:  DefaultLogLevel,
		Recover:   true,
	}
}

// LoadFile overlays the values found in the YAML file at path. Keys that are
// absent from the file leave the current values untouched.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// LoadEnv loads a .env file when one exists and overlays the KEYWORD_SEARCH_* variables.
func (c *Config) LoadEnv(envFiles ...string) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file found, using environment variables and command line args")
	}

	if v := os.Getenv(EnvTransport); v != "" {
		c.Transport = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvBaseDir); v != "" {
		c.BaseDir = v
	}
	if v := os.Getenv(EnvRecover); v != "" {
		c.Recover = cast.ToBool(v)
	}
}

func (c *Config) Validate() error {
	c.Transport = strings.ToLower(c.Transport)
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("%w: %q (expected %s or %s)", ErrInvalidTransport, c.Transport, TransportStdio, TransportHTTP)
	}

	c.LogLevel = strings.ToUpper(c.LogLevel)
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.BaseDir != "" {
		info, err := os.Stat(c.BaseDir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrInvalidBaseDir, c.BaseDir)
		}
	}

	return nil
}

var logLevels = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to INFO
func ParseLogLevel(level string) slog.Level {
	if l, ok := logLevels[strings.ToUpper(level)]; ok {
		return l
	}
	return slog.LevelInfo
}
