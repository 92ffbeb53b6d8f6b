// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOML
//              and YAML files with environment variable support.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cferror "github.com/msto63/cftime/foundation/core/error"
)

// EnvPrefix is the prefix of environment variables overriding file values
const EnvPrefix = "CFTIME"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu       sync.RWMutex
	data     map[string]interface{}
	filePath string
	format   Format
}

// Load loads configuration from a file, detecting the format from its
// extension
func Load(filePath string) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, cferror.New("config file path cannot be empty").
			WithCode(cferror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, cferror.Newf("config file not found: %s", filePath).
			WithCode(cferror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, cferror.Wrap(err, "failed to read config file").
			WithCode(cferror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	format := detectFormat(filePath)
	data, err := parseContent(content, format)
	if err != nil {
		return nil, cferror.Wrap(err, "failed to parse config file").
			WithCode(cferror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, cferror.Wrap(err, "failed to parse config from string").
			WithCode(cferror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns a configuration with no file data. Lookups fall through to
// environment variables and caller defaults.
func Empty() *Config {
	return &Config{
		data:   make(map[string]interface{}),
		format: FormatTOML,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, cferror.Wrap(err, "TOML parse error").
				WithCode(cferror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, cferror.Wrap(err, "YAML parse error").
				WithCode(cferror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, cferror.Newf("unsupported format: %s", format).
			WithCode(cferror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := envValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := envValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return 0
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := envValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// Has reports whether a key is present in the file data
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// getValue resolves a dot-notation key against the nested data maps
func (c *Config) getValue(key string) interface{} {
	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		switch m := current.(type) {
		case map[string]interface{}:
			current = m[part]
		case map[interface{}]interface{}: // YAML may produce this shape
			current = m[part]
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}
	return current
}

// envValue returns the environment override for a key:
// "defaults.calendar" is looked up as CFTIME_DEFAULTS_CALENDAR
func envValue(key string) string {
	envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(envKey)
}
