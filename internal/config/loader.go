package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".papercrawl"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Duration is a time.Duration that unmarshals from YAML strings like
// "2s" or "500ms". yaml.v3 has no built-in duration support.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// File is the on-disk YAML representation of overridable settings.
// Every field is a pointer so that absent keys leave the corresponding
// Config default untouched: the file overrides the configuration as a
// unit, never through scattered globals.
type File struct {
	// OutputDir overrides the artifact output directory.
	OutputDir *string `yaml:"output_dir"`

	// MaxPages overrides the page bound.
	MaxPages *int `yaml:"max_pages"`

	// Delay overrides the inter-request delay (e.g. "2s", "500ms").
	Delay *Duration `yaml:"delay"`

	// Timeout overrides the per-fetch timeout.
	Timeout *Duration `yaml:"timeout"`

	// MaxRetries overrides the fetch attempt count.
	MaxRetries *int `yaml:"max_retries"`

	// RetryDelay overrides the wait between fetch attempts.
	RetryDelay *Duration `yaml:"retry_delay"`

	// BatchSize overrides the browser recycling interval.
	BatchSize *int `yaml:"batch_size"`

	// IgnorePatterns replaces the default URL exclusion list.
	IgnorePatterns []string `yaml:"ignore_patterns"`

	// NumKeywords overrides the artifact name keyword count.
	NumKeywords *int `yaml:"num_keywords"`

	// MaxNgram overrides the maximum keyword phrase length.
	MaxNgram *int `yaml:"max_ngram"`
}

// LoadConfigFile loads settings overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies every value present in the file onto the config.
// Absent keys keep their defaults.
func (f *File) Apply(cfg *Config) {
	if f.OutputDir != nil {
		cfg.OutputDir = *f.OutputDir
	}
	if f.MaxPages != nil {
		cfg.MaxPages = *f.MaxPages
	}
	if f.Delay != nil {
		cfg.Delay = time.Duration(*f.Delay)
	}
	if f.Timeout != nil {
		cfg.Timeout = time.Duration(*f.Timeout)
	}
	if f.MaxRetries != nil {
		cfg.MaxRetries = *f.MaxRetries
	}
	if f.RetryDelay != nil {
		cfg.RetryDelay = time.Duration(*f.RetryDelay)
	}
	if f.BatchSize != nil {
		cfg.BatchSize = *f.BatchSize
	}
	if len(f.IgnorePatterns) > 0 {
		cfg.IgnorePatterns = f.IgnorePatterns
	}
	if f.NumKeywords != nil {
		cfg.NumKeywords = *f.NumKeywords
	}
	if f.MaxNgram != nil {
		cfg.MaxNgram = *f.MaxNgram
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .papercrawl in the current directory
// 3. Look for .papercrawl in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
