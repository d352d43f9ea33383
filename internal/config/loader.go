package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".passcheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the YAML configuration file.
// All fields are optional; zero values mean "use the default".
type File struct {
	// GuessesPerSecond overrides the assumed brute-force guess rate.
	GuessesPerSecond int64 `yaml:"guesses_per_second"`

	// MaxPasswordLength overrides the maximum accepted password length.
	MaxPasswordLength int `yaml:"max_password_length"`

	// Wordlist is a path to additional known-weak passwords, one per line,
	// merged with the bundled common-password list.
	Wordlist string `yaml:"wordlist"`

	// BatchSize overrides the number of concurrent analyses in batch mode.
	BatchSize int `yaml:"batch_size"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
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

// Apply copies the file's non-zero settings onto the config.
// Flag values already present in the config are only replaced by settings
// the file actually specifies.
func (f *File) Apply(c *Config) {
	if f.GuessesPerSecond > 0 {
		c.GuessesPerSecond = f.GuessesPerSecond
	}
	if f.MaxPasswordLength > 0 {
		c.MaxPasswordLength = f.MaxPasswordLength
	}
	if f.Wordlist != "" {
		c.WordlistPath = f.Wordlist
	}
	if f.BatchSize > 0 {
		c.BatchSize = f.BatchSize
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .passcheck in the current directory
// 3. Look for .passcheck in the user's home directory
// 4. Look for .passcheck in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
