package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir" yaml:"state_dir"`
	LogDir   string `toml:"log_dir" yaml:"log_dir"`
}

// Courses contains the per-semester workload rates for each course variant.
type Courses struct {
	UndergraduateHours int `toml:"undergraduate_hours" yaml:"undergraduate_hours"`
	GraduateHours      int `toml:"graduate_hours" yaml:"graduate_hours"`
}

// Messages selects the catalog used for user-facing strings.
type Messages struct {
	Language string `toml:"language" yaml:"language"`
}

// Journal controls the SQLite session journal.
type Journal struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Metrics controls Prometheus textfile output.
type Metrics struct {
	Textfile string `toml:"textfile" yaml:"textfile"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" yaml:"format"`
	Level  string `toml:"level" yaml:"level"`
}

// Config encapsulates all configuration values for coursework.
//
// Configuration sections by subsystem:
//   - Paths: state (journal) and log directories
//   - Courses: workload hours per semester for each course variant
//   - Messages: language of the console output
//   - Journal: SQLite audit trail toggle
//   - Metrics: Prometheus textfile destination
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths" yaml:"paths"`
	Courses  Courses  `toml:"courses" yaml:"courses"`
	Messages Messages `toml:"messages" yaml:"messages"`
	Journal  Journal  `toml:"journal" yaml:"journal"`
	Metrics  Metrics  `toml:"metrics" yaml:"metrics"`
	Logging  Logging  `toml:"logging" yaml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/coursework/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := decode(file, resolvedPath, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func decode(r io.Reader, path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err := yaml.NewDecoder(r).Decode(cfg)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	default:
		return toml.NewDecoder(r).Decode(cfg)
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	for _, name := range []string{"coursework.toml", "coursework.yaml", "coursework.yml"} {
		projectPath, err := filepath.Abs(name)
		if err != nil {
			return "", false, err
		}
		if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
			return projectPath, true, nil
		}
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// JournalPath returns the SQLite journal location.
func (c *Config) JournalPath() string {
	return filepath.Join(c.Paths.StateDir, "journal.db")
}

// LockPath returns the journal writer lock location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "journal.lock")
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
