package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// LogFormatConsole renders human-readable lines for operators watching a build.
	LogFormatConsole = "console"
	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON = "json"

	defaultLogFormat = LogFormatConsole
	defaultLogLevel  = "info"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ProjectRoot string
	LogFormat   string
	LogLevel    string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	ProjectDir string  `yaml:"project_dir"`
	Log        yamlLog `yaml:"log"`
}

// yamlLog represents the log section in YAML.
type yamlLog struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	ProjectRoot *string
	LogFormat   *string
	LogLevel    *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return Config{}, err
	}

	// Environment sits below the YAML file
	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg, filepath.Dir(overrides.ConfigFile))
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	root, err := filepath.Abs(cfg.ProjectRoot)
	if err != nil {
		return Config{}, fmt.Errorf("resolve project root: %w", err)
	}
	cfg.ProjectRoot = root

	return cfg, nil
}

// defaultConfig returns a Config rooted at the working directory.
func defaultConfig() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("get working directory: %w", err)
	}

	return Config{
		ProjectRoot: wd,
		LogFormat:   defaultLogFormat,
		LogLevel:    defaultLogLevel,
	}, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
// A relative project_dir is resolved against the directory holding the file.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig, baseDir string) {
	if dir := strings.TrimSpace(yamlCfg.ProjectDir); dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		cfg.ProjectRoot = dir
	}

	if format := strings.TrimSpace(yamlCfg.Log.Format); format != "" {
		cfg.LogFormat = format
	}

	if level := strings.TrimSpace(yamlCfg.Log.Level); level != "" {
		cfg.LogLevel = level
	}
}

// applyEnvConfig applies environment variable configuration.
// PROJECT_DIR matches the variable the firmware build tool exports.
func applyEnvConfig(cfg *Config) {
	if dir := strings.TrimSpace(os.Getenv("PROJECT_DIR")); dir != "" {
		cfg.ProjectRoot = dir
	}

	if format := strings.TrimSpace(os.Getenv("PREBUILD_LOG_FORMAT")); format != "" {
		cfg.LogFormat = format
	}

	if level := strings.TrimSpace(os.Getenv("PREBUILD_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ProjectRoot != nil && *overrides.ProjectRoot != "" {
		cfg.ProjectRoot = *overrides.ProjectRoot
	}

	if overrides.LogFormat != nil && *overrides.LogFormat != "" {
		cfg.LogFormat = *overrides.LogFormat
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ProjectRoot) == "" {
		return fmt.Errorf("project root cannot be empty")
	}
	switch cfg.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("log format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, cfg.LogFormat)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
