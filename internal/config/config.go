package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Grading GradingConfig `yaml:"grading" envconfig:"GRADING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/gradebook.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ExecutableDir string `yaml:"executable_dir" envconfig:"EXECUTABLE_DIR"`
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir    string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// GradingConfig contains grading behavior configuration
type GradingConfig struct {
	PassThreshold int `yaml:"pass_threshold" envconfig:"PASS_THRESHOLD" default:"40"`
}

// Load loads configuration from environment variables and config file.
// Precedence: environment variables, then config.yaml, then defaults.
func Load() (*Config, error) {
	// Pick up a local .env file if present; missing files are fine
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("GRADEBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config into env config. Environment values win;
// envconfig leaves fields at their struct defaults when unset, so only fields
// still holding defaults are overwritten by file values.
func mergeConfigs(fileConfig, envConfig Config) Config {
	def := Default()

	if envConfig.Logging.Level == def.Logging.Level && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == def.Logging.Output && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == def.Logging.FilePath && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.DataDir == def.Paths.DataDir && fileConfig.Paths.DataDir != "" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if envConfig.Paths.ReportsDir == def.Paths.ReportsDir && fileConfig.Paths.ReportsDir != "" {
		envConfig.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}
	if envConfig.Paths.LogsDir == def.Paths.LogsDir && fileConfig.Paths.LogsDir != "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if envConfig.Grading.PassThreshold == def.Grading.PassThreshold && fileConfig.Grading.PassThreshold != 0 {
		envConfig.Grading.PassThreshold = fileConfig.Grading.PassThreshold
	}

	return envConfig
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Grading.PassThreshold < 0 || c.Grading.PassThreshold > 100 {
		return fmt.Errorf("invalid pass threshold: %d", c.Grading.PassThreshold)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.Logging.Level = "info"
	}

	// Structured logs are always JSON
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	// The console belongs to the interactive session, so logs default to file
	if c.Logging.Output != "file" && c.Logging.Output != "both" && c.Logging.Output != "stdout" {
		c.Logging.Output = "file"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/gradebook.log"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: "logs/gradebook.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "data/reports",
			LogsDir:    "logs",
		},
		Grading: GradingConfig{
			PassThreshold: 40,
		},
	}
}
