package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the gallery builder
type Config struct {
	// Download settings
	Download DownloadConfig `yaml:"download" json:"download"`

	// Courtesy pacing between downloads
	Pacing PacingConfig `yaml:"pacing" json:"pacing"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DownloadConfig holds HTTP download configuration
type DownloadConfig struct {
	UserAgent  string `yaml:"user_agent" json:"user_agent"`
	TimeoutSec int    `yaml:"timeout_sec" json:"timeout_sec"`
}

// GetTimeout returns the per-download timeout as a duration
func (d *DownloadConfig) GetTimeout() time.Duration {
	return time.Duration(d.TimeoutSec) * time.Second
}

// PacingConfig controls the courtesy pause inserted into the download loop.
// PauseEvery 0 disables pacing entirely.
type PacingConfig struct {
	PauseEvery int `yaml:"pause_every" json:"pause_every"`
	PauseMs    int `yaml:"pause_ms" json:"pause_ms"`
}

// GetPauseDuration returns the courtesy pause as a duration
func (p *PacingConfig) GetPauseDuration() time.Duration {
	return time.Duration(p.PauseMs) * time.Millisecond
}

// OutputConfig holds output layout configuration
type OutputConfig struct {
	// Directory overrides the default output location (the export file's
	// parent directory) when non-empty.
	Directory   string `yaml:"directory" json:"directory"`
	MediaSubdir string `yaml:"media_subdir" json:"media_subdir"`
	GalleryFile string `yaml:"gallery_file" json:"gallery_file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Download: DownloadConfig{
			UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			TimeoutSec: 30,
		},
		Pacing: PacingConfig{
			PauseEvery: 20,
			PauseMs:    300,
		},
		Output: OutputConfig{
			Directory:   "",
			MediaSubdir: "media",
			GalleryFile: "memories_gallery.html",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if ua := os.Getenv("SNAPVAULT_USER_AGENT"); ua != "" {
		c.Download.UserAgent = ua
	}

	if timeout := os.Getenv("SNAPVAULT_DOWNLOAD_TIMEOUT"); timeout != "" {
		var val int
		fmt.Sscanf(timeout, "%d", &val)
		if val > 0 {
			c.Download.TimeoutSec = val
		}
	}

	if every := os.Getenv("SNAPVAULT_PAUSE_EVERY"); every != "" {
		var val int
		if _, err := fmt.Sscanf(every, "%d", &val); err == nil && val >= 0 {
			c.Pacing.PauseEvery = val
		}
	}

	if outputDir := os.Getenv("SNAPVAULT_OUTPUT_DIR"); outputDir != "" {
		c.Output.Directory = outputDir
	}

	if logLevel := os.Getenv("SNAPVAULT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".snapvault.yaml",
		".snapvault.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "snapvault", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "snapvault", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".snapvault.yaml"),
		filepath.Join(os.Getenv("HOME"), ".snapvault.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Download.UserAgent == "" {
		errs = append(errs, errors.New("user agent is required"))
	}
	if c.Download.TimeoutSec <= 0 {
		errs = append(errs, errors.New("download timeout must be positive"))
	}

	if c.Pacing.PauseEvery < 0 {
		errs = append(errs, errors.New("pause interval cannot be negative"))
	}
	if c.Pacing.PauseMs < 0 {
		errs = append(errs, errors.New("pause duration cannot be negative"))
	}

	if c.Output.MediaSubdir == "" {
		errs = append(errs, errors.New("media subdirectory is required"))
	}
	if strings.ContainsAny(c.Output.MediaSubdir, `/\`) {
		errs = append(errs, errors.New("media subdirectory must be a bare directory name"))
	}
	if c.Output.GalleryFile == "" {
		errs = append(errs, errors.New("gallery file name is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.Directory = outputDir
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok && timeout > 0 {
		c.Download.TimeoutSec = int(timeout / time.Second)
		if c.Download.TimeoutSec == 0 {
			c.Download.TimeoutSec = 1
		}
	}
	if userAgent, ok := flags["user-agent"].(string); ok && userAgent != "" {
		c.Download.UserAgent = userAgent
	}
	if pauseEvery, ok := flags["pause-every"].(int); ok && pauseEvery >= 0 {
		c.Pacing.PauseEvery = pauseEvery
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence.
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".snapvault.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
