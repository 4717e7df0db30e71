/*
Package config manages the TOML config for hearme.

The file lives at [UserConfigDir]/hearme/config.toml and is created with defaults
on first run. A file with syntax errors is recovered section by section; values
that parse but make no sense (a zero pool cap, an inverted sampling band) fail
Validate, and the binary refuses to start rather than suggest oddly.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/hearme/internal/utils"
	"github.com/charmbracelet/log"
)

// EnvConfigPath names the environment variable consulted when no --config flag is given.
const EnvConfigPath = "HEARME_CONFIG"

// Config holds the entire config structure
type Config struct {
	Suggest   SuggestConfig   `toml:"suggest"`
	Context   ContextConfig   `toml:"context"`
	Random    RandomConfig    `toml:"random"`
	Timing    TimingConfig    `toml:"timing"`
	Session   SessionConfig   `toml:"session"`
	Vocab     VocabConfig     `toml:"vocab"`
	Predictor PredictorConfig `toml:"predictor"`
}

// SuggestConfig caps the pools and each source's contribution.
type SuggestConfig struct {
	CurrentLimit    int `toml:"current_limit"`
	MaxPrevious     int `toml:"max_previous"`
	PatternCount    int `toml:"pattern_count"`
	ContextualCount int `toml:"contextual_count"`
	RandomCount     int `toml:"random_count"`
	SkillCount      int `toml:"skill_count"`
	RecencyWindow   int `toml:"recency_window"`
}

// ContextConfig sizes the keyword classifier's samples.
type ContextConfig struct {
	CategorySample          int `toml:"category_sample"`
	ConnectorSample         int `toml:"connector_sample"`
	FallbackSample          int `toml:"fallback_sample"`
	FallbackConnectorSample int `toml:"fallback_connector_sample"`
}

// RandomConfig holds the growth and skill sampling bands.
type RandomConfig struct {
	GrowthMin int `toml:"growth_min"`
	GrowthMax int `toml:"growth_max"`
	SkillMin  int `toml:"skill_min"`
	SkillMax  int `toml:"skill_max"`
}

// TimingConfig holds UI delays in milliseconds.
type TimingConfig struct {
	GenerationDelayMs int `toml:"generation_delay_ms"`
	SettleDelayMs     int `toml:"settle_delay_ms"`
}

// SessionConfig holds writing and message limits.
type SessionConfig struct {
	InitialText     string `toml:"initial_text"`
	MinWords        int    `toml:"min_words"`
	MaxWords        int    `toml:"max_words"`
	AnswerMaxChars  int    `toml:"answer_max_chars"`
	MessageMaxWords int    `toml:"message_max_words"`
}

// VocabConfig points at an optional YAML vocabulary file.
type VocabConfig struct {
	Path string `toml:"path"`
}

// PredictorConfig enables the optional inference backed pattern source.
type PredictorConfig struct {
	Enabled    bool    `toml:"enabled"`
	Endpoint   string  `toml:"endpoint"`
	Model      string  `toml:"model"`
	APIKeyEnv  string  `toml:"api_key_env"`
	TimeoutMs  int     `toml:"timeout_ms"`
	MaxWords   int     `toml:"max_words"`
	RatePerSec float64 `toml:"rate_per_sec"`
}

// GenerationDelay is how long a cycle shows as busy before it commits.
func (t TimingConfig) GenerationDelay() time.Duration {
	return time.Duration(t.GenerationDelayMs) * time.Millisecond
}

// SettleDelay is how long input must stay still before a cycle starts.
func (t TimingConfig) SettleDelay() time.Duration {
	return time.Duration(t.SettleDelayMs) * time.Millisecond
}

// Timeout bounds one inference call.
func (p PredictorConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutMs) * time.Millisecond
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			CurrentLimit:    30,
			MaxPrevious:     200,
			PatternCount:    20,
			ContextualCount: 10,
			RandomCount:     4,
			SkillCount:      6,
			RecencyWindow:   5,
		},
		Context: ContextConfig{
			CategorySample:          18,
			ConnectorSample:         12,
			FallbackSample:          12,
			FallbackConnectorSample: 8,
		},
		Random: RandomConfig{
			GrowthMin: 15,
			GrowthMax: 25,
			SkillMin:  15,
			SkillMax:  25,
		},
		Timing: TimingConfig{
			GenerationDelayMs: 500,
			SettleDelayMs:     1000,
		},
		Session: SessionConfig{
			InitialText:     "I ",
			MinWords:        7,
			MaxWords:        40,
			AnswerMaxChars:  300,
			MessageMaxWords: 100,
		},
		Predictor: PredictorConfig{
			APIKeyEnv:  "HEARME_PREDICTOR_KEY",
			TimeoutMs:  1500,
			MaxWords:   10,
			RatePerSec: 2,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/hearme
// 2. ~/Library/Application Support/hearme (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "hearme")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "hearme")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag, then $HEARME_CONFIG
// 2. Default path: [UserConfigDir]/hearme/config.toml
// 3. Builtin defaults
//
// The result is validated; an invalid config is returned as an error.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path := loadWithPriority(customConfigPath)
	if err := config.Validate(); err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func loadWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath == "" {
		customConfigPath = os.Getenv(EnvConfigPath)
	}
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
