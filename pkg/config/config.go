/*
Package config manages TOML config for WordSleuth.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordsleuth/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Solver  SolverConfig  `toml:"solver"`
	Sources SourcesConfig `toml:"sources"`
	CLI     CliConfig     `toml:"cli"`
}

// SolverConfig has solver related options.
type SolverConfig struct {
	WordLength       int  `toml:"word_length"`
	ExcludePlurals   bool `toml:"exclude_plurals"`
	OrderByScoreDesc bool `toml:"order_by_score_desc"`
}

// SourcesConfig holds word source options. WordLists are tried in order;
// MaxTries carries one cutover threshold per list (0 = unbounded).
type SourcesConfig struct {
	WordLists []string `toml:"word_lists"`
	ScoreFile string   `toml:"score_file"`
	MaxTries  []int    `toml:"max_tries"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	SuggestLimit int `toml:"suggest_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordsleuth
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordsleuth")
	if err := utils.EnsureDir(primaryPath); err == nil {
		return primaryPath, nil
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
// 1. Custom path from -config flag
// 2. Default path: ~/.config/wordsleuth/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			WordLength:       5,
			ExcludePlurals:   true,
			OrderByScoreDesc: false,
		},
		Sources: SourcesConfig{
			WordLists: []string{"english_words.txt", "english_full.txt"},
			MaxTries:  []int{2, 0},
		},
		CLI: CliConfig{
			SuggestLimit: 15,
		},
	}
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

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	warnShortCutover(config)
	return config, nil
}

// tryPartialParse attempts to salvage valid sections from a damaged TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if solverSection, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(solverSection, &config.Solver)
	}
	if sourcesSection, ok := utils.ExtractSection(tempConfig, "sources"); ok {
		extractSourcesConfig(sourcesSection, &config.Sources)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	warnShortCutover(config)
	return config, nil
}

// warnShortCutover surfaces a threshold/source length mismatch at load time.
// Cutover is silently disabled in that case (reference behavior), which is
// easy to misconfigure by accident.
func warnShortCutover(config *Config) {
	if len(config.Sources.MaxTries) != 0 && len(config.Sources.MaxTries) < len(config.Sources.WordLists) {
		log.Warnf("sources.max_tries has %d entries for %d word lists; cutover is disabled",
			len(config.Sources.MaxTries), len(config.Sources.WordLists))
	}
}

// extractSolverConfig extracts solver configuration from a map
func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractInt64(data, "word_length"); ok {
		solver.WordLength = val
	}
	if val, ok := utils.ExtractBool(data, "exclude_plurals"); ok {
		solver.ExcludePlurals = val
	}
	if val, ok := utils.ExtractBool(data, "order_by_score_desc"); ok {
		solver.OrderByScoreDesc = val
	}
}

// extractSourcesConfig extracts word source configuration from a map
func extractSourcesConfig(data map[string]any, sources *SourcesConfig) {
	if val, ok := utils.ExtractStringSlice(data, "word_lists"); ok {
		sources.WordLists = val
	}
	if val, ok := utils.ExtractString(data, "score_file"); ok {
		sources.ScoreFile = val
	}
	if val, ok := utils.ExtractIntSlice(data, "max_tries"); ok {
		sources.MaxTries = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "suggest_limit"); ok {
		cli.SuggestLimit = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
