package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Lexicon  Lexicon  `yaml:"lexicon"`
	Keywords Keywords `yaml:"keywords"`
	Analysis Analysis `yaml:"analysis"`
	Goals    Goals    `yaml:"goals"`
	Output   Output   `yaml:"output"`
	Server   Server   `yaml:"server"`
}

// Lexicon carries user additions to the built-in sentiment marker lists.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

type Keywords struct {
	TopN        int      `yaml:"top_n"`
	MinTokenLen int      `yaml:"min_token_length"`
	StopTerms   []string `yaml:"stop_terms"`
}

type Analysis struct {
	TrendThreshold  float64 `yaml:"trend_threshold"`
	TimeGranularity string  `yaml:"time_granularity"`
}

type Goals struct {
	MonthlyRecords int `yaml:"monthly_records"`
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

type Server struct {
	Port int `yaml:"port"`
}

// ConfigDir returns the XDG config directory for feedlens.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "feedlens")
}

// DataDir returns the XDG data directory for feedlens.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "feedlens")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/feedlens/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'feedlens init' to create a default config",
		xdgConfig,
	)
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Keywords: Keywords{
			TopN:        10,
			MinTokenLen: 2,
		},
		Analysis: Analysis{
			TrendThreshold:  0.05,
			TimeGranularity: "month",
		},
		Goals:  Goals{MonthlyRecords: 10},
		Server: Server{Port: 8000},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Analysis.TimeGranularity {
	case "day", "week", "month":
	default:
		return nil, fmt.Errorf("invalid time_granularity %q (want day, week, or month)", cfg.Analysis.TimeGranularity)
	}

	return cfg, nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
