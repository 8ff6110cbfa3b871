package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the client configuration
type Config struct {
	Solver   SolverConfig   `yaml:"solver" mapstructure:"solver"`
	Ensemble EnsembleConfig `yaml:"ensemble" mapstructure:"ensemble"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// SolverConfig contains Kepler solver settings
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance" mapstructure:"tolerance"`
	MaxIterations int     `yaml:"max_iterations" mapstructure:"max_iterations"`
	HighEccSeed   float64 `yaml:"high_ecc_seed" mapstructure:"high_ecc_seed"`
}

// EnsembleConfig contains ensemble computation settings
type EnsembleConfig struct {
	Workers   int `yaml:"workers" mapstructure:"workers"`
	MaxCurves int `yaml:"max_curves" mapstructure:"max_curves"`
}

// OutputConfig contains output presentation settings
type OutputConfig struct {
	RVUnit     string `yaml:"rv_unit" mapstructure:"rv_unit"`
	TimeFormat string `yaml:"time_format" mapstructure:"time_format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Tolerance:     1e-10,
			MaxIterations: 50,
			HighEccSeed:   0.8,
		},
		Ensemble: EnsembleConfig{
			Workers:   0, // 0 = one per CPU
			MaxCurves: 128,
		},
		Output: OutputConfig{
			RVUnit:     "km/s",
			TimeFormat: "mjd",
		},
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(homeDir, ".rvorbit"))
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("RVORBIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".rvorbit")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Solver.Tolerance <= 0 {
		return fmt.Errorf("solver tolerance must be positive")
	}
	if config.Solver.MaxIterations <= 0 {
		return fmt.Errorf("solver max iterations must be positive")
	}
	if config.Ensemble.MaxCurves < 0 {
		return fmt.Errorf("ensemble max curves cannot be negative")
	}
	return nil
}
