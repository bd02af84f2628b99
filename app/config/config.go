package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// Business Information
	Business BusinessConfig `json:"business"`

	// System Configuration
	System SystemConfig `json:"system"`
}

// BusinessConfig holds the shop identity printed on receipts
type BusinessConfig struct {
	Name     string `json:"name"`
	Locality string `json:"locality"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// SystemConfig holds system settings
type SystemConfig struct {
	DataPath    string `json:"data_path"`
	Language    string `json:"language"`
	DisplayPort string `json:"display_port"` // customer display websocket port
}

// DefaultConfig returns the out-of-the-box configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Business: BusinessConfig{
			Name:     "Boucherie Royale",
			Locality: "de Saaba",
			Address:  "Saaba, Burkina Faso",
			Phone:    "+226 XX XX XX XX",
		},
		System: SystemConfig{
			Language:    "fr",
			DisplayPort: "8080",
		},
	}
}

// GetConfigDir returns the directory holding config and data, creating it
// if needed.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}

	configDir := filepath.Join(base, "BoucheriePos")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig loads configuration from config.json. A missing file is the
// first run and yields the defaults.
func LoadConfig() (*AppConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to config.json
func SaveConfig(cfg *AppConfig) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	return nil
}
