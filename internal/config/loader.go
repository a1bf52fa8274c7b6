package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load resolves the arcade configuration.
// Search order: customPath -> ~/.pocketbounty/arcade.yaml -> ./arcade.yaml -> embedded default
//
// The file overlays the built-in defaults, so a partial config only needs
// the keys it changes.
func Load(customPath string) (ArcadeConfig, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arcade.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local config file
	if data, err := os.ReadFile("arcade.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pocketbounty", filename)
}

// loadEnvOnce loads a .env file (if present) into the process
// environment exactly once.
var loadEnvOnce sync.Once

// LoadWallet resolves the wallet section with environment overrides
// applied on top of the file values. A .env file in the working
// directory is honored.
func LoadWallet(customPath string) (WalletConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg.Wallet, err
	}
	applyWalletEnv(&cfg.Wallet)
	return cfg.Wallet, nil
}

// applyWalletEnv overrides wallet settings from the environment.
// Setting an API URL via environment implies live mode unless
// POCKET_BOUNTY_DEMO explicitly says otherwise.
func applyWalletEnv(w *WalletConfig) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load() // Missing .env is fine
	})

	if v := os.Getenv("POCKET_BOUNTY_API_URL"); v != "" {
		w.APIURL = v
		w.Demo = false
	}
	if v := os.Getenv("POCKET_BOUNTY_API_TOKEN"); v != "" {
		w.Token = v
	}
	if v := os.Getenv("POCKET_BOUNTY_DEMO"); v != "" {
		if demo, err := strconv.ParseBool(v); err == nil {
			w.Demo = demo
		}
	}
}
