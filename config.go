// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".pharmadex.yaml"

type InventoryConfig struct {
	SeedFile          string `yaml:"seed_file"`
	LowStockThreshold int    `yaml:"low_stock_threshold"`
}

type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"` // 0 keeps every sale
}

type CardsConfig struct {
	CacheMinutes int    `yaml:"cache_minutes"`
	WordWrap     int    `yaml:"word_wrap"`
	Style        string `yaml:"style"` // "auto" or a glamour standard style
}

type TraceConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	Inventory InventoryConfig `yaml:"inventory"`
	History   HistoryConfig   `yaml:"history"`
	Cards     CardsConfig     `yaml:"cards"`
	Trace     TraceConfig     `yaml:"trace"`
}

func defaultConfig() Config {
	return Config{
		Inventory: InventoryConfig{LowStockThreshold: 5},
		Cards: CardsConfig{
			CacheMinutes: 30,
			WordWrap:     72,
			Style:        "auto",
		},
	}
}

// getConfigPath resolves the config file: explicit flag, then
// PHARMADEX_CONFIG, then the home directory.
func getConfigPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv("PHARMADEX_CONFIG"); env != "" {
		return env, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config file. A missing or unreadable file yields the
// defaults; only a file that exists but fails to parse is reported.
func LoadConfig(override string) (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath(override)
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.normalize()
	return &config, nil
}

// normalize replaces values that would disable a component by accident.
func (c *Config) normalize() {
	defaults := defaultConfig()
	if c.Inventory.LowStockThreshold < 0 {
		c.Inventory.LowStockThreshold = defaults.Inventory.LowStockThreshold
	}
	if c.History.MaxEntries < 0 {
		c.History.MaxEntries = 0
	}
	if c.Cards.CacheMinutes <= 0 {
		c.Cards.CacheMinutes = defaults.Cards.CacheMinutes
	}
	if c.Cards.WordWrap <= 0 {
		c.Cards.WordWrap = defaults.Cards.WordWrap
	}
	if c.Cards.Style == "" {
		c.Cards.Style = defaults.Cards.Style
	}
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func displaySettings(override string) {
	configPath, err := getConfigPath(override)
	if err != nil {
		fmt.Printf("%sFailed to get config path: %v%s\n", Error, err, Reset)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("%s%v%s\n", Error, err, Reset)
			return
		}
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Printf("%sFailed to load configuration: %v%s\n", Error, err, Reset)
		return
	}

	fmt.Printf("Pharmadex Configuration Settings\n")
	fmt.Printf("================================\n\n")
	if configExists {
		fmt.Printf("Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	}

	seed := config.Inventory.SeedFile
	if seed == "" {
		seed = "(none)"
	}
	history := "unbounded"
	if config.History.MaxEntries > 0 {
		history = fmt.Sprintf("last %d sales", config.History.MaxEntries)
	}

	fmt.Printf("%sInventory:%s\n", Green, Reset)
	fmt.Printf("  • seed_file: %s\n", seed)
	if warning := seedFileWarning(config.Inventory.SeedFile); warning != "" {
		fmt.Printf("    %s%s%s\n", Warning, warning, Reset)
	}
	fmt.Printf("  • low_stock_threshold: %d\n\n", config.Inventory.LowStockThreshold)
	fmt.Printf("%sHistory:%s\n", Green, Reset)
	fmt.Printf("  • max_entries: %d (%s)\n\n", config.History.MaxEntries, history)
	fmt.Printf("%sCards:%s\n", Green, Reset)
	fmt.Printf("  • cache_minutes: %d\n", config.Cards.CacheMinutes)
	fmt.Printf("  • word_wrap: %d\n", config.Cards.WordWrap)
	fmt.Printf("  • style: %s\n\n", config.Cards.Style)
	fmt.Printf("%sTrace:%s\n", Green, Reset)
	fmt.Printf("  • enabled: %t\n", config.Trace.Enabled)
}

// seedFileWarning describes why a configured seed file cannot be loaded.
func seedFileWarning(path string) string {
	if path == "" {
		return ""
	}
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "seed file does not exist; start-up will fail"
	case err != nil:
		return fmt.Sprintf("seed file is not readable: %v", err)
	case info.IsDir():
		return "seed file is a directory"
	}
	return ""
}
