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
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".keytree.yaml"

type TreeConfig struct {
	DefaultOrder string `yaml:"default_order"`
	ShowValues   bool   `yaml:"show_values"`
}

type FilterConfig struct {
	Bits   uint `yaml:"bits"`
	Hashes uint `yaml:"hashes"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Filter FilterConfig `yaml:"filter"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		DefaultOrder: "in",
		ShowValues:   true,
	},
	Filter: FilterConfig{
		Bits:   1 << 16,
		Hashes: 5,
	},
	Cache: CacheConfig{
		Expiration: pathCacheExpiration,
		Cleanup:    pathCacheCleanup,
	},
	Log: LogConfig{
		Level: "warn",
	},
}

// LoadConfig reads ~/.keytree.yaml. Any problem with the file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads the file at configPath on top of the defaults, so a
// partial file only overrides the keys it names.
func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
		return &config, nil
	}

	if _, ok := traversalOrders[config.Tree.DefaultOrder]; !ok && config.Tree.DefaultOrder != "tree" {
		config.Tree.DefaultOrder = defaultConfig.Tree.DefaultOrder
	}
	if config.Filter.Bits == 0 || config.Filter.Hashes == 0 {
		config.Filter = defaultConfig.Filter
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, _ := loadConfigFrom(configPath)

	fmt.Printf("🔧 Keytree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %sdefault_order%s: %s\n", Green, Reset, config.Tree.DefaultOrder)
	fmt.Printf("    Traversal printed by `keytree show` (pre, in, post, bft or tree)\n")
	fmt.Printf("  • %sshow_values%s: %t\n\n", Green, Reset, config.Tree.ShowValues)

	fmt.Printf("🔍 %sKey filter:%s\n", Green, Reset)
	fmt.Printf("  • %sbits%s: %d\n", Green, Reset, config.Filter.Bits)
	fmt.Printf("  • %shashes%s: %d\n\n", Green, Reset, config.Filter.Hashes)

	fmt.Printf("🗂  %sPath cache:%s\n", Green, Reset)
	fmt.Printf("  • %sexpiration%s: %s\n", Green, Reset, config.Cache.Expiration)
	fmt.Printf("  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Printf("📜 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n", Green, Reset, config.Log.Level)
}
