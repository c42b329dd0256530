// Config loading for the ramen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir        = "data_dir"
	cfgKeyAcceptLanguage = "accept_language"
	cfgKeySearchURL      = "search_url"
	cfgKeyHomeLat        = "home_lat"
	cfgKeyHomeLng        = "home_lng"

	// defaultAcceptLanguage matches the language the journal is kept in.
	defaultAcceptLanguage = "zh-TW"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Ramen Reality CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Language preference forwarded to the remote place search
accept_language: zh-TW

# Remote place search endpoint (optional; defaults to the public
# Nominatim instance)
# search_url:

# Home coordinate used by "ramen locate" (optional)
# home_lat:
# home_lng:
`

// configValues are the settings the CLI reads from config.yaml.
type configValues struct {
	DataDir        string
	AcceptLanguage string
	SearchURL      string
	HomeLat        float64
	HomeLng        float64
	HomeSet        bool
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*configValues, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyAcceptLanguage, defaultAcceptLanguage)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &configValues{
		DataDir:        v.GetString(cfgKeyDataDir),
		AcceptLanguage: v.GetString(cfgKeyAcceptLanguage),
		SearchURL:      v.GetString(cfgKeySearchURL),
		HomeLat:        v.GetFloat64(cfgKeyHomeLat),
		HomeLng:        v.GetFloat64(cfgKeyHomeLng),
		HomeSet:        v.IsSet(cfgKeyHomeLat) && v.IsSet(cfgKeyHomeLng),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
