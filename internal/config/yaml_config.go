package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file. Areas and
// categories are reference data that is easier to manage in YAML than env
// vars; the server seeds missing rows on startup.
type YAMLConfig struct {
	Areas      []AreaConfig     `yaml:"areas"`
	Categories []CategoryConfig `yaml:"categories"`
}

// AreaConfig defines a neighbourhood area in the YAML config.
type AreaConfig struct {
	Slug          string `yaml:"slug"`
	Name          string `yaml:"name"`
	NameHi        string `yaml:"name_hi,omitempty"`
	Description   string `yaml:"description,omitempty"`
	DescriptionHi string `yaml:"description_hi,omitempty"`
}

// CategoryConfig defines a business category in the YAML config.
type CategoryConfig struct {
	Slug   string `yaml:"slug"`
	Name   string `yaml:"name"`
	NameHi string `yaml:"name_hi,omitempty"`
	Icon   string `yaml:"icon,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
