package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlConfig struct {
	ConfigVersion string   `yaml:"configVersion"`
	Types         []string `yaml:"types"`
	Git           struct {
		VersionMin string `yaml:"versionMin"`
		VersionMax string `yaml:"versionMax"`
	} `yaml:"git"`
	Hook struct {
		Script    string `yaml:"script"`
		TimeoutMs int    `yaml:"timeoutMs"`
	} `yaml:"hook"`
}

// parseYAML extracts a Config from YAML source.
func parseYAML(data []byte) (Config, error) {
	var raw yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}
	if raw.ConfigVersion == "" {
		return Config{}, fmt.Errorf("missing required field: configVersion")
	}
	cfg := Config{
		ConfigVersion: raw.ConfigVersion,
		Types:         raw.Types,
	}
	cfg.Git.VersionMin = raw.Git.VersionMin
	cfg.Git.VersionMax = raw.Git.VersionMax
	cfg.Hook.Script = raw.Hook.Script
	cfg.Hook.TimeoutMs = raw.Hook.TimeoutMs
	return cfg, nil
}
