package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the optional gitorade configuration. Zero values mean "use the
// built-in defaults"; Default() returns the effective defaults.
type Config struct {
	ConfigVersion string
	// Types replaces the built-in commit-type set when non-empty.
	Types []string
	Git   GitSection
	Hook  HookSection
}

// GitSection overrides the supported git version range.
type GitSection struct {
	VersionMin string
	VersionMax string
}

// HookSection points at an optional Lua message hook.
type HookSection struct {
	Script    string
	TimeoutMs int
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{ConfigVersion: CurrentConfigVersion}
}

// WellKnownNames are the config file names probed in the working directory,
// in priority order.
var WellKnownNames = []string{".gitorade.cue", ".gitorade.yaml"}

// Discover returns the path of a well-known config file under dir, or ""
// when none exists.
func Discover(dir string) string {
	for _, name := range WellKnownNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Load parses the config file at path, dispatching on extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	switch filepath.Ext(path) {
	case ".cue":
		cfg, err = parseCUE(data)
	case ".yaml", ".yml":
		cfg, err = parseYAML(data)
	default:
		return Config{}, errors.New("unsupported config format: expected .cue or .yaml")
	}
	if err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if !IsSupportedConfigVersion(cfg.ConfigVersion) {
		return fmt.Errorf("unsupported configVersion: %q (supported: %s)", cfg.ConfigVersion, SupportedConfigVersionsCSV())
	}
	if cfg.Types != nil && len(cfg.Types) == 0 {
		return errors.New("types must not be an empty list")
	}
	if (cfg.Git.VersionMin == "") != (cfg.Git.VersionMax == "") {
		return errors.New("git.versionMin and git.versionMax must be set together")
	}
	if cfg.Hook.TimeoutMs < 0 {
		return errors.New("hook.timeoutMs must not be negative")
	}
	if cfg.Hook.TimeoutMs > 0 && cfg.Hook.Script == "" {
		return errors.New("hook.timeoutMs requires hook.script")
	}
	return nil
}
