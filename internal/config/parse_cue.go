package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// parseCUE extracts a Config from CUE source.
// Required fields:
//   - configVersion: string
//
// Optional sections: types, git, hook.
func parseCUE(data []byte) (Config, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}

	var cfg Config
	cv := v.LookupPath(cue.ParsePath("configVersion"))
	if err := cv.Decode(&cfg.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}

	tv := v.LookupPath(cue.ParsePath("types"))
	if tv.Exists() {
		if err := tv.Decode(&cfg.Types); err != nil {
			return Config{}, fmt.Errorf("invalid value for types: %v", err)
		}
	}

	gv := v.LookupPath(cue.ParsePath("git"))
	if gv.Exists() {
		if err := decodeStringField(gv, "versionMin", &cfg.Git.VersionMin); err != nil {
			return Config{}, err
		}
		if err := decodeStringField(gv, "versionMax", &cfg.Git.VersionMax); err != nil {
			return Config{}, err
		}
	}

	hv := v.LookupPath(cue.ParsePath("hook"))
	if hv.Exists() {
		if err := decodeStringField(hv, "script", &cfg.Hook.Script); err != nil {
			return Config{}, err
		}
		to := hv.LookupPath(cue.ParsePath("timeoutMs"))
		if to.Exists() {
			if to.Kind() != cue.IntKind {
				return Config{}, fmt.Errorf("invalid type for field: hook.timeoutMs (expected int)")
			}
			if err := to.Decode(&cfg.Hook.TimeoutMs); err != nil {
				return Config{}, fmt.Errorf("invalid value for hook.timeoutMs: %v", err)
			}
		}
	}
	return cfg, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func decodeStringField(v cue.Value, name string, dst *string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}
