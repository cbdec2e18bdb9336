package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	d := t.TempDir()
	p := filepath.Join(d, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return p
}

func TestLoad_CUEFull(t *testing.T) {
	p := writeConfig(t, "gitorade.cue", `{
  configVersion: "1"
  types: ["feature", "bugfix", "docs"]
  git: {
    versionMin: "2.20.0"
    versionMax: "2.50.0"
  }
  hook: {
    script: "hooks/format.lua"
    timeoutMs: 250
  }
}
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ConfigVersion != "1" {
		t.Fatalf("unexpected configVersion: %q", cfg.ConfigVersion)
	}
	if len(cfg.Types) != 3 || cfg.Types[0] != "feature" {
		t.Fatalf("unexpected types: %v", cfg.Types)
	}
	if cfg.Git.VersionMin != "2.20.0" || cfg.Git.VersionMax != "2.50.0" {
		t.Fatalf("unexpected git range: %+v", cfg.Git)
	}
	if cfg.Hook.Script != "hooks/format.lua" || cfg.Hook.TimeoutMs != 250 {
		t.Fatalf("unexpected hook: %+v", cfg.Hook)
	}
}

func TestLoad_CUEMinimal(t *testing.T) {
	p := writeConfig(t, "min.cue", "{\n  configVersion: \"1\"\n}\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Types) != 0 {
		t.Fatalf("expected no types override, got %v", cfg.Types)
	}
}

func TestLoad_UnknownConfigVersion(t *testing.T) {
	p := writeConfig(t, "unknown_version.cue", "{\n  configVersion: \"2\"\n}\n")
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "unsupported configVersion: \"2\" (supported: 1)"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestLoad_MissingConfigVersion(t *testing.T) {
	p := writeConfig(t, "bad.cue", "{\n  types: [\"feat\"]\n}\n")
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "missing required field: configVersion" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	p := writeConfig(t, "gitorade.yaml", `configVersion: "1"
types:
  - feat
  - fix
git:
  versionMin: 2.10.0
  versionMax: 3.0.0
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Types) != 2 || cfg.Types[1] != "fix" {
		t.Fatalf("unexpected types: %v", cfg.Types)
	}
	if cfg.Git.VersionMin != "2.10.0" {
		t.Fatalf("unexpected git range: %+v", cfg.Git)
	}
}

func TestLoad_YAMLUnknownField(t *testing.T) {
	p := writeConfig(t, "gitorade.yaml", "configVersion: \"1\"\ncommitTypes: [feat]\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	p := writeConfig(t, "gitorade.toml", "configVersion = \"1\"\n")
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "unsupported config format: expected .cue or .yaml" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_EmptyTypesListRejected(t *testing.T) {
	p := writeConfig(t, "empty.yaml", "configVersion: \"1\"\ntypes: []\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for empty types list")
	}
}

func TestLoad_HalfGitRangeRejected(t *testing.T) {
	p := writeConfig(t, "half.cue", "{\n  configVersion: \"1\"\n  git: { versionMin: \"2.0.0\" }\n}\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for half-specified git range")
	}
}

func TestLoad_HookTimeoutWithoutScript(t *testing.T) {
	p := writeConfig(t, "hook.cue", "{\n  configVersion: \"1\"\n  hook: { timeoutMs: 100 }\n}\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for timeout without script")
	}
}

func TestDiscover(t *testing.T) {
	d := t.TempDir()
	if got := Discover(d); got != "" {
		t.Fatalf("expected no config, got %q", got)
	}
	yml := filepath.Join(d, ".gitorade.yaml")
	if err := os.WriteFile(yml, []byte("configVersion: \"1\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Discover(d); got != yml {
		t.Fatalf("expected %q, got %q", yml, got)
	}
	// .cue takes priority over .yaml when both exist.
	cue := filepath.Join(d, ".gitorade.cue")
	if err := os.WriteFile(cue, []byte("{configVersion: \"1\"}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Discover(d); got != cue {
		t.Fatalf("expected %q, got %q", cue, got)
	}
}
