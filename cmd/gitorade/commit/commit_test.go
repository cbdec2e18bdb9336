package commit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flarebyte/gitorade/internal/config"
)

func TestValidationError_ExitCode(t *testing.T) {
	err := validationError{msg: "bad input"}
	if err.Error() != "bad input" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if err.ExitCode() != exitCodeValidation {
		t.Fatalf("unexpected exit code: %d", err.ExitCode())
	}
}

func TestTypeSet_DefaultWhenUnconfigured(t *testing.T) {
	set, err := typeSet(config.Default())
	if err != nil {
		t.Fatalf("type set: %v", err)
	}
	if !set.Contains("feat") || !set.Contains("release") {
		t.Fatalf("default set incomplete: %v", set.Tokens())
	}
}

func TestTypeSet_ConfigOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Types = []string{"feature", "bugfix"}
	set, err := typeSet(cfg)
	if err != nil {
		t.Fatalf("type set: %v", err)
	}
	if set.Contains("feat") {
		t.Fatalf("default type leaked into configured set")
	}
	if !set.Contains("bugfix") {
		t.Fatalf("configured type missing: %v", set.Tokens())
	}
}

func TestTypeSet_BadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Types = []string{"feat", "feat"}
	if _, err := typeSet(cfg); err == nil {
		t.Fatalf("expected error for duplicate types")
	}
}

func TestGitRange(t *testing.T) {
	cfg := config.Default()
	r := gitRange(cfg)
	if r.Min != "2.0.0" || r.Max != "3.0.0" {
		t.Fatalf("unexpected default range: %+v", r)
	}
	cfg.Git.VersionMin = "2.20.0"
	cfg.Git.VersionMax = "2.50.0"
	r = gitRange(cfg)
	if r.Min != "2.20.0" || r.Max != "2.50.0" {
		t.Fatalf("unexpected configured range: %+v", r)
	}
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(p, []byte("{\n  configVersion: \"1\"\n  types: [\"feature\"]\n}\n"), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	cfg, err := loadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Types) != 1 || cfg.Types[0] != "feature" {
		t.Fatalf("unexpected types: %v", cfg.Types)
	}
}

func TestLoadConfig_DiscoveryInWorkingDirectory(t *testing.T) {
	d := t.TempDir()
	if err := os.WriteFile(filepath.Join(d, ".gitorade.yaml"), []byte("configVersion: \"1\"\ntypes: [feature]\n"), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	t.Chdir(d)
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Types) != 1 {
		t.Fatalf("expected discovered config, got %+v", cfg)
	}
}

func TestLoadConfig_DefaultsWhenAbsent(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ConfigVersion != config.CurrentConfigVersion || len(cfg.Types) != 0 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
