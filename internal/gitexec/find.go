package gitexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Default supported git range. versionMax is exclusive.
const (
	DefaultVersionMin = "2.0.0"
	DefaultVersionMax = "3.0.0"
)

// ErrGitNotFound is returned when no git binary is available on PATH.
var ErrGitNotFound = errors.New("git not found on PATH")

// UnsupportedVersionError reports a git version outside the supported range.
type UnsupportedVersionError struct {
	Version string
	Min     string
	Max     string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("git version %s is not supported (want >=%s, <%s)", e.Version, e.Min, e.Max)
}

// Git describes a usable git binary.
type Git struct {
	Path    string
	Version string
}

// VersionRange is a half-open semver interval [Min, Max).
type VersionRange struct {
	Min string
	Max string
}

// DefaultRange returns the built-in supported git range.
func DefaultRange() VersionRange {
	return VersionRange{Min: DefaultVersionMin, Max: DefaultVersionMax}
}

// Find locates git on PATH and checks its version against the range.
func Find(ctx context.Context, r VersionRange) (Git, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		return Git{}, ErrGitNotFound
	}
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return Git{}, fmt.Errorf("git --version failed: %w", err)
	}
	version, err := ParseVersionOutput(string(out))
	if err != nil {
		return Git{}, err
	}
	if err := CheckVersion(version, r); err != nil {
		return Git{}, err
	}
	return Git{Path: path, Version: version}, nil
}

// ParseVersionOutput extracts the version token from `git --version` output,
// e.g. "git version 2.39.5" or "git version 2.39.5 (Apple Git-154)".
func ParseVersionOutput(out string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return "", fmt.Errorf("unrecognized git version output: %q", strings.TrimSpace(out))
	}
	return fields[2], nil
}

// CheckVersion verifies that version lies in the half-open range r.
func CheckVersion(version string, r VersionRange) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("unrecognized git version %q: %w", version, err)
	}
	min, err := semver.NewVersion(r.Min)
	if err != nil {
		return fmt.Errorf("invalid minimum git version %q: %w", r.Min, err)
	}
	max, err := semver.NewVersion(r.Max)
	if err != nil {
		return fmt.Errorf("invalid maximum git version %q: %w", r.Max, err)
	}
	if v.LessThan(min) || !v.LessThan(max) {
		return &UnsupportedVersionError{Version: version, Min: r.Min, Max: r.Max}
	}
	return nil
}
