package buildinfo

import (
	"github.com/flarebyte/gitorade/cli"
)

// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags; values set in the cli package
// (cli.Version/cli.Date) are honored for compatibility with external build
// scripts.

var (
	// Version is the semantic version or custom string. Defaults to cli.Version or "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional). Falls back to cli.Date.
	Date = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}

	d := Date
	if d == "" {
		d = cli.Date
	}

	extra := ""
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		extra = "commit=" + c
	}
	if d != "" {
		if extra != "" {
			extra += ", "
		}
		extra += "date=" + d
	}
	if extra != "" {
		v += " (" + extra + ")"
	}
	return v
}
