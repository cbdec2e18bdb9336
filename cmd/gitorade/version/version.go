package version

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/flarebyte/gitorade/internal/buildinfo"
	"github.com/flarebyte/gitorade/internal/gitexec"
	"github.com/spf13/cobra"
)

var (
	flagShort bool
	flagJSON  bool
	flagGit   bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagGit {
			// Report the delegate git binary instead of the CLI itself.
			g, err := gitexec.Find(cmd.Context(), gitexec.DefaultRange())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(os.Stdout, "%s %s\n", g.Path, g.Version)
			return err
		}
		if flagShort || !flagJSON {
			// Stable output for scripting: exactly one line.
			if _, err := fmt.Fprintf(os.Stdout, "gitorade %s\n", buildinfo.Summary()); err != nil {
				return err
			}
			return nil
		}

		// If JSON is requested explicitly, print a diagnostic object to stdout
		// and a human friendly line to stderr.
		_, _ = fmt.Fprintf(os.Stderr, "gitorade version: %s\n", buildinfo.Summary())
		out := map[string]any{
			"version":   buildinfo.Version,
			"commit":    buildinfo.Commit,
			"date":      buildinfo.Date,
			"go":        runtime.Version(),
			"go_os":     runtime.GOOS,
			"go_arch":   runtime.GOARCH,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		}
		if g, err := gitexec.Find(cmd.Context(), gitexec.DefaultRange()); err == nil {
			out["git_path"] = g.Path
			out["git_version"] = g.Version
		}
		return encodeJSON(os.Stdout, out)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	VersionCmd.Flags().BoolVar(&flagGit, "git", false, "Print the delegate git binary path and version")
}
