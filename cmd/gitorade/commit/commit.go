package commit

import (
	"fmt"
	"os"

	"github.com/flarebyte/gitorade/internal/commitmsg"
	"github.com/flarebyte/gitorade/internal/config"
	"github.com/flarebyte/gitorade/internal/gitexec"
	"github.com/flarebyte/gitorade/internal/hook"
	"github.com/spf13/cobra"
)

var (
	flagMessage string
	flagConfig  string
	flagDryRun  bool
)

// Cmd represents the `gitorade commit` command.
var Cmd = &cobra.Command{
	Use:           "commit <type> [files...] [-- git-args...]",
	Short:         "Commit staged changes with a tagged message",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagMessage == "" {
			return validationError{msg: "missing required flag: --message"}
		}

		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return validationError{msg: err.Error()}
		}
		set, err := typeSet(cfg)
		if err != nil {
			return validationError{msg: err.Error()}
		}

		token := args[0]
		files := args[1:]
		var extra []string
		if at := cmd.ArgsLenAtDash(); at >= 0 {
			if at < 1 {
				return validationError{msg: "missing commit type before --"}
			}
			files = args[1:at]
			extra = args[at:]
		}

		message, err := commitmsg.Format(set, token, flagMessage)
		if err != nil {
			return validationError{msg: err.Error()}
		}
		if cfg.Hook.Script != "" {
			h, err := hook.Load(cfg.Hook.Script, cfg.Hook.TimeoutMs)
			if err != nil {
				return validationError{msg: err.Error()}
			}
			message, err = h.Apply(token, message)
			if err != nil {
				return validationError{msg: err.Error()}
			}
		}

		if flagDryRun {
			_, err := fmt.Fprintln(os.Stdout, message)
			return err
		}

		git, err := gitexec.Find(cmd.Context(), gitRange(cfg))
		if err != nil {
			return err
		}
		res, err := gitexec.Commit(cmd.Context(), gitexec.CommitOptions{
			Git:     git,
			Message: message,
			Files:   files,
			Extra:   extra,
		})
		if err != nil {
			// Delegate failures carry git's own exit code and output.
			return err
		}
		if res.Output != "" {
			_, _ = fmt.Fprint(os.Stdout, res.Output)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagMessage, "message", "m", "", "Commit message (required)")
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue or .yaml)")
	Cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the tagged message without committing")
}

// loadConfig resolves the effective configuration: an explicit --config
// path, else a well-known file in the working directory, else defaults.
func loadConfig(explicit string) (config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	if found := config.Discover(cwd); found != "" {
		return config.Load(found)
	}
	return config.Default(), nil
}

func typeSet(cfg config.Config) (commitmsg.Set, error) {
	if len(cfg.Types) == 0 {
		return commitmsg.DefaultSet(), nil
	}
	return commitmsg.NewSet(cfg.Types)
}

func gitRange(cfg config.Config) gitexec.VersionRange {
	if cfg.Git.VersionMin != "" {
		return gitexec.VersionRange{Min: cfg.Git.VersionMin, Max: cfg.Git.VersionMax}
	}
	return gitexec.DefaultRange()
}
