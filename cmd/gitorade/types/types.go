package types

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flarebyte/gitorade/internal/commitmsg"
	"github.com/flarebyte/gitorade/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagJSON   bool
)

// Cmd represents the `gitorade types` command.
var Cmd = &cobra.Command{
	Use:           "types",
	Short:         "List the valid commit types",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		path := flagConfig
		if path == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			path = config.Discover(cwd)
		}
		if path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		set := commitmsg.DefaultSet()
		if len(cfg.Types) > 0 {
			built, err := commitmsg.NewSet(cfg.Types)
			if err != nil {
				return err
			}
			set = built
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(set.Tokens())
		}
		for _, tok := range set.Tokens() {
			if _, err := fmt.Fprintln(os.Stdout, tok); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue or .yaml)")
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the types as a JSON array")
}
