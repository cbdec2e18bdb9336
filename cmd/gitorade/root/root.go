package root

import (
	"github.com/flarebyte/gitorade/cmd/gitorade/commit"
	"github.com/flarebyte/gitorade/cmd/gitorade/doctor"
	"github.com/flarebyte/gitorade/cmd/gitorade/types"
	"github.com/flarebyte/gitorade/cmd/gitorade/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for gitorade.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitorade",
		Short: "CLI: tag git commit messages with a semantic commit type before committing",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(commit.Cmd)
	cmd.AddCommand(types.Cmd)
	cmd.AddCommand(doctor.Cmd)
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
