package doctor

import (
	"errors"
	"fmt"
	"os"

	"github.com/flarebyte/gitorade/internal/gitexec"
	"github.com/flarebyte/gitorade/internal/gitrepo"
	"github.com/spf13/cobra"
)

var flagJSON bool

type report struct {
	GitFound    bool   `json:"gitFound"`
	GitPath     string `json:"gitPath,omitempty"`
	GitVersion  string `json:"gitVersion,omitempty"`
	GitError    string `json:"gitError,omitempty"`
	Repository  bool   `json:"repository"`
	Branch      string `json:"branch,omitempty"`
	Head        string `json:"head,omitempty"`
	StagedCount int    `json:"stagedCount"`
	RepoError   string `json:"repoError,omitempty"`
}

func (r report) healthy() bool {
	return r.GitFound && r.GitError == "" && r.Repository && r.RepoError == ""
}

// Cmd represents the `gitorade doctor` command.
var Cmd = &cobra.Command{
	Use:           "doctor",
	Short:         "Check that the environment is ready for committing",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rep report

		g, err := gitexec.Find(cmd.Context(), gitexec.DefaultRange())
		switch {
		case err == nil:
			rep.GitFound = true
			rep.GitPath = g.Path
			rep.GitVersion = g.Version
		case errors.Is(err, gitexec.ErrGitNotFound):
			rep.GitError = err.Error()
		default:
			// Found but unusable (version out of range, unparseable output).
			rep.GitFound = true
			rep.GitError = err.Error()
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		info, err := gitrepo.Inspect(cwd)
		if err != nil {
			rep.RepoError = err.Error()
		} else {
			rep.Repository = true
			rep.Branch = info.Branch
			rep.Head = info.Head
			rep.StagedCount = info.StagedCount
		}

		if flagJSON {
			if err := encodeJSON(os.Stdout, rep); err != nil {
				return err
			}
		} else {
			printReport(rep)
		}
		if !rep.healthy() {
			return doctorError{}
		}
		return nil
	},
}

func printReport(rep report) {
	if rep.GitError != "" {
		fmt.Fprintf(os.Stdout, "git: FAIL (%s)\n", rep.GitError)
	} else {
		fmt.Fprintf(os.Stdout, "git: ok (%s %s)\n", rep.GitPath, rep.GitVersion)
	}
	if rep.RepoError != "" {
		fmt.Fprintf(os.Stdout, "repository: FAIL (%s)\n", rep.RepoError)
		return
	}
	branch := rep.Branch
	if branch == "" {
		branch = "(detached or unborn)"
	}
	fmt.Fprintf(os.Stdout, "repository: ok (branch %s)\n", branch)
	fmt.Fprintf(os.Stdout, "staged files: %d\n", rep.StagedCount)
}

type doctorError struct{}

func (doctorError) Error() string { return "environment is not ready for committing" }
func (doctorError) ExitCode() int { return 2 }

func init() {
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the report as JSON")
}
