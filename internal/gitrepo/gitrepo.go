// Package gitrepo provides read-only inspection of the enclosing git
// repository. All mutation is left to the delegated git binary.
package gitrepo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// ErrNotARepository is returned when dir is not inside a git work tree.
var ErrNotARepository = errors.New("not inside a git repository")

// Info summarizes the repository state relevant to committing.
type Info struct {
	Branch      string
	Head        string
	StagedCount int
}

// Inspect opens the repository enclosing dir and summarizes its state.
func Inspect(dir string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Info{}, ErrNotARepository
		}
		return Info{}, fmt.Errorf("failed to open repository: %w", err)
	}

	var info Info
	if head, err := repo.Head(); err == nil {
		info.Head = head.Hash().String()
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		}
	}
	// Head errors are tolerated: a freshly initialized repository has no
	// commits yet but is still committable.

	wt, err := repo.Worktree()
	if err != nil {
		return Info{}, fmt.Errorf("failed to open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return Info{}, fmt.Errorf("failed to read worktree status: %w", err)
	}
	for _, fs := range status {
		if staged(fs.Staging) {
			info.StagedCount++
		}
	}
	return info, nil
}

func staged(code git.StatusCode) bool {
	switch code {
	case git.Added, git.Modified, git.Deleted, git.Renamed, git.Copied:
		return true
	}
	return false
}
