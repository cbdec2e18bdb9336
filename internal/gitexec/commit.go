package gitexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommitOptions describe a single delegated `git commit` invocation.
type CommitOptions struct {
	// Git is the binary to invoke, typically from Find.
	Git Git
	// Dir is the working directory; empty means the process cwd.
	Dir string
	// Message is the final, already formatted commit message.
	Message string
	// Files are pathspecs forwarded after the message.
	Files []string
	// Extra are pass-through arguments forwarded unmodified to git commit.
	Extra []string
}

// CommitResult holds the delegate's combined output on success.
type CommitResult struct {
	Output string
}

// DelegateError carries a failed git invocation's exit code and verbatim
// combined output. The output is not reinterpreted; commits are never
// retried.
type DelegateError struct {
	Code   int
	Output string
}

func (e *DelegateError) Error() string {
	msg := strings.TrimSpace(e.Output)
	if msg == "" {
		msg = fmt.Sprintf("git commit failed with exit code %d", e.Code)
	}
	return msg
}

// ExitCode mirrors the delegate's exit status for the process exit.
func (e *DelegateError) ExitCode() int { return e.Code }

// Commit runs `git commit -m <message> [files...] [extra...]` and captures
// combined output. Failures come back as a DelegateError.
func Commit(ctx context.Context, opts CommitOptions) (CommitResult, error) {
	if opts.Git.Path == "" {
		return CommitResult{}, ErrGitNotFound
	}
	args := []string{"commit", "-m", opts.Message}
	args = append(args, opts.Files...)
	args = append(args, opts.Extra...)

	cmd := exec.CommandContext(ctx, opts.Git.Path, args...)
	cmd.Dir = opts.Dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return CommitResult{}, &DelegateError{Code: exitErr.ExitCode(), Output: buf.String()}
		}
		return CommitResult{}, fmt.Errorf("git commit failed to start: %w", err)
	}
	return CommitResult{Output: buf.String()}, nil
}
