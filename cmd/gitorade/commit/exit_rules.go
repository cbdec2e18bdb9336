package commit

const (
	exitCodeSuccess    = 0
	exitCodeDelegate   = 1
	exitCodeValidation = 2
)

// validationError is reported before any git invocation happens. It maps to
// a distinct exit code so callers can tell bad input from a failed commit.
type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }
func (e validationError) ExitCode() int { return exitCodeValidation }
