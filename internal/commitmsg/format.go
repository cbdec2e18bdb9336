package commitmsg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyMessage is returned when the commit message is empty or
// whitespace-only.
var ErrEmptyMessage = errors.New("commit message cannot be empty")

// InvalidTypeError reports a token outside the valid commit-type set.
type InvalidTypeError struct {
	Token string
	Valid []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid commit type: %q (valid: %s)", e.Token, strings.Join(e.Valid, ", "))
}

// Request pairs a validated commit type with its message. It is created per
// invocation and consumed once.
type Request struct {
	Type    Type
	Message string
}

// NewRequest validates token against set and message for emptiness.
func NewRequest(set Set, token, message string) (Request, error) {
	t, err := set.Parse(token)
	if err != nil {
		return Request{}, err
	}
	if strings.TrimSpace(message) == "" {
		return Request{}, ErrEmptyMessage
	}
	return Request{Type: t, Message: message}, nil
}

// Formatted returns the tagged commit message, "[<type>]: <message>".
func (r Request) Formatted() string {
	return "[" + string(r.Type) + "]: " + r.Message
}

// Format validates token and message against set and returns the tagged
// commit message. Pure: identical inputs always yield identical output.
func Format(set Set, token, message string) (string, error) {
	r, err := NewRequest(set, token, message)
	if err != nil {
		return "", err
	}
	return r.Formatted(), nil
}
