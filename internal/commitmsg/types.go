package commitmsg

import (
	"fmt"
	"strings"
)

// Type is a commit-type token such as "feat" or "fix". A Type is only
// meaningful as a member of a Set; tokens are matched case-sensitively.
type Type string

// DefaultTypes is the built-in commit-type set, in display order.
var DefaultTypes = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
	"chore",
	"revert",
	"build",
	"ci",
	"release",
	"other",
}

// Set is an ordered collection of valid commit types. It is built once per
// invocation (defaults or config) and never mutated afterwards.
type Set struct {
	ordered []Type
	members map[Type]struct{}
}

// NewSet builds a Set from the given tokens. Tokens must be non-empty,
// contain no whitespace, and be unique.
func NewSet(tokens []string) (Set, error) {
	if len(tokens) == 0 {
		return Set{}, fmt.Errorf("commit type set cannot be empty")
	}
	s := Set{members: make(map[Type]struct{}, len(tokens))}
	for _, tok := range tokens {
		if tok == "" || strings.TrimSpace(tok) != tok || strings.ContainsAny(tok, " \t\n") {
			return Set{}, fmt.Errorf("invalid commit type token: %q", tok)
		}
		t := Type(tok)
		if _, dup := s.members[t]; dup {
			return Set{}, fmt.Errorf("duplicate commit type token: %q", tok)
		}
		s.ordered = append(s.ordered, t)
		s.members[t] = struct{}{}
	}
	return s, nil
}

// DefaultSet returns the built-in set.
func DefaultSet() Set {
	s, err := NewSet(DefaultTypes)
	if err != nil {
		// DefaultTypes is a compile-time constant list; it cannot fail.
		panic(err)
	}
	return s
}

// Contains reports whether token is a member of the set.
func (s Set) Contains(token string) bool {
	_, ok := s.members[Type(token)]
	return ok
}

// Parse returns the Type for token, or an InvalidTypeError naming the
// valid set.
func (s Set) Parse(token string) (Type, error) {
	if !s.Contains(token) {
		return "", &InvalidTypeError{Token: token, Valid: s.Tokens()}
	}
	return Type(token), nil
}

// Tokens returns the member tokens in display order.
func (s Set) Tokens() []string {
	out := make([]string, 0, len(s.ordered))
	for _, t := range s.ordered {
		out = append(out, string(t))
	}
	return out
}

// CSV returns the member tokens joined with ", " for error messages.
func (s Set) CSV() string {
	return strings.Join(s.Tokens(), ", ")
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.ordered) }
