// Package admission is the lexical gate in front of the sandbox. It is a
// coarse keyword denylist, not a SQL parser: matches inside string literals
// are rejected too, trading false positives for a smaller attack surface.
package admission

import (
	"errors"
	"regexp"
	"strings"
)

// Denylisted keywords: data mutation, schema mutation, and database
// attachment or engine configuration directives.
var forbidden = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|attach|pragma)\b`)

var (
	// ErrForbiddenKeywords is returned for queries containing a denylisted
	// keyword. The text is fixed; callers surface it verbatim.
	ErrForbiddenKeywords = errors.New("forbidden keywords")

	// ErrMultipleStatements is returned when statement text remains after
	// the single permitted trailing terminator.
	ErrMultipleStatements = errors.New("multiple statements not allowed")
)

// Admit decides whether query may reach the sandbox. It trims surrounding
// whitespace and strips exactly one trailing terminator, then rejects on any
// denylisted keyword or any remaining terminator. The cleaned query is
// returned for execution; an empty query is allowed and left to the engine.
func Admit(query string) (string, error) {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")

	if forbidden.MatchString(q) {
		return "", ErrForbiddenKeywords
	}
	if strings.Contains(q, ";") {
		return "", ErrMultipleStatements
	}
	return q, nil
}
