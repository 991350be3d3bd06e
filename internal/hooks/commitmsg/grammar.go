package commitmsg

import (
	"regexp"
	"strings"
)

// Pattern is the grammar a commit message header must match.
const Pattern = `^(feat|fix|docs|style|refactor|test|chore)(\([a-z-]+\))?: .+$`

// Example is a header which satisfies Pattern.
const Example = "feat(auth): add JWT authentication"

// FormatHint describes the expected header layout.
const FormatHint = "<type>(<scope>): <description>"

// Types lists the accepted type tokens in the order they appear in Pattern.
var Types = []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"}

var grammar = regexp.MustCompile(Pattern)

// submatch indices of grammar.
const (
	typeGroup  = 1
	scopeGroup = 2
)

// matchHeader applies the grammar to a single line. It returns the type and
// the parenthesized scope (empty if absent) on success.
func matchHeader(line string) (typ string, scope string, ok bool) {
	m := grammar.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}

	scope = strings.TrimSuffix(strings.TrimPrefix(m[scopeGroup], "("), ")")

	return m[typeGroup], scope, true
}
