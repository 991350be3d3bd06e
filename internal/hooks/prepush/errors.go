package prepush

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/breml/conventional-githooks/internal/hooks/commitmsg"
)

const shortHashLen = 7

// RangeError reports the commits of a pushed ref whose message does not
// follow the commit message grammar.
type RangeError struct {
	Ref     string
	Commits []*object.Commit
}

func (e *RangeError) Error() string {
	var sb strings.Builder

	for _, commit := range e.Commits {
		sb.WriteString(fmt.Sprintf("Commit %s in %s failed validation:\n", shortHash(commit), e.Ref))
		sb.WriteString(fmt.Sprintf("Commit message: %s\n\n", header(commit)))
	}

	sb.WriteString(commitmsg.Diagnostic())

	return sb.String()
}

func shortHash(commit *object.Commit) string {
	return commit.Hash.String()[:shortHashLen]
}

// header returns the first line of the trimmed commit message.
func header(commit *object.Commit) string {
	parsed, _ := commitmsg.ParseHeader(commit.Message)

	return parsed.Raw
}
