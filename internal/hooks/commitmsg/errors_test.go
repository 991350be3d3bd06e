package commitmsg_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/breml/conventional-githooks/internal/hooks/commitmsg"
)

func TestFormatError_Diagnostic(t *testing.T) {
	err := commitmsg.Validate("Fix bug")
	if err == nil {
		t.Fatal("expected error for invalid message")
	}

	want := "ERROR: Invalid commit message format.\n" +
		"Format should be: <type>(<scope>): <description>\n" +
		"Types: feat, fix, docs, style, refactor, test, chore\n" +
		"Example: feat(auth): add JWT authentication"

	if err.Error() != want {
		t.Errorf("diagnostic mismatch\ngot:\n%s\nwant:\n%s", err.Error(), want)
	}

	if lines := strings.Split(err.Error(), "\n"); len(lines) != 4 {
		t.Errorf("expected 4 diagnostic lines, got %d", len(lines))
	}
}

func TestDiagnostic_ExampleIsValid(t *testing.T) {
	err := commitmsg.Validate(commitmsg.Example)
	if err != nil {
		t.Errorf("Example %q is rejected: %v", commitmsg.Example, err)
	}
}

func TestTypes_MatchPattern(t *testing.T) {
	for _, typ := range commitmsg.Types {
		t.Run(typ, func(t *testing.T) {
			err := commitmsg.Validate(typ + ": description")
			if err != nil {
				t.Errorf("type %q listed in Types is rejected by the grammar", typ)
			}

			if !strings.Contains(commitmsg.Pattern, typ) {
				t.Errorf("type %q missing from Pattern %q", typ, commitmsg.Pattern)
			}
		})
	}
}

func TestReadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &commitmsg.ReadError{Path: ".git/COMMIT_EDITMSG", Err: cause}

	want := "ERROR: cannot read commit message file: .git/COMMIT_EDITMSG: permission denied"
	if err.Error() != want {
		t.Errorf("ReadError.Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, cause) {
		t.Error("expected ReadError to unwrap to its cause")
	}
}
