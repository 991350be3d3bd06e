package commitmsg

import (
	"fmt"
	"strings"
)

// FormatError is returned when a commit message header does not match the
// grammar. Its message is the diagnostic shown to the user.
type FormatError struct {
	// Header is the first line of the trimmed message that was rejected.
	Header string
}

func (e *FormatError) Error() string {
	return Diagnostic()
}

// Diagnostic renders the explanation printed for a rejected commit message.
func Diagnostic() string {
	var sb strings.Builder

	sb.WriteString("ERROR: Invalid commit message format.\n")
	sb.WriteString(fmt.Sprintf("Format should be: %s\n", FormatHint))
	sb.WriteString(fmt.Sprintf("Types: %s\n", strings.Join(Types, ", ")))
	sb.WriteString(fmt.Sprintf("Example: %s", Example))

	return sb.String()
}

// ReadError is returned when the commit message file cannot be read or
// decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("ERROR: cannot read commit message file: %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// UsageError is returned when the program is not invoked with exactly one
// commit message file.
type UsageError struct {
	Program string
	Got     int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf(
		"ERROR: usage: %s <commit-message-file> (expected 1 argument, got %d)",
		e.Program,
		e.Got,
	)
}
