package commitmsg

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const defaultProgram = "commit-msg-lint"

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Validate checks the header of message. It returns nil if the message is
// accepted and a *FormatError otherwise.
func Validate(message string) error {
	_, err := ParseHeader(message)

	return err
}

// ValidateFile reads the commit message stored at path and validates it.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return &ReadError{Path: path, Err: errInvalidUTF8}
	}

	return Validate(string(data))
}

// Run validates the commit message file given as the only positional
// argument. args includes the program name, as in os.Args.
func Run(args []string) error {
	program := defaultProgram
	if len(args) > 0 {
		program = filepath.Base(args[0])
		args = args[1:]
	}

	if len(args) != 1 {
		return &UsageError{Program: program, Got: len(args)}
	}

	return ValidateFile(args[0])
}
