package commitmsg

import (
	"strings"
)

// Header is the decomposed first line of a commit message.
type Header struct {
	Raw         string
	Type        string
	Scope       string
	Description string
}

// normalize trims the complete message. Only leading whitespace of the first
// line and trailing whitespace of the last line are removed, blank lines in
// between are kept.
func normalize(message string) string {
	message = strings.ReplaceAll(message, "\r\n", "\n")

	return strings.TrimSpace(message)
}

// firstLine returns everything up to the first line break.
func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")

	return line
}

// ParseHeader trims message, extracts its first line and matches it against
// the grammar. Anything after the first line is ignored.
func ParseHeader(message string) (Header, error) {
	line := firstLine(normalize(message))

	typ, scope, ok := matchHeader(line)
	if !ok {
		return Header{Raw: line}, &FormatError{Header: line}
	}

	description := strings.TrimPrefix(line, typ)
	if scope != "" {
		description = strings.TrimPrefix(description, "("+scope+")")
	}

	description = strings.TrimPrefix(description, ": ")

	return Header{
		Raw:         line,
		Type:        typ,
		Scope:       scope,
		Description: description,
	}, nil
}
