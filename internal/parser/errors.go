package parser

import "fmt"

// ErrorKind classifies a per-hand parse failure.
type ErrorKind string

const (
	KindUnsupportedPlatform ErrorKind = "unsupported_platform"
	KindHandParsing         ErrorKind = "hand_parsing"
	KindValidation          ErrorKind = "validation"
)

// UnsupportedPlatformError is returned when no registered platform's
// signature matches the hand's header line.
type UnsupportedPlatformError struct {
	Header string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: no signature matches header %q", e.Header)
}

// HandParsingError is a structural failure: the text is missing a required
// section or the section cannot be read.
type HandParsingError struct {
	Section string
	Message string
}

func (e *HandParsingError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("hand parsing failed: %s", e.Message)
	}
	return fmt.Sprintf("hand parsing failed in %s: %s", e.Section, e.Message)
}

// ValidationError is a semantic failure: the text is well formed but its
// content contradicts itself (malformed cards, pot inconsistency).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// ParseError records one failed hand within a batch. Index is the hand's
// zero-based position in the input text.
type ParseError struct {
	Index   int
	Kind    ErrorKind
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("hand %d: %s: %s", e.Index, e.Kind, e.Message)
}

// kindOf maps a parse failure to its batch-level classification.
func kindOf(err error) ErrorKind {
	switch err.(type) {
	case *UnsupportedPlatformError:
		return KindUnsupportedPlatform
	case *ValidationError:
		return KindValidation
	default:
		return KindHandParsing
	}
}
