package apperror

import "errors"

// Kind classifies a domain error so HTTP handlers can pick a status code
// without string matching.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	// KindArtifact marks artifact generation failures that happen after the
	// certificate record is already persisted. The record must survive.
	KindArtifact
)

type Error struct {
	Kind    Kind
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Artifact(message string, cause error) *Error {
	return &Error{Kind: KindArtifact, Message: message, Cause: cause}
}

// KindOf reports the kind of err, or ok=false when err is not a domain error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
