package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Error tags for the failure kinds raised by catalogue operations
var (
	ErrTagInvalidArgument = goerr.NewTag("invalid_argument")
	ErrTagInvalidState    = goerr.NewTag("invalid_state")
	ErrTagNotFound        = goerr.NewTag("not_found")
	ErrTagDuplicateID     = goerr.NewTag("duplicate_id")
)

// ErrorKind classifies a catalogue failure
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindInvalidArgument
	ErrorKindInvalidState
	ErrorKindNotFound
	ErrorKindDuplicateID
)

// String returns the string representation
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidArgument:
		return "invalid argument"
	case ErrorKindInvalidState:
		return "invalid state"
	case ErrorKindNotFound:
		return "not found"
	case ErrorKindDuplicateID:
		return "duplicate id"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err. goerr merges the tags of wrapped errors, so
// a tag set at any depth of the chain is found.
func KindOf(err error) ErrorKind {
	var goErr *goerr.Error
	if !errors.As(err, &goErr) {
		return ErrorKindUnknown
	}

	switch {
	case goerr.HasTag(goErr, ErrTagInvalidArgument):
		return ErrorKindInvalidArgument
	case goerr.HasTag(goErr, ErrTagInvalidState):
		return ErrorKindInvalidState
	case goerr.HasTag(goErr, ErrTagNotFound):
		return ErrorKindNotFound
	case goerr.HasTag(goErr, ErrTagDuplicateID):
		return ErrorKindDuplicateID
	default:
		return ErrorKindUnknown
	}
}

// IsKind reports whether err is classified as kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
