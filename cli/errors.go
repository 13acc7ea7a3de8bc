package cli

import (
	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InputValidationFailure ErrorCode = "InputValidationFailure"
	InvalidArguments       ErrorCode = "InvalidArguments"
	MissingRemote          ErrorCode = "MissingRemote"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// withPrefix wraps err so its user message starts with prefix
func withPrefix(err error, prefix string) error {
	msg := prefix
	if m := failure.MessageOf(err); m != "" {
		msg += ": " + m.String()
	}
	return failure.Wrap(err, failure.Message(msg))
}
