package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ConnectionFailure represents transport errors, unreadable bodies and non-2xx responses
	ConnectionFailure ErrorCode = "ConnectionFailure"
	// ResponseParseFailure represents malformed JSON or a response missing required fields
	ResponseParseFailure ErrorCode = "ResponseParseFailure"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
