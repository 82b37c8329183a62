package generation

import (
	"errors"
	"fmt"

	"github.com/phrazzld/limud/internal/redact"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the remote call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrClientUnavailable is returned when the model client was never constructed
	ErrClientUnavailable = errors.New("language model client is not available")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when Generate is called without a prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// Error is the failure type returned by a Generator. It carries the operation
// that failed and the underlying transport or service error.
type Error struct {
	// Op names the gateway operation, e.g. "generate"
	Op string
	// Err is the underlying cause, usually wrapping one of the sentinel errors above
	Err error
}

// NewError wraps err as a gateway failure for op.
func NewError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation %s failed", e.Op)
	}
	return fmt.Sprintf("generation %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// DisplayPrefix starts every failure rendered by Describe.
const DisplayPrefix = "Error generating content: "

// Describe renders a gateway failure as page content. The detail is redacted
// so credentials echoed by the client never reach the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var genErr *Error
	if errors.As(err, &genErr) && genErr.Err != nil {
		return DisplayPrefix + redact.Error(genErr.Err)
	}
	return DisplayPrefix + redact.Error(err)
}
