package wizard

import "errors"

// Transition and input errors. None of them mutates the wizard.
var (
	// ErrInvalidKind is returned when Start is given an unknown topic kind
	ErrInvalidKind = errors.New("topic kind must be reading or theme")

	// ErrEmptyTopic is returned when Start is given a blank topic
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrAlreadyStarted is returned when Start is called outside the collecting phase
	ErrAlreadyStarted = errors.New("wizard already started; reset first")

	// ErrNotStarted is returned when Advance is called before Start
	ErrNotStarted = errors.New("wizard has not been started")

	// ErrContentPending is returned when Advance is called before the current stage was produced
	ErrContentPending = errors.New("current stage content has not been produced yet")

	// ErrStageFailed is returned when Advance is called after the current stage failed to generate
	ErrStageFailed = errors.New("current stage failed to generate; reset to start over")

	// ErrFinished is returned when Advance is called in the terminal phase
	ErrFinished = errors.New("wizard is finished; only reset is available")
)
