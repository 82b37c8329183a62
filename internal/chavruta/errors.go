package chavruta

import "errors"

var (
	// ErrMissingSetup is returned when Start is called without persona, topic and register
	ErrMissingSetup = errors.New("persona, topic and register are required")

	// ErrInvalidRegister is returned for an unknown register name
	ErrInvalidRegister = errors.New("register must be modern or traditional")

	// ErrAlreadyActive is returned when Start is called on an active session
	ErrAlreadyActive = errors.New("a study session is already active; end it first")

	// ErrNotActive is returned when Send or End is called on an idle session
	ErrNotActive = errors.New("no study session is active")

	// ErrEmptyMessage is returned when Send is called with blank input
	ErrEmptyMessage = errors.New("message cannot be empty")
)
