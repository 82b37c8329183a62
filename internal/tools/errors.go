package tools

import "errors"

var (
	// ErrUnknownTool is returned for an ID that is not on the menu
	ErrUnknownTool = errors.New("unknown tool")

	// ErrNotSingleShot is returned when Run is asked to run an interactive flow
	ErrNotSingleShot = errors.New("tool is an interactive flow, not a single-shot tool")

	// ErrInvalidInput is returned when the request fails validation; no call is made
	ErrInvalidInput = errors.New("invalid tool input")
)
