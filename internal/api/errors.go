package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/chavruta"
	"github.com/phrazzld/limud/internal/document"
	"github.com/phrazzld/limud/internal/generation"
	"github.com/phrazzld/limud/internal/session"
	"github.com/phrazzld/limud/internal/tools"
	"github.com/phrazzld/limud/internal/wizard"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, tools.ErrUnknownTool):
		return http.StatusNotFound

	case errors.Is(err, session.ErrBusy),
		errors.Is(err, wizard.ErrAlreadyStarted),
		errors.Is(err, wizard.ErrNotStarted),
		errors.Is(err, wizard.ErrContentPending),
		errors.Is(err, wizard.ErrStageFailed),
		errors.Is(err, wizard.ErrFinished),
		errors.Is(err, chavruta.ErrAlreadyActive),
		errors.Is(err, chavruta.ErrNotActive),
		errors.Is(err, document.ErrNoDocument):
		return http.StatusConflict

	case errors.Is(err, shared.ErrInvalidRequest),
		errors.Is(err, tools.ErrInvalidInput),
		errors.Is(err, tools.ErrNotSingleShot),
		errors.Is(err, wizard.ErrInvalidKind),
		errors.Is(err, wizard.ErrEmptyTopic),
		errors.Is(err, chavruta.ErrMissingSetup),
		errors.Is(err, chavruta.ErrInvalidRegister),
		errors.Is(err, chavruta.ErrEmptyMessage),
		errors.Is(err, document.ErrEmptyQuestion):
		return http.StatusBadRequest

	case errors.Is(err, document.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType

	case errors.Is(err, document.ErrExtractionFailed),
		errors.Is(err, document.ErrEmptyText):
		return http.StatusUnprocessableEntity

	case isGenerationError(err):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the user for err. Flow
// errors are already written for users; anything else gets a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var inputErr *tools.InputError
	switch {
	case errors.As(err, &inputErr):
		return inputErr.Message
	case errors.Is(err, session.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, session.ErrBusy):
		return "Still working on the previous request"
	case errors.Is(err, shared.ErrInvalidRequest):
		return "Invalid request format"
	case isGenerationError(err):
		return generation.Describe(err)
	}

	for _, sentinel := range userFacing {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "An unexpected error occurred"
}

// userFacing errors are shown to the user with their own text.
var userFacing = []error{
	tools.ErrUnknownTool,
	tools.ErrNotSingleShot,
	wizard.ErrInvalidKind,
	wizard.ErrEmptyTopic,
	wizard.ErrAlreadyStarted,
	wizard.ErrNotStarted,
	wizard.ErrContentPending,
	wizard.ErrStageFailed,
	wizard.ErrFinished,
	chavruta.ErrMissingSetup,
	chavruta.ErrInvalidRegister,
	chavruta.ErrAlreadyActive,
	chavruta.ErrNotActive,
	chavruta.ErrEmptyMessage,
	document.ErrUnsupportedType,
	document.ErrExtractionFailed,
	document.ErrEmptyText,
	document.ErrEmptyQuestion,
	document.ErrNoDocument,
}

func isGenerationError(err error) bool {
	var genErr *generation.Error
	return errors.As(err, &genErr)
}

// HandleAPIError writes the mapped status and safe message for err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
