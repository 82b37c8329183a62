package api

import (
	"net/http"

	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/session"
	"github.com/phrazzld/limud/internal/wizard"
)

// StartWizardRequest is the body of POST .../wizard/start.
type StartWizardRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=reading theme"`
	Topic string `json:"topic" validate:"required,max=200"`
}

// GetWizard handles GET .../wizard. It produces the current stage's content
// on the first view of that stage.
func (h *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(sess *session.Session) {
		shared.RespondWithJSON(w, r, http.StatusOK, sess.Wizard.View(r.Context()))
	})
}

// StartWizard handles POST .../wizard/start and returns the first stage.
func (h *Handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	var req StartWizardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	kind, err := wizard.ParseKind(req.Kind)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.withSession(w, r, func(sess *session.Session) {
		if err := sess.Wizard.Start(kind, req.Topic); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, sess.Wizard.View(r.Context()))
	})
}

// AdvanceWizard handles POST .../wizard/advance and returns the next stage.
func (h *Handler) AdvanceWizard(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(sess *session.Session) {
		if err := sess.Wizard.Advance(); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, sess.Wizard.View(r.Context()))
	})
}

// ResetWizard handles POST .../wizard/reset. It is valid in every phase.
func (h *Handler) ResetWizard(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(sess *session.Session) {
		sess.Wizard.Reset()
		shared.RespondWithJSON(w, r, http.StatusOK, sess.Wizard.View(r.Context()))
	})
}
