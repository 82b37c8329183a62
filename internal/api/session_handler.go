package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/platform/logger"
)

// SessionResponse describes a newly created session.
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSession handles POST /api/sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Create()
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("session opened", "session_id", sess.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{
		ID:        sess.ID.String(),
		CreatedAt: sess.CreatedAt,
	})
}

// DeleteSession handles DELETE /api/sessions/{sessionID}. Any running flow
// ends with the session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "sessionID")); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
