package api

import (
	"net/http"

	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/chavruta"
	"github.com/phrazzld/limud/internal/generation"
	"github.com/phrazzld/limud/internal/session"
)

// StartChavrutaRequest is the body of POST .../chavruta/start.
type StartChavrutaRequest struct {
	Persona  string `json:"persona" validate:"required,max=100"`
	Topic    string `json:"topic" validate:"required,max=200"`
	Register string `json:"register" validate:"required,oneof=modern traditional"`
}

// ChavrutaMessageRequest is the body of POST .../chavruta/messages.
type ChavrutaMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChavrutaResponse is returned by every chavruta endpoint.
type ChavrutaResponse struct {
	Session  chavruta.View `json:"session"`
	Ended    bool          `json:"ended,omitempty"`
	Farewell string        `json:"farewell,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// GetChavruta handles GET .../chavruta.
func (h *Handler) GetChavruta(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(sess *session.Session) {
		shared.RespondWithJSON(w, r, http.StatusOK, ChavrutaResponse{Session: sess.Chavruta.View()})
	})
}

// StartChavruta handles POST .../chavruta/start. A failed opening leaves the
// session idle and is reported as 502 with the failure description.
func (h *Handler) StartChavruta(w http.ResponseWriter, r *http.Request) {
	var req StartChavrutaRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	register, err := chavruta.ParseRegister(req.Register)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.withSession(w, r, func(sess *session.Session) {
		if _, err := sess.Chavruta.Start(r.Context(), req.Persona, req.Topic, register); err != nil {
			h.respondChavrutaError(w, r, sess, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, ChavrutaResponse{Session: sess.Chavruta.View()})
	})
}

// SendChavrutaMessage handles POST .../chavruta/messages. Exit words end the
// session. A failed reply returns 502 with the transcript as it was before
// the message.
func (h *Handler) SendChavrutaMessage(w http.ResponseWriter, r *http.Request) {
	var req ChavrutaMessageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}

	h.withSession(w, r, func(sess *session.Session) {
		reply, err := sess.Chavruta.Send(r.Context(), req.Message)
		if err != nil {
			h.respondChavrutaError(w, r, sess, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, ChavrutaResponse{
			Session:  sess.Chavruta.View(),
			Ended:    reply.Ended,
			Farewell: reply.Farewell,
		})
	})
}

// EndChavruta handles POST .../chavruta/end.
func (h *Handler) EndChavruta(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(sess *session.Session) {
		line, err := sess.Chavruta.End()
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, ChavrutaResponse{
			Session:  sess.Chavruta.View(),
			Ended:    true,
			Farewell: line,
		})
	})
}

// respondChavrutaError reports generation failures with the current
// transcript; other errors go through the usual mapping.
func (h *Handler) respondChavrutaError(w http.ResponseWriter, r *http.Request, sess *session.Session, err error) {
	if !isGenerationError(err) {
		HandleAPIError(w, r, err)
		return
	}
	h.logger.WarnContext(r.Context(), "chavruta generation failed",
		"session_id", sess.ID.String(),
		"error", generation.Describe(err))
	shared.RespondWithJSON(w, r, http.StatusBadGateway, ChavrutaResponse{
		Session: sess.Chavruta.View(),
		Error:   generation.Describe(err),
	})
}
