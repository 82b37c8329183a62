package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/tools"
)

// ToolRequest is the body of POST /api/tools/{toolID}. Which fields are
// required depends on the tool.
type ToolRequest struct {
	Topic   string `json:"topic" validate:"max=500"`
	Passage string `json:"passage" validate:"max=20000"`
	Count   int    `json:"count" validate:"gte=0"`
	First   string `json:"first" validate:"max=500"`
	Second  string `json:"second" validate:"max=500"`
}

// ListTools handles GET /api/tools.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, tools.Menu())
}

// RunTool handles POST /api/tools/{toolID}.
func (h *Handler) RunTool(w http.ResponseWriter, r *http.Request) {
	var req ToolRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}

	id := tools.ID(chi.URLParam(r, "toolID"))
	result, err := h.tools.Run(r.Context(), id, tools.Request{
		Topic:   req.Topic,
		Passage: req.Passage,
		Count:   req.Count,
		First:   req.First,
		Second:  req.Second,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
