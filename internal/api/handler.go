package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/limud/internal/document"
	"github.com/phrazzld/limud/internal/session"
	"github.com/phrazzld/limud/internal/tools"
)

// Handler serves every study endpoint.
type Handler struct {
	store          *session.Store
	tools          *tools.Runner
	answerer       *document.Answerer
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewHandler creates a Handler. maxUploadBytes bounds document uploads.
func NewHandler(
	store *session.Store,
	runner *tools.Runner,
	answerer *document.Answerer,
	maxUploadBytes int64,
	logger *slog.Logger,
) (*Handler, error) {
	if store == nil {
		return nil, errors.New("session store cannot be nil")
	}
	if runner == nil {
		return nil, errors.New("tool runner cannot be nil")
	}
	if answerer == nil {
		return nil, errors.New("document answerer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if maxUploadBytes <= 0 {
		return nil, errors.New("upload limit must be positive")
	}
	return &Handler{
		store:          store,
		tools:          runner,
		answerer:       answerer,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With("component", "api"),
	}, nil
}

// Mount registers the routes under r, which is expected to be the /api subrouter.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/tools", h.ListTools)
	r.Post("/tools/{toolID}", h.RunTool)

	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Delete("/", h.DeleteSession)

		r.Get("/wizard", h.GetWizard)
		r.Post("/wizard/start", h.StartWizard)
		r.Post("/wizard/advance", h.AdvanceWizard)
		r.Post("/wizard/reset", h.ResetWizard)

		r.Get("/chavruta", h.GetChavruta)
		r.Post("/chavruta/start", h.StartChavruta)
		r.Post("/chavruta/messages", h.SendChavrutaMessage)
		r.Post("/chavruta/end", h.EndChavruta)

		r.Get("/document", h.GetDocument)
		r.Post("/document", h.UploadDocument)
		r.Post("/document/questions", h.AskDocument)
	})
}

// withSession resolves the session in the path and holds it while fn runs.
// Errors are written to w; fn only runs when the session was acquired.
func (h *Handler) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session)) {
	sess, err := h.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := sess.Acquire(); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	defer sess.Release()

	fn(sess)
}
