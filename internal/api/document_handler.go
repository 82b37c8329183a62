package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/document"
	"github.com/phrazzld/limud/internal/platform/logger"
	"github.com/phrazzld/limud/internal/session"
)

// UploadFormField is the multipart field carrying the document.
const UploadFormField = "file"

// QuestionRequest is the body of POST .../document/questions.
type QuestionRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// DocumentResponse describes the session's document and the answers so far.
type DocumentResponse struct {
	Document *document.UploadedDocument `json:"document"`
	Answers  []document.Answer          `json:"answers"`
}

// GetDocument handles GET .../document.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(sess *session.Session) {
		shared.RespondWithJSON(w, r, http.StatusOK, DocumentResponse{
			Document: sess.Document(),
			Answers:  sess.Answers(),
		})
	})
}

// UploadDocument handles POST .../document with a multipart HTML or PDF file.
// A successful upload replaces the previous document.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Document is too large")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid upload", err)
		return
	}

	file, header, err := r.FormFile(UploadFormField)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid upload", err)
		return
	}

	doc, err := document.Extract(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.withSession(w, r, func(sess *session.Session) {
		sess.SetDocument(doc)
		logger.FromContext(r.Context()).Info("document uploaded",
			"session_id", sess.ID.String(),
			"source_name", doc.SourceName,
			"type", doc.Type,
			"text_length", len(doc.ExtractedText))
		shared.RespondWithJSON(w, r, http.StatusOK, DocumentResponse{
			Document: doc,
			Answers:  sess.Answers(),
		})
	})
}

// AskDocument handles POST .../document/questions. A generation failure is
// returned as the answer text with failed set.
func (h *Handler) AskDocument(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}

	h.withSession(w, r, func(sess *session.Session) {
		answer, err := h.answerer.Ask(r.Context(), sess.Document(), req.Question)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		sess.AddAnswer(answer)
		shared.RespondWithJSON(w, r, http.StatusOK, answer)
	})
}
