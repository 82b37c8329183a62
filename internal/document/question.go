package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/limud/internal/generation"
)

// DefaultMaxPromptChars bounds how much extracted text goes into a prompt.
const DefaultMaxPromptChars = 30000

// QuestionPrompt builds the fixed question-answering prompt: answer only from
// the supplied text, the text itself between delimiters, the question, and an
// instruction to say so when the answer is not in the text. At most maxChars
// characters of the extracted text are embedded.
func QuestionPrompt(doc *UploadedDocument, question string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxPromptChars
	}
	text := prefix(doc.ExtractedText, maxChars)

	return fmt.Sprintf("Answer the question using only the text provided below.\n\n"+
		"--- BEGIN TEXT ---\n%s\n--- END TEXT ---\n\n"+
		"Question: %s\n\n"+
		"If the answer is not contained in the text, say that the text does not contain the answer.",
		text, question)
}

// prefix returns the first n characters (runes) of s.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Answer is the content shown for a question.
type Answer struct {
	Question string `json:"question"`
	Text     string `json:"text"`
	Failed   bool   `json:"failed"`
}

// Answerer answers questions about an extracted document.
type Answerer struct {
	gen      generation.Generator
	logger   *slog.Logger
	maxChars int
}

// NewAnswerer creates an Answerer embedding at most maxChars of text per prompt.
func NewAnswerer(gen generation.Generator, logger *slog.Logger, maxChars int) (*Answerer, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxPromptChars
	}
	return &Answerer{
		gen:      gen,
		logger:   logger.With("component", "document_qa"),
		maxChars: maxChars,
	}, nil
}

// Ask returns the model's answer, or the failure description as the answer
// text. Only input problems are returned as errors.
func (a *Answerer) Ask(ctx context.Context, doc *UploadedDocument, question string) (Answer, error) {
	if doc == nil {
		return Answer{}, ErrNoDocument
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return Answer{}, ErrEmptyQuestion
	}

	answer := Answer{Question: question}
	text, err := a.gen.Generate(ctx, QuestionPrompt(doc, question, a.maxChars))
	if err != nil {
		a.logger.ErrorContext(ctx, "document question failed",
			"source_name", doc.SourceName,
			"error", err)
		answer.Text = generation.Describe(err)
		answer.Failed = true
		return answer, nil
	}

	a.logger.InfoContext(ctx, "document question answered",
		"source_name", doc.SourceName,
		"text_length", len(doc.ExtractedText))
	answer.Text = text
	return answer, nil
}
