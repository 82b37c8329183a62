package document

import "errors"

var (
	// ErrUnsupportedType is returned for uploads that are neither HTML nor PDF
	ErrUnsupportedType = errors.New("unsupported document type; upload HTML or PDF")

	// ErrExtractionFailed is returned when the upload cannot be read
	ErrExtractionFailed = errors.New("failed to extract text from document")

	// ErrEmptyText is returned when extraction succeeds but yields no text
	ErrEmptyText = errors.New("document contains no extractable text")

	// ErrEmptyQuestion is returned when Ask is called without a question
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrNoDocument is returned when Ask is called before a document was extracted
	ErrNoDocument = errors.New("no document has been uploaded")
)
