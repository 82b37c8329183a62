package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Type is the detected format of an upload.
type Type string

const (
	TypeHTML Type = "html"
	TypePDF  Type = "pdf"
)

// UploadedDocument is the read-only result of extraction.
type UploadedDocument struct {
	SourceName    string `json:"source_name"`
	Type          Type   `json:"type"`
	ExtractedText string `json:"-"`
}

// DetectType decides the format from the content type, falling back to the
// file extension when the browser sent a generic type.
func DetectType(name, contentType string) (Type, error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "text/html"), strings.HasPrefix(ct, "application/xhtml"):
		return TypeHTML, nil
	case strings.HasPrefix(ct, "application/pdf"):
		return TypePDF, nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return TypeHTML, nil
	case ".pdf":
		return TypePDF, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, name)
}

// Extract produces the plain text of an HTML or PDF upload.
func Extract(name, contentType string, data []byte) (*UploadedDocument, error) {
	kind, err := DetectType(name, contentType)
	if err != nil {
		return nil, err
	}

	var text string
	switch kind {
	case TypeHTML:
		text, err = extractHTML(data)
	case TypePDF:
		text, err = extractPDF(data)
	}
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyText, name)
	}

	return &UploadedDocument{
		SourceName:    name,
		Type:          kind,
		ExtractedText: text,
	}, nil
}

// extractHTML concatenates the text of every <p> element, one per line.
func extractHTML(data []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var paragraphs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.P {
			if p := strings.Join(strings.Fields(nodeText(n)), " "); p != "" {
				paragraphs = append(paragraphs, p)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(paragraphs, "\n"), nil
}

// nodeText returns the text content of n, skipping scripts and styles.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
			return
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// extractPDF concatenates the plain text of every page.
func extractPDF(data []byte) (text string, err error) {
	// The PDF parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtractionFailed, i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
