package document_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/limud/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
		want        document.Type
		wantErr     bool
	}{
		{"html content type", "x.bin", "text/html; charset=utf-8", document.TypeHTML, false},
		{"pdf content type", "x.bin", "application/pdf", document.TypePDF, false},
		{"html extension", "Parasha.HTM", "application/octet-stream", document.TypeHTML, false},
		{"pdf extension", "notes.pdf", "", document.TypePDF, false},
		{"unsupported", "notes.docx", "application/octet-stream", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := document.DetectType(tc.file, tc.contentType)
			if tc.wantErr {
				assert.ErrorIs(t, err, document.ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractHTMLParagraphs(t *testing.T) {
	page := `<html><head><title>Ignored</title><style>p{}</style></head>
<body>
  <h1>Heading is ignored</h1>
  <p>In the beginning   God created
     the heavens and the earth.</p>
  <div><p>Nested <b>bold</b> text.</p></div>
  <p>   </p>
  <p>Last<script>alert(1)</script> line.</p>
</body></html>`

	doc, err := document.Extract("bereshit.html", "text/html", []byte(page))

	require.NoError(t, err)
	assert.Equal(t, "bereshit.html", doc.SourceName)
	assert.Equal(t, document.TypeHTML, doc.Type)
	assert.Equal(t,
		"In the beginning God created the heavens and the earth.\nNested bold text.\nLast line.",
		doc.ExtractedText)
}

func TestExtractHTMLWithoutParagraphs(t *testing.T) {
	_, err := document.Extract("empty.html", "text/html", []byte("<html><body><div>no paragraphs</div></body></html>"))
	assert.ErrorIs(t, err, document.ErrEmptyText)
}

func TestExtractMalformedPDF(t *testing.T) {
	_, err := document.Extract("broken.pdf", "application/pdf", []byte("this is not a pdf"))
	assert.ErrorIs(t, err, document.ErrExtractionFailed)
}

func TestExtractUnsupported(t *testing.T) {
	_, err := document.Extract("notes.txt", "text/plain", []byte(strings.Repeat("a", 10)))
	assert.ErrorIs(t, err, document.ErrUnsupportedType)
}
