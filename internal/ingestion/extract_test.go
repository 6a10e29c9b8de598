package ingestion

import (
	"errors"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/testutil"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

func TestExtractText_SimplePDF(t *testing.T) {
	doc := types.RawDocument{
		Content:   testutil.BuildPDF([]string{"Jane Doe", "jane.doe@example.com", "Skills: Go, Docker, React"}),
		MediaType: types.MediaTypePDF,
	}

	text, err := ExtractText(doc)
	require.NoError(t, err)
	require.NotNil(t, text)
	assert.Equal(t, []string{"Jane Doe", "jane.doe@example.com", "Skills: Go, Docker, React"}, text.Lines)
	assert.Equal(t, "Jane Doe\njane.doe@example.com\nSkills: Go, Docker, React", text.Full)
}

func TestExtractText_KeepsLineBoundaries(t *testing.T) {
	lines := []string{"Jane Doe", "jane.doe@example.com", "Mumbai, India", "+91 98765 43210", "Skills: React"}
	doc := types.RawDocument{Content: testutil.BuildPDF(lines), MediaType: types.MediaTypePDF}

	text, err := ExtractText(doc)
	require.NoError(t, err)
	assert.Equal(t, lines, text.Lines)
}

func TestExtractText_MultiPage(t *testing.T) {
	doc := types.RawDocument{
		Content:   testutil.BuildPDF([]string{"Page one header"}, []string{"Kubernetes on page two"}),
		MediaType: types.MediaTypePDF,
	}

	text, meta, err := ExtractTextWithMetadata(doc, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"Page one header", "Kubernetes on page two"}, text.Lines)
	assert.Equal(t, 2, meta.Pages)
	assert.Equal(t, types.MediaTypePDF, meta.MediaType)
	assert.Len(t, meta.Hash, 64)
}

func TestExtractText_DetectsByMagicBytes(t *testing.T) {
	doc := types.RawDocument{
		Content:   testutil.BuildPDF([]string{"Jane Doe"}),
		MediaType: "application/octet-stream",
	}

	text, err := ExtractText(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, text.Lines)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	doc := types.RawDocument{
		Content:   []byte("PK\x03\x04 docx payload"),
		MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Filename:  "resume.docx",
	}

	text, err := ExtractText(doc)
	assert.Nil(t, text)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Equal(t, KindUnsupportedFormat, KindOf(err))
}

func TestExtractText_CorruptDocument(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "truncated header", content: []byte("%PDF-1.4\ngarbage")},
		{name: "random bytes", content: []byte("%PDF-this is definitely not a pdf file at all and has no xref table or trailer whatsoever, padding padding padding")},
		{name: "empty", content: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := types.RawDocument{Content: tt.content, MediaType: types.MediaTypePDF}

			text, err := ExtractText(doc)
			assert.Nil(t, text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorruptDocument), "got %v", err)
			assert.Equal(t, KindCorruptDocument, KindOf(err))
		})
	}
}

func TestExtractText_NoExtractableText(t *testing.T) {
	doc := types.RawDocument{
		Content:   testutil.BuildPDF([]string{}),
		MediaType: types.MediaTypePDF,
	}

	text, err := ExtractText(doc)
	assert.Nil(t, text)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoExtractableText), "got %v", err)
	assert.Equal(t, KindNoExtractableText, KindOf(err))
}

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		name     string
		doc      types.RawDocument
		expected string
	}{
		{
			name:     "declared pdf",
			doc:      types.RawDocument{MediaType: "application/pdf"},
			expected: types.MediaTypePDF,
		},
		{
			name:     "declared with parameters",
			doc:      types.RawDocument{MediaType: "Application/PDF; charset=binary"},
			expected: types.MediaTypePDF,
		},
		{
			name:     "legacy alias",
			doc:      types.RawDocument{MediaType: "application/x-pdf"},
			expected: types.MediaTypePDF,
		},
		{
			name:     "extension fallback",
			doc:      types.RawDocument{Filename: "CV.PDF"},
			expected: types.MediaTypePDF,
		},
		{
			name:     "declared type wins over extension",
			doc:      types.RawDocument{MediaType: "text/plain", Filename: "resume.pdf"},
			expected: "text/plain",
		},
		{
			name:     "unknown",
			doc:      types.RawDocument{Content: []byte("hello")},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectMediaType(tt.doc))
		})
	}
}

func TestJoinGlyphs(t *testing.T) {
	glyph := func(s string, x, y float64) pdf.Text {
		return pdf.Text{S: s, X: x, Y: y, W: 6, FontSize: 12}
	}

	tests := []struct {
		name     string
		glyphs   []pdf.Text
		expected string
	}{
		{
			name:     "baseline change starts a line",
			glyphs:   []pdf.Text{glyph("A", 72, 720), glyph("b", 78, 720), glyph("C", 72, 704)},
			expected: "Ab\nC",
		},
		{
			name:     "small baseline jitter stays on the line",
			glyphs:   []pdf.Text{glyph("x", 72, 720), glyph("2", 78, 722)},
			expected: "x2",
		},
		{
			name:     "positioned gap becomes a space",
			glyphs:   []pdf.Text{glyph("Go", 72, 720), glyph("Rust", 120, 720)},
			expected: "Go Rust",
		},
		{
			name:     "explicit space is not doubled",
			glyphs:   []pdf.Text{glyph("Go ", 72, 720), glyph("Rust", 120, 720)},
			expected: "Go Rust",
		},
		{
			name:     "empty",
			glyphs:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, joinGlyphs(tt.glyphs))
		})
	}
}

func TestExtractionError_Message(t *testing.T) {
	err := &ExtractionError{Kind: KindCorruptDocument, Detail: "bad xref", Cause: errors.New("eof")}
	assert.Equal(t, "extraction failed (corrupt_document): bad xref: eof", err.Error())
	assert.Equal(t, Kind(""), KindOf(errors.New("other")))
	assert.False(t, errors.Is(err, ErrNoExtractableText))
}
