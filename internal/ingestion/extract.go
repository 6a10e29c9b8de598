// Package ingestion turns raw resume documents into ordered lines of text.
package ingestion

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

var pdfMagic = []byte("%PDF-")

// genericMediaTypes are declared types that say nothing about the content,
// so detection falls through to the filename and magic bytes.
var genericMediaTypes = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
	"binary/octet-stream":      true,
	"application/x-download":   true,
}

// DetectMediaType resolves the effective media type of a document.
// A specific declared type wins; otherwise the file extension and then the
// content header decide.
func DetectMediaType(doc types.RawDocument) string {
	declared := strings.ToLower(strings.TrimSpace(doc.MediaType))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if !genericMediaTypes[declared] {
		if declared == "application/x-pdf" {
			return types.MediaTypePDF
		}
		return declared
	}
	if strings.EqualFold(filepath.Ext(doc.Filename), ".pdf") {
		return types.MediaTypePDF
	}
	if bytes.HasPrefix(doc.Content, pdfMagic) {
		return types.MediaTypePDF
	}
	return declared
}

// ExtractText decodes the text layer of doc in memory.
// Failures are returned as *ExtractionError; the caller decides the fallback.
func ExtractText(doc types.RawDocument) (*types.ExtractedText, error) {
	text, _, err := extract(doc)
	return text, err
}

// ExtractTextWithMetadata is ExtractText plus a description of the source document.
// Metadata is returned even when extraction fails.
func ExtractTextWithMetadata(doc types.RawDocument, source string) (*types.ExtractedText, *Metadata, error) {
	text, pages, err := extract(doc)
	meta := NewMetadata(doc.Content, source, DetectMediaType(doc))
	meta.Pages = pages
	return text, meta, err
}

func extract(doc types.RawDocument) (*types.ExtractedText, int, error) {
	mediaType := DetectMediaType(doc)
	if mediaType != types.MediaTypePDF {
		return nil, 0, &ExtractionError{
			Kind:   KindUnsupportedFormat,
			Detail: fmt.Sprintf("media type %q", mediaType),
		}
	}

	raw, pages, err := decodePDF(doc.Content)
	if err != nil {
		return nil, pages, &ExtractionError{Kind: KindCorruptDocument, Cause: err}
	}

	text := types.NewExtractedText(SplitLines(raw))
	if text.IsEmpty() {
		return nil, pages, &ExtractionError{
			Kind:   KindNoExtractableText,
			Detail: fmt.Sprintf("%d page(s) without a text layer", pages),
		}
	}
	return text, pages, nil
}

// decodePDF returns the text of every page, one page after another, with a
// line break wherever the glyph baseline moves.
// The decoder panics on some malformed inputs; those are reported as errors.
func decodePDF(content []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf decoder panic: %v", r)
		}
	}()

	if len(content) == 0 {
		return "", 0, fmt.Errorf("empty document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", 0, err
	}

	pages = reader.NumPage()
	if pages == 0 {
		return "", 0, fmt.Errorf("document has no pages")
	}

	var sb strings.Builder
	var lastErr error
	decoded := 0
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		glyphs, err := pageGlyphs(page)
		if err != nil {
			lastErr = err
			continue
		}
		decoded++
		sb.WriteString(joinGlyphs(glyphs))
		sb.WriteString("\n")
	}

	if decoded == 0 && lastErr != nil {
		return "", pages, lastErr
	}
	return sb.String(), pages, nil
}

func pageGlyphs(page pdf.Page) (glyphs []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			glyphs = nil
			err = fmt.Errorf("page content: %v", r)
		}
	}()
	return page.Content().Text, nil
}

// joinGlyphs rebuilds lines from positioned glyphs in content-stream order.
// A baseline shift of more than half the font size starts a new line; a
// horizontal gap wider than a fraction of the font size becomes a space.
func joinGlyphs(glyphs []pdf.Text) string {
	var sb strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			size := math.Max(math.Max(g.FontSize, prev.FontSize), 2)
			switch {
			case math.Abs(g.Y-prev.Y) > size/2:
				sb.WriteString("\n")
			case g.X-(prev.X+prev.W) > size*0.2 && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " "):
				sb.WriteString(" ")
			}
		}
		sb.WriteString(g.S)
	}
	return sb.String()
}
