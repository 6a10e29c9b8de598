package ingestion

import (
	"errors"
	"fmt"
)

// Kind classifies an extraction failure.
type Kind string

// Extraction failure kinds. They are stored verbatim as the screening's extraction status.
const (
	KindUnsupportedFormat Kind = "unsupported_format"
	KindCorruptDocument   Kind = "corrupt_document"
	KindNoExtractableText Kind = "no_extractable_text"
)

var (
	// ErrUnsupportedFormat is returned for media types other than PDF
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptDocument is returned when the decoder cannot parse the byte stream
	ErrCorruptDocument = errors.New("corrupt document")
	// ErrNoExtractableText is returned when the document has no text layer
	ErrNoExtractableText = errors.New("no extractable text")
)

var sentinels = map[Kind]error{
	KindUnsupportedFormat: ErrUnsupportedFormat,
	KindCorruptDocument:   ErrCorruptDocument,
	KindNoExtractableText: ErrNoExtractableText,
}

// ExtractionError reports why a document yielded no text.
// It is a recoverable outcome, not a fatal error.
type ExtractionError struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extraction failed (%s)", e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match an ExtractionError against the kind sentinels.
func (e *ExtractionError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// KindOf returns the extraction failure kind of err, or "" if err is not an ExtractionError.
func KindOf(err error) Kind {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Kind
	}
	return ""
}
