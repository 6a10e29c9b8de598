package pipeline

import "fmt"

// FetchError reports that the resume bytes could not be obtained.
// Extraction is never attempted when this is returned.
type FetchError struct {
	URL   string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch resume %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// PersistError reports that a screening was computed but could not be stored.
type PersistError struct {
	ScreeningID string
	Cause       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save screening %s: %v", e.ScreeningID, e.Cause)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}
