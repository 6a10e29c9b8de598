// Package server provides the HTTP API for resume screening.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/fetch"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/pipeline"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// ErrNotFound indicates the requested record does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageDisabled indicates the server runs without a database
var ErrStorageDisabled = errors.New("screening storage is not configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound      *ErrNotFound
		validation    *ErrValidation
		requestErr    *types.RequestError
		fieldErrs     validator.ValidationErrors
		tooLarge      *http.MaxBytesError
		fetchErr      *pipeline.FetchError
		upstreamFetch *fetch.Error
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &requestErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge), errors.Is(err, fetch.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &fetchErr):
		if errors.As(err, &upstreamFetch) && upstreamFetch.StatusCode == 0 && upstreamFetch.Cause == nil {
			// Rejected before any request was made, e.g. a non-http URL
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	case errors.Is(err, ErrStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
