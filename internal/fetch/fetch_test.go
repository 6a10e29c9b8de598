package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf; qs=0.9")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("%PDF-1.4 body"))
	}))
	defer server.Close()

	result, err := NewClient(nil).Document(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Equal(t, []byte("%PDF-1.4 body"), result.Body)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestDocument_SendsOwnToken(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	base := NewClient(nil)
	authed := base.WithToken("blob-token")

	_, err := authed.Document(context.Background(), server.URL)
	require.NoError(t, err)
	_, err = base.Document(context.Background(), server.URL)
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Equal(t, "Bearer blob-token", gotAuth[0])
	assert.Equal(t, "", gotAuth[1], "token must not leak into the base client")
}

func TestDocument_InvalidURL(t *testing.T) {
	tests := []string{"not-a-valid-url", "ftp://files.example.com/resume.pdf"}

	for _, rawURL := range tests {
		t.Run(rawURL, func(t *testing.T) {
			_, err := NewClient(nil).Document(context.Background(), rawURL)
			require.Error(t, err)

			var fetchErr *Error
			assert.ErrorAs(t, err, &fetchErr)
		})
	}
}

func TestDocument_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := NewClient(nil).Document(context.Background(), server.URL)
	require.Error(t, err)
	assert.Nil(t, result)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestDocument_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(bytes.Repeat([]byte("a"), 64))
	}))
	defer server.Close()

	client := NewClient(&Options{MaxBytes: 16})
	_, err := client.Document(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDocument_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(nil).Document(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "", mediaType(""))
	assert.Equal(t, "application/pdf", mediaType("application/pdf"))
	assert.Equal(t, "text/plain", mediaType("text/plain; charset=utf-8"))
}
