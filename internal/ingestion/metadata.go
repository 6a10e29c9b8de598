package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes a document that went through extraction.
type Metadata struct {
	Source    string `json:"source,omitempty"` // URL or upload filename
	MediaType string `json:"media_type"`
	Size      int    `json:"size"`
	Hash      string `json:"hash"` // SHA256 hex digest of the raw bytes
	Pages     int    `json:"pages,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339 format
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content []byte, source, mediaType string) *Metadata {
	return &Metadata{
		Source:    source,
		MediaType: mediaType,
		Size:      len(content),
		Hash:      ComputeHash(content),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ComputeHash computes SHA256 hash of content and returns hex string
func ComputeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
