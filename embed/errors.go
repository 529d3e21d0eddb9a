package embed

import "errors"

var (
	// ErrNilEmbedder is returned when a Batcher is constructed without an embedder.
	ErrNilEmbedder = errors.New("embedder cannot be nil")

	// ErrInvalidChunkSize is returned when the configured chunk size is <= 0
	ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")

	// ErrAllChunksFailed is returned when no text in a non-empty batch
	// could be embedded.
	ErrAllChunksFailed = errors.New("all embedding chunks failed")
)
