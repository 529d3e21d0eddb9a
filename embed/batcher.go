package embed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/supertruth/violet/ai"
)

const defaultChunkSize = 100

// Contextualize wraps a raw search term in a short domain framing before
// embedding. Bare two-word queries embed poorly; the framing pulls them
// toward their medical sense.
func Contextualize(text, category string) string {
	return fmt.Sprintf("Oncology and rare disease search query about %s: %s", category, text)
}

// Result holds the embedding outcome for a single input text.
// Exactly one of Vector or Err is set.
type Result struct {
	Vector []float32
	Err    error
}

// Batcher generates embeddings for large text sets in fixed-size chunks.
// Each chunk gets a single provider call; a failed chunk marks only its
// own slots and its texts are picked up again by the next run. The
// remaining chunks still run.
type Batcher struct {
	embedder  ai.Embedder
	chunkSize int
	logger    *slog.Logger
}

// Option is a functional option for configuring a Batcher.
type Option func(*Batcher) error

// WithChunkSize sets how many texts go into one embedding request.
func WithChunkSize(size int) Option {
	return func(b *Batcher) error {
		if size <= 0 {
			return ErrInvalidChunkSize
		}
		b.chunkSize = size
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Batcher) error {
		b.logger = logger
		return nil
	}
}

// NewBatcher creates a Batcher around the given embedder.
func NewBatcher(embedder ai.Embedder, opts ...Option) (*Batcher, error) {
	if embedder == nil {
		return nil, ErrNilEmbedder
	}

	b := &Batcher{
		embedder:  embedder,
		chunkSize: defaultChunkSize,
		logger:    slog.Default().With("component", "embed-batcher"),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// EmbedAll embeds every text, preserving order and count. Vectors are
// normalized to unit length. Returns ErrAllChunksFailed if the input was
// non-empty and not a single chunk succeeded.
func (b *Batcher) EmbedAll(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	succeeded := 0
	for start := 0; start < len(texts); start += b.chunkSize {
		end := start + b.chunkSize
		if end > len(texts) {
			end = len(texts)
		}
		chunk := texts[start:end]

		vectors, err := b.embedder.EmbedTexts(ctx, chunk)
		if err == nil && len(vectors) != len(chunk) {
			err = fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunk), len(vectors))
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			b.logger.Warn("embedding chunk failed",
				"start", start, "size", len(chunk), "error", err)
			for i := start; i < end; i++ {
				results[i] = Result{Err: err}
			}
			continue
		}

		for i := range chunk {
			results[start+i] = Result{Vector: NormalizeVector(vectors[i])}
		}
		succeeded += len(chunk)

		b.logger.Debug("embedded chunk", "start", start, "size", len(chunk))
	}

	if succeeded == 0 {
		return results, ErrAllChunksFailed
	}

	return results, nil
}
