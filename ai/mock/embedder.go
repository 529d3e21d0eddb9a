package mock

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/supertruth/violet/ai"
)

// MockEmbedder is a deterministic stand-in for ai.Embedder. The same
// term text always maps to the same unit vector, so clustering and
// pipeline tests get stable geometry without an embedding server.
// Function fields override the default behavior per test.
type MockEmbedder struct {
	// Dim is the width of generated vectors.
	Dim int

	// EmbedTextFunc, when set, replaces the deterministic single-text path.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc, when set, replaces the deterministic batch path.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEmbedder creates a mock embedder producing vectors at the
// default model's dimension.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{Dim: ai.DefaultConfig().EmbeddingDim}
}

// EmbedText returns a deterministic embedding derived from the text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return m.vector(text), nil
}

// EmbedTexts returns deterministic embeddings for each text in order.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = m.vector(text)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// vector hashes the text into a seeded linear congruential stream and
// normalizes the result to unit length.
func (m *MockEmbedder) vector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	out := make([]float32, m.Dim)
	var sumSquares float64
	for i := range out {
		state = state*6364136223846793005 + 1442695040888963407
		out[i] = float32(state>>40&2047)/1024 - 1
		sumSquares += float64(out[i]) * float64(out[i])
	}
	if sumSquares > 0 {
		inv := float32(1 / math.Sqrt(sumSquares))
		for i := range out {
			out[i] *= inv
		}
	}
	return out
}
