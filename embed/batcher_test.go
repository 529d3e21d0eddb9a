package embed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supertruth/violet/ai/mock"
)

func TestNewBatcher_NilEmbedder(t *testing.T) {
	_, err := NewBatcher(nil)
	assert.ErrorIs(t, err, ErrNilEmbedder)
}

func TestNewBatcher_InvalidChunkSize(t *testing.T) {
	_, err := NewBatcher(mock.NewMockEmbedder(), WithChunkSize(0))
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestBatcher_EmbedAll_PreservesOrderAndCount(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	batcher, err := NewBatcher(embedder, WithChunkSize(2))
	require.NoError(t, err)

	texts := []string{"leukemia", "lymphoma", "sarcoma", "glioma", "myeloma"}
	results, err := batcher.EmbedAll(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))

	for i, result := range results {
		require.NoError(t, result.Err, "text %d", i)
		assert.NotEmpty(t, result.Vector)
	}

	// Same text must give the same vector regardless of chunking
	again, err := batcher.EmbedAll(context.Background(), []string{"sarcoma"})
	require.NoError(t, err)
	assert.Equal(t, results[2].Vector, again[0].Vector)
}

func TestBatcher_EmbedAll_Empty(t *testing.T) {
	batcher, err := NewBatcher(mock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := batcher.EmbedAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatcher_EmbedAll_ChunkFailureIsIsolated(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	chunkErr := errors.New("service unavailable")
	calls := 0
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		// Second chunk fails
		if calls == 2 {
			return nil, chunkErr
		}
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{1, 0, 0}
		}
		return vectors, nil
	}

	batcher, err := NewBatcher(embedder, WithChunkSize(2))
	require.NoError(t, err)

	texts := []string{"a", "b", "c", "d", "e", "f"}
	results, err := batcher.EmbedAll(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, 6)

	// First chunk succeeded
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	// Second chunk failed, only its slots carry the error
	assert.ErrorIs(t, results[2].Err, chunkErr)
	assert.ErrorIs(t, results[3].Err, chunkErr)
	// Third chunk still ran
	assert.NoError(t, results[4].Err)
	assert.NoError(t, results[5].Err)
}

func TestBatcher_EmbedAll_AllChunksFailed(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("down")
	}

	batcher, err := NewBatcher(embedder)
	require.NoError(t, err)

	_, err = batcher.EmbedAll(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ErrAllChunksFailed)
}

func TestBatcher_EmbedAll_SingleAttemptPerChunk(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	calls := 0
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		return nil, errors.New("down")
	}

	batcher, err := NewBatcher(embedder)
	require.NoError(t, err)

	// A failed chunk is not retried here; the next run picks it up
	results, err := batcher.EmbedAll(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrAllChunksFailed)
	assert.Equal(t, 1, calls)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestBatcher_EmbedAll_CountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		// Drop one vector
		return [][]float32{{1, 0}}, nil
	}

	batcher, err := NewBatcher(embedder)
	require.NoError(t, err)

	results, err := batcher.EmbedAll(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ErrAllChunksFailed)
	for _, result := range results {
		assert.Error(t, result.Err)
	}
}

func TestBatcher_EmbedAll_VectorsAreNormalized(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{3, 4}}, nil
	}

	batcher, err := NewBatcher(embedder)
	require.NoError(t, err)

	results, err := batcher.EmbedAll(context.Background(), []string{"x"})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)

	assert.InDelta(t, 0.6, results[0].Vector[0], 0.0001)
	assert.InDelta(t, 0.8, results[0].Vector[1], 0.0001)
}

func TestContextualize(t *testing.T) {
	got := Contextualize("neuroblastoma survival rate", "pediatric_oncology")
	want := fmt.Sprintf("Oncology and rare disease search query about %s: %s",
		"pediatric_oncology", "neuroblastoma survival rate")
	assert.Equal(t, want, got)
}
