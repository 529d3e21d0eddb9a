package mock

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/ai"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	first, err := embedder.EmbedText(ctx, "neuroblastoma")
	require.NoError(t, err)
	second, err := embedder.EmbedText(ctx, "neuroblastoma")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := embedder.EmbedText(ctx, "wilms tumor")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMockEmbedder_VectorShape(t *testing.T) {
	embedder := NewMockEmbedder()

	vector, err := embedder.EmbedText(context.Background(), "mesothelioma symptoms")
	require.NoError(t, err)
	assert.Len(t, vector, ai.DefaultConfig().EmbeddingDim)

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 0.001)
}

func TestMockEmbedder_Overrides(t *testing.T) {
	embedder := NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1, 0, 0}}, nil
	}

	vectors, err := embedder.EmbedTexts(context.Background(), []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0, 0}}, vectors)
	assert.Equal(t, 1, embedder.CallCount())

	embedder.Reset()
	assert.Equal(t, 0, embedder.CallCount())
	assert.Nil(t, embedder.EmbedTextsFunc)
}
