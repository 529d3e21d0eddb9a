package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoBlobs builds two well-separated groups of near-identical vectors.
func twoBlobs(perBlob, dim int) [][]float32 {
	vectors := make([][]float32, 0, perBlob*2)
	for i := 0; i < perBlob; i++ {
		a := make([]float32, dim)
		a[0] = 1.0
		a[1] = float32(i) * 0.01
		vectors = append(vectors, a)

		b := make([]float32, dim)
		b[2] = 1.0
		b[3] = float32(i) * 0.01
		vectors = append(vectors, b)
	}
	return vectors
}

func TestEngine_FitTransform_SeparatesBlobs(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	perBlob := 12
	vectors := twoBlobs(perBlob, 8)
	result, err := engine.FitTransform(vectors)
	require.NoError(t, err)

	require.Len(t, result.Coordinates, len(vectors))
	require.Len(t, result.Labels, len(vectors))
	assert.Equal(t, 2, result.NClusters)

	// Within each blob, every non-noise point carries the same label,
	// and the two blobs never share one
	labelA, labelB := -1, -1
	for i, label := range result.Labels {
		if label < 0 {
			continue
		}
		if i%2 == 0 {
			if labelA == -1 {
				labelA = label
			}
			assert.Equal(t, labelA, label, "point %d", i)
		} else {
			if labelB == -1 {
				labelB = label
			}
			assert.Equal(t, labelB, label, "point %d", i)
		}
	}
	require.NotEqual(t, -1, labelA)
	require.NotEqual(t, -1, labelB)
	assert.NotEqual(t, labelA, labelB)
}

func TestEngine_FitTransform_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	vectors := twoBlobs(8, 6)

	first, err := engine.FitTransform(vectors)
	require.NoError(t, err)
	second, err := engine.FitTransform(vectors)
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Coordinates, second.Coordinates)
}

func TestEngine_FitTransform_CentroidPerLabel(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	result, err := engine.FitTransform(twoBlobs(10, 8))
	require.NoError(t, err)

	for _, label := range result.Labels {
		if label < 0 {
			continue
		}
		_, ok := result.Centroids[label]
		assert.True(t, ok, "label %d has no centroid", label)
	}
	assert.Len(t, result.Centroids, result.NClusters)
}

func TestEngine_FitTransform_TooFewVectors(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	result, err := engine.FitTransform([][]float32{{1, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, result.Coordinates)
	assert.Equal(t, []int{0, 0}, result.Labels)
	assert.Equal(t, 1, result.NClusters)
	assert.Equal(t, []float64{0, 0, 0}, result.Centroids[0])
}

func TestEngine_FitTransform_Empty(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	_, err := engine.FitTransform(nil)
	assert.ErrorIs(t, err, ErrNoVectors)
}

func TestEngine_FitTransform_DimensionMismatch(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	_, err := engine.FitTransform([][]float32{{1, 0}, {0, 1, 1}, {1, 1}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAssignNearest(t *testing.T) {
	centroids := map[int][]float64{
		0: {0, 0, 0},
		1: {10, 10, 10},
	}

	assert.Equal(t, 0, AssignNearest([]float64{1, 0, 0}, centroids))
	assert.Equal(t, 1, AssignNearest([]float64{9, 9, 11}, centroids))
	assert.Equal(t, -1, AssignNearest([]float64{1, 2, 3}, map[int][]float64{}))
}
