package cluster

import (
	"math"
	"math/rand"
	"sort"
)

// layoutIterations is the number of optimization passes over all points.
const layoutIterations = 200

// negativeSamples is the number of random repulsion partners per point
// per iteration.
const negativeSamples = 5

// project lays out high-dimensional vectors in a low-dimensional space,
// preserving local neighborhoods. Nearest neighbors by cosine similarity
// attract each other, random non-neighbors repel. The layout is seeded
// and fully deterministic for a given input.
func project(vectors [][]float32, cfg Config) [][]float64 {
	n := len(vectors)
	rng := rand.New(rand.NewSource(cfg.Seed))

	neighbors := nearestNeighbors(vectors, cfg.Neighbors)

	// Random initial placement within the spread
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, cfg.Components)
		for d := 0; d < cfg.Components; d++ {
			coords[i][d] = (rng.Float64()*2 - 1) * cfg.Spread
		}
	}

	for iter := 0; iter < layoutIterations; iter++ {
		// Learning rate decays linearly to zero
		alpha := 1.0 - float64(iter)/float64(layoutIterations)

		for i := 0; i < n; i++ {
			// Attraction toward neighbors, down to the minimum distance
			for _, j := range neighbors[i] {
				dist := euclidean(coords[i], coords[j])
				if dist <= cfg.MinDist {
					continue
				}
				pull := alpha * (dist - cfg.MinDist) / dist * 0.1
				for d := 0; d < cfg.Components; d++ {
					delta := (coords[j][d] - coords[i][d]) * pull
					coords[i][d] += delta
					coords[j][d] -= delta
				}
			}

			// Repulsion from random negative samples
			for s := 0; s < negativeSamples; s++ {
				j := rng.Intn(n)
				if j == i {
					continue
				}
				dist := euclidean(coords[i], coords[j])
				if dist >= cfg.Spread || dist < 1e-9 {
					continue
				}
				push := alpha * (cfg.Spread - dist) / (dist + 1e-9) * 0.02
				for d := 0; d < cfg.Components; d++ {
					coords[i][d] += (coords[i][d] - coords[j][d]) * push
				}
			}
		}
	}

	return coords
}

// nearestNeighbors returns the k nearest neighbors of each vector by
// cosine similarity.
func nearestNeighbors(vectors [][]float32, k int) [][]int {
	n := len(vectors)
	if k >= n {
		k = n - 1
	}

	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		type scored struct {
			idx int
			sim float64
		}
		candidates := make([]scored, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			candidates = append(candidates, scored{j, cosine(vectors[i], vectors[j])})
		}
		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].sim != candidates[b].sim {
				return candidates[a].sim > candidates[b].sim
			}
			return candidates[a].idx < candidates[b].idx
		})
		neighbors[i] = make([]int, k)
		for j := 0; j < k; j++ {
			neighbors[i][j] = candidates[j].idx
		}
	}
	return neighbors
}

// standardize scales each axis to zero mean and unit variance in place.
// Axes with zero variance are left centered.
func standardize(coords [][]float64) {
	if len(coords) == 0 {
		return
	}
	n := float64(len(coords))
	dims := len(coords[0])

	for d := 0; d < dims; d++ {
		var mean float64
		for i := range coords {
			mean += coords[i][d]
		}
		mean /= n

		var variance float64
		for i := range coords {
			diff := coords[i][d] - mean
			variance += diff * diff
		}
		variance /= n
		std := math.Sqrt(variance)

		for i := range coords {
			coords[i][d] -= mean
			if std > 0 {
				coords[i][d] /= std
			}
		}
	}
}

// cosine computes cosine similarity between two vectors.
func cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// euclidean computes euclidean distance between two points.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
