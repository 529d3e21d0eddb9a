package cluster

import (
	"log/slog"
	"math"
)

// Config holds the layout and clustering parameters.
type Config struct {
	// Components is the dimensionality of the layout space.
	Components int

	// Neighbors is the local neighborhood size used by the layout.
	Neighbors int

	// MinDist is the minimum separation the layout preserves between
	// neighboring points.
	MinDist float64

	// Spread controls how far apart the layout scatters points overall.
	Spread float64

	// MinClusterSize is the smallest group the clustering will report.
	MinClusterSize int

	// MinSamples controls how conservative the density estimate is.
	MinSamples int

	// Seed makes the layout deterministic.
	Seed int64
}

// DefaultConfig returns the production clustering parameters.
func DefaultConfig() Config {
	return Config{
		Components:     3,
		Neighbors:      10,
		MinDist:        0.5,
		Spread:         2.0,
		MinClusterSize: 5,
		MinSamples:     3,
		Seed:           42,
	}
}

// Result is the outcome of a full fit: one coordinate and label per
// input vector, and a centroid per non-noise label.
type Result struct {
	Coordinates [][]float64
	Labels      []int
	Centroids   map[int][]float64
	NClusters   int
}

// Engine projects embedding vectors into a low-dimensional space and
// groups them by density.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: slog.Default().With("component", "cluster-engine"),
	}
}

// FitTransform lays out the vectors and clusters them. Fewer than three
// vectors cannot be laid out; they all land at the origin in a single
// cluster so downstream stages still have coordinates to work with.
func (e *Engine) FitTransform(vectors [][]float32) (*Result, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrNoVectors
	}
	dim := len(vectors[0])
	for _, v := range vectors {
		if len(v) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	if n < 3 {
		e.logger.Warn("too few vectors for layout, collapsing to origin", "count", n)
		coords := make([][]float64, n)
		labels := make([]int, n)
		for i := range coords {
			coords[i] = make([]float64, e.cfg.Components)
		}
		return &Result{
			Coordinates: coords,
			Labels:      labels,
			Centroids:   map[int][]float64{0: make([]float64, e.cfg.Components)},
			NClusters:   1,
		}, nil
	}

	coords := project(vectors, e.cfg)
	standardize(coords)

	labels := hdbscan(coords, e.cfg.MinClusterSize, e.cfg.MinSamples)

	centroids := computeCentroids(coords, labels, e.cfg.Components)

	noise := 0
	for _, label := range labels {
		if label < 0 {
			noise++
		}
	}
	e.logger.Info("clustering complete",
		"points", n, "clusters", len(centroids), "noise", noise)

	return &Result{
		Coordinates: coords,
		Labels:      labels,
		Centroids:   centroids,
		NClusters:   len(centroids),
	}, nil
}

// computeCentroids averages the coordinates of each non-noise label.
func computeCentroids(coords [][]float64, labels []int, dims int) map[int][]float64 {
	sums := make(map[int][]float64)
	counts := make(map[int]int)
	for i, label := range labels {
		if label < 0 {
			continue
		}
		if sums[label] == nil {
			sums[label] = make([]float64, dims)
		}
		for d := 0; d < dims; d++ {
			sums[label][d] += coords[i][d]
		}
		counts[label]++
	}

	for label, sum := range sums {
		for d := range sum {
			sum[d] /= float64(counts[label])
		}
	}
	return sums
}

// AssignNearest returns the label of the centroid closest to the given
// coordinates, or -1 if there are no centroids. Used to place newly
// promoted terms without refitting the whole space.
func AssignNearest(coords []float64, centroids map[int][]float64) int {
	best := -1
	bestDist := math.Inf(1)
	for label, centroid := range centroids {
		d := euclidean(coords, centroid)
		if d < bestDist || (d == bestDist && label < best) {
			best = label
			bestDist = d
		}
	}
	return best
}
