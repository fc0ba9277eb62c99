// Package index provides an exhaustive nearest-neighbor index over an
// embedding matrix. With one document's sentence count as N, a flat scan
// is exact and fast enough; approximate structures would only trade
// correctness for scale this pipeline never reaches.
package index

import (
	"fmt"
	"sort"

	"docqa/internal/domain"
)

// Flat searches by squared Euclidean distance. Immutable after Build.
type Flat struct {
	vectors [][]float64
	dim     int
}

// Hit is one nearest-neighbor match: the matrix row and its squared
// Euclidean distance to the query.
type Hit struct {
	Row      int
	Distance float64
}

// Build constructs the index from the embedding matrix. All rows must
// share one dimension.
func Build(vectors [][]float64) (*Flat, error) {
	if len(vectors) == 0 {
		return nil, domain.ErrEmptyIndex
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("zero-dimension vectors")
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, index has %d", i, len(v), dim)
		}
	}
	cp := make([][]float64, len(vectors))
	for i, v := range vectors {
		cp[i] = append([]float64(nil), v...)
	}
	return &Flat{vectors: cp, dim: dim}, nil
}

// Len returns the number of indexed vectors.
func (f *Flat) Len() int { return len(f.vectors) }

// Dimension returns the vector dimensionality the index was built with.
func (f *Flat) Dimension() int { return f.dim }

// Search returns the k rows nearest to query, ascending by distance.
// k larger than the index size is clamped to it; distance ties keep
// ascending row order.
func (f *Flat) Search(query []float64, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(query), f.dim)
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if k > len(f.vectors) {
		k = len(f.vectors)
	}
	hits := make([]Hit, len(f.vectors))
	for i, v := range f.vectors {
		hits[i] = Hit{Row: i, Distance: sqDistance(query, v)}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	return hits[:k], nil
}

func sqDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
