package index

import (
	"errors"
	"reflect"
	"testing"

	"docqa/internal/domain"
)

func basis(n, dim int) [][]float64 {
	vecs := make([][]float64, n)
	for i := range vecs {
		vecs[i] = make([]float64, dim)
		vecs[i][i] = 1
	}
	return vecs
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil)
	if !errors.Is(err, domain.ErrEmptyIndex) {
		t.Fatalf("want ErrEmptyIndex, got %v", err)
	}
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestBuildDimensionMismatch(t *testing.T) {
	_, err := Build([][]float64{{1, 0}, {1, 0, 0}})
	if err == nil {
		t.Fatal("want error for inconsistent dimensions")
	}
}

func TestSearchSelfRetrieval(t *testing.T) {
	idx, err := Build(basis(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 3; row++ {
		query := make([]float64, 3)
		query[row] = 1
		hits, err := idx.Search(query, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(hits) != 1 || hits[0].Row != row {
			t.Fatalf("query for row %d returned %+v", row, hits)
		}
		if hits[0].Distance != 0 {
			t.Fatalf("self distance = %v, want 0", hits[0].Distance)
		}
	}
}

func TestSearchAscendingDistance(t *testing.T) {
	idx, err := Build([][]float64{{0}, {10}, {3}, {7}})
	if err != nil {
		t.Fatal(err)
	}
	hits, err := idx.Search([]float64{1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	wantRows := []int{0, 2, 3, 1}
	for i, h := range hits {
		if h.Row != wantRows[i] {
			t.Fatalf("hit %d is row %d, want %d (hits: %+v)", i, h.Row, wantRows[i], hits)
		}
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Distance < hits[i-1].Distance {
			t.Fatalf("distances not ascending: %+v", hits)
		}
	}
}

func TestSearchClampsK(t *testing.T) {
	idx, err := Build(basis(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	hits, err := idx.Search([]float64{1, 0}, 5)
	if err != nil {
		t.Fatalf("k beyond index size must clamp, got error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
}

func TestSearchTieBreakIsRowOrder(t *testing.T) {
	idx, err := Build([][]float64{{1}, {1}, {1}})
	if err != nil {
		t.Fatal(err)
	}
	hits, err := idx.Search([]float64{1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, h := range hits {
		if h.Row != i {
			t.Fatalf("ties must keep ascending row order, got %+v", hits)
		}
	}
}

func TestSearchRepeatable(t *testing.T) {
	idx, err := Build([][]float64{{0, 1}, {1, 0}, {0.5, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	first, err := idx.Search([]float64{0.4, 0.6}, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := idx.Search([]float64{0.4, 0.6}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeat query gave different order: %+v vs %+v", first, second)
	}
}

func TestSearchQueryDimensionMismatch(t *testing.T) {
	idx, err := Build(basis(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := idx.Search([]float64{1}, 1); err == nil {
		t.Fatal("want error for mismatched query dimension")
	}
}

func TestSearchRejectsNonPositiveK(t *testing.T) {
	idx, err := Build(basis(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := idx.Search([]float64{1, 0}, 0); err == nil {
		t.Fatal("want error for k=0")
	}
}
