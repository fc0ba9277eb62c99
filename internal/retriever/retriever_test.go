package retriever

import (
	"testing"

	"docqa/internal/index"
)

type fakeEmbedder struct {
	vectors map[string][]float64
}

func (f *fakeEmbedder) Name() string                  { return "fake" }
func (f *fakeEmbedder) Prepare(corpus []string) error { return nil }
func (f *fakeEmbedder) Dimension() int                { return 2 }
func (f *fakeEmbedder) Embed(text string) ([]float64, error) {
	return f.vectors[text], nil
}

func TestRetrieveMapsRowsToSentences(t *testing.T) {
	sentences := []string{"alpha", "beta", "gamma"}
	idx, err := index.Build([][]float64{{1, 0}, {0, 1}, {1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	emb := &fakeEmbedder{vectors: map[string][]float64{"which one?": {0, 0.9}}}
	r := New(emb, idx, sentences, 2)
	got, err := r.Retrieve("which one?")
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Sentence.Text != "beta" || got[0].Sentence.Index != 1 {
		t.Fatalf("nearest sentence = %+v, want beta at row 1", got[0])
	}
	if got[1].Distance < got[0].Distance {
		t.Fatalf("results not nearest-first: %+v", got)
	}
}

func TestRetrieveClampsToDocumentSize(t *testing.T) {
	sentences := []string{"only", "two"}
	idx, err := index.Build([][]float64{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	emb := &fakeEmbedder{vectors: map[string][]float64{"q": {1, 0}}}
	r := New(emb, idx, sentences, 5)
	got, err := r.Retrieve("q")
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want the whole 2-sentence document", len(got))
	}
}
