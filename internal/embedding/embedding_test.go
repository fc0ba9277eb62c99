package embedding_test

import (
	"errors"
	"reflect"
	"testing"

	"docqa/internal/domain"
	"docqa/internal/embedding"
	"docqa/internal/embedding/tfidf"
)

func TestSplitSentences(t *testing.T) {
	text := "Unemployment rate is 5 percent.\n\n  Median earnings rose.  \n\t\nFinal line."
	got := embedding.SplitSentences(text)
	want := []string{"Unemployment rate is 5 percent.", "Median earnings rose.", "Final line."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := embedding.SplitSentences(" \n \t \n"); len(got) != 0 {
		t.Fatalf("want no sentences, got %q", got)
	}
}

func TestEmbedAllRowsMatchSentences(t *testing.T) {
	sentences := []string{
		"Unemployment rate is 5 percent.",
		"Median weekly earnings rose to 1100 dollars.",
		"The labor force grew slightly.",
	}
	vectors, err := embedding.EmbedAll(tfidf.NewEmbedder(), sentences)
	if err != nil {
		t.Fatalf("EmbedAll error: %v", err)
	}
	if len(vectors) != len(sentences) {
		t.Fatalf("got %d rows, want %d", len(vectors), len(sentences))
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			t.Fatalf("row %d has dimension %d, want %d", i, len(v), dim)
		}
	}
}

func TestEmbedAllNoSentences(t *testing.T) {
	_, err := embedding.EmbedAll(tfidf.NewEmbedder(), nil)
	if !errors.Is(err, domain.ErrNoSentences) {
		t.Fatalf("want ErrNoSentences, got %v", err)
	}
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}
