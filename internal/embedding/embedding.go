package embedding

import (
	"fmt"
	"strings"

	"docqa/internal/domain"
)

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
// Document sentences and queries must go through the same instance with
// the same configuration; retrieval is meaningless across encoders.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// SplitSentences returns the non-empty trimmed lines of the extracted
// document text, preserving order. Position in the returned slice is the
// embedding-matrix row for that sentence.
func SplitSentences(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// EmbedAll prepares the embedder on the sentence set and encodes each
// sentence into one matrix row, preserving order.
func EmbedAll(e Embedder, sentences []string) ([][]float64, error) {
	if len(sentences) == 0 {
		return nil, domain.ErrNoSentences
	}
	if err := e.Prepare(sentences); err != nil {
		return nil, fmt.Errorf("prepare %s embedder: %w", e.Name(), err)
	}
	vectors := make([][]float64, 0, len(sentences))
	for i, s := range sentences {
		v, err := e.Embed(s)
		if err != nil {
			return nil, fmt.Errorf("embed sentence %d: %w", i, err)
		}
		vectors = append(vectors, v)
	}
	if len(vectors) == 0 {
		return nil, domain.ErrEmbeddingFailure
	}
	return vectors, nil
}
