// Package retriever resolves a query to the document sentences nearest
// to it in embedding space.
package retriever

import (
	"fmt"

	"docqa/internal/domain"
	"docqa/internal/embedding"
	"docqa/internal/index"
)

// Retriever embeds queries with the same encoder used for the document
// sentences and maps index hits back to their source text. It reads the
// sentence set but never mutates it.
type Retriever struct {
	embedder  embedding.Embedder
	idx       *index.Flat
	sentences []string
	topK      int
}

// New creates a retriever over a built index. topK <= 0 falls back to 5.
func New(embedder embedding.Embedder, idx *index.Flat, sentences []string, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{embedder: embedder, idx: idx, sentences: sentences, topK: topK}
}

// Retrieve returns up to topK sentences, nearest first. Documents with
// fewer than topK sentences yield fewer results instead of failing.
func (r *Retriever) Retrieve(query string) ([]domain.SearchResult, error) {
	vec, err := r.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	hits, err := r.idx.Search(vec, r.topK)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SearchResult, 0, len(hits))
	for _, h := range hits {
		out = append(out, domain.SearchResult{
			Sentence: domain.Sentence{Index: h.Row, Text: r.sentences[h.Row]},
			Distance: h.Distance,
		})
	}
	return out, nil
}
