package domain

import (
	"context"
	"time"
)

// Document identifies a single input PDF. Input-only, never mutated.
type Document struct {
	ID   string
	Path string
	Name string
}

// Sentence is one non-empty trimmed line of the extracted document text.
// Index is the embedding-matrix row used to resolve search hits back to
// their source text.
type Sentence struct {
	Index int
	Text  string
}

// SearchResult pairs a retrieved sentence with its squared Euclidean
// distance to the query vector. Smaller is closer.
type SearchResult struct {
	Sentence Sentence
	Distance float64
}

// AnswerRecord is the persisted outcome of answering one question against
// one document.
type AnswerRecord struct {
	ID        string
	Document  string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// PageRenderer rasterizes pages of one open document on demand. Pages are
// rendered one at a time so no page image outlives its loop iteration.
type PageRenderer interface {
	PageCount() int
	// RenderPage returns the zero-based page as an encoded PNG.
	RenderPage(n int) ([]byte, error)
	Close() error
}

// DocumentOpener opens a PDF for page rendering.
type DocumentOpener interface {
	Open(path string) (PageRenderer, error)
}

// AnswerStore persists answer records across runs.
type AnswerStore interface {
	Save(ctx context.Context, rec AnswerRecord) error
	List(ctx context.Context, limit int) ([]AnswerRecord, error)
	Close() error
}
