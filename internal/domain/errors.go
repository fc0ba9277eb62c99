package domain

import "errors"

var (
	// ErrDocumentRead indicates the PDF could not be opened or rasterized.
	ErrDocumentRead = errors.New("document cannot be read")

	// ErrEmptyExtraction indicates OCR produced no usable text across all
	// pages; the pipeline must not proceed to embedding.
	ErrEmptyExtraction = errors.New("extraction produced no text")

	// ErrNoSentences indicates the extracted text held zero non-empty lines.
	ErrNoSentences = errors.New("no sentences in extracted text")

	// ErrEmbeddingFailure indicates the encoder produced zero vectors for a
	// non-empty sentence set.
	ErrEmbeddingFailure = errors.New("embedding produced no vectors")

	// ErrEmptyIndex indicates index construction was attempted with zero
	// vectors.
	ErrEmptyIndex = errors.New("cannot build index from zero vectors")
)

// IsValidation reports whether err belongs to the per-document validation
// category. The batch logs these and continues with the next document;
// every other error aborts the run.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyExtraction) ||
		errors.Is(err, ErrNoSentences) ||
		errors.Is(err, ErrEmbeddingFailure) ||
		errors.Is(err, ErrEmptyIndex)
}
