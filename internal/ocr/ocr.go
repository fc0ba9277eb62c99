// Package ocr defines the recognition contract between rendered page
// images and the text extractor.
package ocr

import "context"

// Input is a single page image submitted for recognition.
type Input struct {
	// Image is the PNG-encoded page.
	Image []byte
	// PageIndex links the input back to the zero-based page it came from.
	PageIndex int
	// DPI carries the render resolution. Zero means unknown.
	DPI int
	// Languages lists trained-data hints, e.g. "eng".
	Languages []string
}

// Word is one recognized token with its confidence in [0,1].
type Word struct {
	Text       string
	Confidence float64
}

// Result captures recognition output for one input image.
type Result struct {
	PageIndex int
	Words     []Word
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
