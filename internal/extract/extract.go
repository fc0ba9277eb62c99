// Package extract turns rendered pages into one normalized document
// string via OCR.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"docqa/internal/domain"
	"docqa/internal/ocr"
)

// Extractor runs recognition over every page of a document and joins the
// per-page text, in page order, with newlines.
type Extractor struct {
	engine    ocr.Engine
	threshold float64
	languages []string
	dpi       int
}

// New creates an extractor. Words recognized at or below threshold are
// dropped; threshold <= 0 falls back to 0.5.
func New(engine ocr.Engine, threshold float64, languages []string, dpi int) *Extractor {
	if threshold <= 0 {
		threshold = 0.5
	}
	return &Extractor{engine: engine, threshold: threshold, languages: languages, dpi: dpi}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extract produces the document string. Pages are rendered lazily inside
// the loop, so each page image is released before the next is created, on
// success and failure alike. An empty result after trimming means OCR
// found nothing usable and the document must not reach the embedder.
func (e *Extractor) Extract(ctx context.Context, pages domain.PageRenderer) (string, error) {
	texts := make([]string, 0, pages.PageCount())
	for n := 0; n < pages.PageCount(); n++ {
		img, err := pages.RenderPage(n)
		if err != nil {
			return "", err
		}
		res, err := e.engine.Recognize(ctx, ocr.Input{
			Image:     img,
			PageIndex: n,
			DPI:       e.dpi,
			Languages: e.languages,
		})
		if err != nil {
			return "", fmt.Errorf("ocr page %d: %w", n, err)
		}
		texts = append(texts, pageText(res.Words, e.threshold))
	}
	doc := strings.TrimSpace(strings.Join(texts, "\n"))
	if doc == "" {
		return "", fmt.Errorf("%w: %d pages scanned", domain.ErrEmptyExtraction, pages.PageCount())
	}
	return doc, nil
}

// pageText keeps words strictly above the confidence threshold, joins
// them with single spaces and collapses any residual whitespace runs.
func pageText(words []ocr.Word, threshold float64) string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w.Confidence > threshold && strings.TrimSpace(w.Text) != "" {
			kept = append(kept, w.Text)
		}
	}
	joined := whitespaceRe.ReplaceAllString(strings.Join(kept, " "), " ")
	return strings.TrimSpace(joined)
}
