// Package render rasterizes PDF pages with MuPDF via go-fitz.
package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"docqa/internal/domain"
)

// Opener opens PDF documents and hands out page renderers. It is a leaf
// component: it depends on nothing else in the pipeline.
type Opener struct {
	dpi int
}

// NewOpener creates an opener that rasterizes pages at the given DPI.
func NewOpener(dpi int) *Opener {
	if dpi <= 0 {
		dpi = 200
	}
	return &Opener{dpi: dpi}
}

// Open parses the PDF at path. An unparseable document is a read error,
// which aborts the whole batch rather than skipping the document.
func (o *Opener) Open(path string) (domain.PageRenderer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDocumentRead, path, err)
	}
	return &pages{doc: doc, dpi: o.dpi}, nil
}

type pages struct {
	doc *fitz.Document
	dpi int
}

func (p *pages) PageCount() int { return p.doc.NumPage() }

// RenderPage rasterizes one page to PNG. Callers render lazily, page by
// page, so at most one page image is alive at a time.
func (p *pages) RenderPage(n int) ([]byte, error) {
	img, err := p.doc.ImageDPI(n, float64(p.dpi))
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", domain.ErrDocumentRead, n, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", n, err)
	}
	return buf.Bytes(), nil
}

func (p *pages) Close() error { return p.doc.Close() }
