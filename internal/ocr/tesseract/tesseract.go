// Package tesseract recognizes page images with Tesseract through the
// gosseract client.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
	xdraw "golang.org/x/image/draw"

	"docqa/internal/ocr"
)

// Engine is a Tesseract-backed OCR engine. Word-level confidences come
// from the recognizer's word bounding boxes.
type Engine struct {
	clientFactory func() *gosseract.Client
	minWidth      int
}

// New constructs the engine. Pages narrower than minWidth pixels are
// upscaled before recognition; Tesseract degrades sharply on low-DPI
// scans. minWidth <= 0 disables upscaling.
func New(minWidth int) *Engine {
	return &Engine{clientFactory: gosseract.NewClient, minWidth: minWidth}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize performs OCR on a single page image.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	select {
	case <-ctx.Done():
		return ocr.Result{}, ctx.Err()
	default:
	}
	img, err := upscale(in.Image, e.minWidth)
	if err != nil {
		return ocr.Result{}, err
	}
	c := e.clientFactory()
	defer c.Close()
	if err := c.SetImageFromBytes(img); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return ocr.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return ocr.Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize page %d: %w", in.PageIndex, err)
	}
	words := make([]ocr.Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, ocr.Word{Text: b.Word, Confidence: b.Confidence / 100.0})
	}
	return ocr.Result{PageIndex: in.PageIndex, Words: words}, nil
}

func upscale(data []byte, minWidth int) ([]byte, error) {
	if minWidth <= 0 {
		return data, nil
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode page image: %w", err)
	}
	b := src.Bounds()
	if b.Dx() >= minWidth {
		return data, nil
	}
	scale := float64(minWidth) / float64(b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, minWidth, int(float64(b.Dy())*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode upscaled page: %w", err)
	}
	return buf.Bytes(), nil
}
