package tesseract

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestUpscaleNarrowImage(t *testing.T) {
	in := encodePNG(t, 10, 20)
	out, err := upscale(in, 40)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 40 {
		t.Fatalf("width = %d, want 40", got)
	}
	if got := img.Bounds().Dy(); got != 80 {
		t.Fatalf("height = %d, want 80 (aspect preserved)", got)
	}
}

func TestUpscaleWideImageUnchanged(t *testing.T) {
	in := encodePNG(t, 100, 50)
	out, err := upscale(in, 40)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatal("wide image should pass through untouched")
	}
}

func TestUpscaleDisabled(t *testing.T) {
	in := encodePNG(t, 10, 10)
	out, err := upscale(in, 0)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatal("minWidth 0 should disable upscaling")
	}
}

func TestUpscaleBadImage(t *testing.T) {
	if _, err := upscale([]byte("not an image"), 40); err == nil {
		t.Fatal("expected decode error")
	}
}
