package encode

import (
	"bytes"
	"image"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gen2brain/webp"
)

// WebPEncoder encodes images as lossy WebP using a pure-Go (WASM-based)
// encoder. No CGo or system libraries required; automatically uses a
// system libwebp via purego if available, otherwise falls back to WASM.
type WebPEncoder struct {
	Quality int
}

func (e *WebPEncoder) Encode(img image.Image) ([]byte, error) {
	quality := e.Quality
	if quality <= 0 {
		quality = 85
	}
	var buf bytes.Buffer
	opts := webp.Options{
		Lossless: false,
		Quality:  quality,
	}
	if err := webp.Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *WebPEncoder) Format() string        { return "webp" }
func (e *WebPEncoder) FileExtension() string { return ".webp" }

// LosslessWebPEncoder encodes images as lossless WebP with a pure-Go VP8L
// encoder. Preferred for synthetic output where compression artifacts
// would corrupt edge pixels near mask boundaries.
type LosslessWebPEncoder struct{}

func (e *LosslessWebPEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *LosslessWebPEncoder) Format() string        { return "webp-lossless" }
func (e *LosslessWebPEncoder) FileExtension() string { return ".webp" }
