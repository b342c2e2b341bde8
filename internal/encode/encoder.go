// Package encode handles image serialization at the module boundary: the
// projection core works on in-memory NRGBA images and never touches bytes.
package encode

import (
	"fmt"
	"image"
)

// Encoder encodes an image into output bytes.
type Encoder interface {
	// Encode encodes an image to bytes in the output format.
	Encode(img image.Image) ([]byte, error)

	// Format returns the format name (e.g. "jpeg", "png", "webp").
	Format() string

	// FileExtension returns the appropriate file extension.
	FileExtension() string
}

// NewEncoder creates an encoder for the given format and quality.
func NewEncoder(format string, quality int) (Encoder, error) {
	switch format {
	case "jpeg", "jpg":
		return &JPEGEncoder{Quality: quality}, nil
	case "png":
		return &PNGEncoder{}, nil
	case "webp":
		return &WebPEncoder{Quality: quality}, nil
	case "webp-lossless":
		return &LosslessWebPEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q (supported: jpeg, png, webp, webp-lossless)", format)
	}
}
