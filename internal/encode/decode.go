package encode

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	// Input decoders register themselves with image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gen2brain/webp"
)

// DecodeFile reads and decodes an image file. PNG, JPEG, TGA, BMP, and
// TIFF are sniffed by magic bytes; WebP goes through its own decoder,
// chosen by extension because the registered sniffers don't cover it.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		img, err := webp.Decode(f)
		if err != nil {
			return nil, "", fmt.Errorf("decoding webp %s: %w", path, err)
		}
		return img, "webp", nil
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, format, nil
}

// ToNRGBA converts any decoded image to the NRGBA layout the projection
// core operates on.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
