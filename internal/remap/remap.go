// Package remap resamples an image through a lookup table: for each
// destination pixel it reads a fractional source coordinate from a pair of
// map grids and samples the source image there. Destinations whose source
// falls outside the image, or whose mask cell is false, receive the border
// color.
package remap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rgarcia/sphereproj/internal/grid"
)

// Mode selects the sampling kernel.
type Mode int

const (
	// Bilinear interpolates over the four surrounding source pixels.
	Bilinear Mode = iota
	// Nearest picks the closest source pixel.
	Nearest
)

func (m Mode) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a user-facing name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "bilinear", "linear":
		return Bilinear, nil
	case "nearest":
		return Nearest, nil
	default:
		return 0, fmt.Errorf("unknown interpolation mode: %q (supported: bilinear, nearest)", s)
	}
}

// Remap produces a mapX.W x mapX.H image where each pixel (i, j) samples
// src at (mapX[i,j], mapY[i,j]). mask may be nil; when present its shape
// must match the maps and false cells are filled with border.
func Remap(src *image.NRGBA, mapX, mapY *grid.Grid, mask *grid.Mask, mode Mode, border color.NRGBA) (*image.NRGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("remap: empty source image")
	}
	if !mapX.SameShape(mapY) {
		return nil, fmt.Errorf("remap: map shape mismatch: %v vs %v", mapX, mapY)
	}
	if mask != nil && (mask.W != mapX.W || mask.H != mapX.H) {
		return nil, fmt.Errorf("remap: mask shape %dx%d does not match maps %v", mask.W, mask.H, mapX)
	}

	w, h := mapX.W, mapX.H
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			di := dst.PixOffset(i, j)
			if mask != nil && !mask.At(i, j) {
				putNRGBA(dst.Pix[di:di+4], border)
				continue
			}
			sx := mapX.At(i, j)
			sy := mapY.At(i, j)
			if sx < 0 || sy < 0 || sx > float64(srcW-1) || sy > float64(srcH-1) {
				putNRGBA(dst.Pix[di:di+4], border)
				continue
			}
			switch mode {
			case Nearest:
				nearestSample(src, sx, sy, dst.Pix[di:di+4])
			default:
				bilinearSample(src, sx, sy, dst.Pix[di:di+4])
			}
		}
	}
	return dst, nil
}

func putNRGBA(px []byte, c color.NRGBA) {
	px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
}

func nearestSample(src *image.NRGBA, sx, sy float64, out []byte) {
	x := int(sx + 0.5)
	y := int(sy + 0.5)
	if x > src.Bounds().Dx()-1 {
		x = src.Bounds().Dx() - 1
	}
	if y > src.Bounds().Dy()-1 {
		y = src.Bounds().Dy() - 1
	}
	si := src.PixOffset(src.Bounds().Min.X+x, src.Bounds().Min.Y+y)
	copy(out, src.Pix[si:si+4])
}

// bilinearSample blends the four surrounding source pixels, clamping at the
// image edge. Accesses Pix directly; this is the inner loop.
func bilinearSample(src *image.NRGBA, sx, sy float64, out []byte) {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	x0 := int(sx)
	y0 := int(sy)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > w-1 {
		x1 = w - 1
	}
	if y1 > h-1 {
		y1 = h - 1
	}
	dx := sx - float64(x0)
	dy := sy - float64(y0)

	stride := src.Stride
	pix := src.Pix
	base := src.PixOffset(src.Bounds().Min.X, src.Bounds().Min.Y)

	i00 := base + y0*stride + x0*4
	i10 := base + y0*stride + x1*4
	i01 := base + y1*stride + x0*4
	i11 := base + y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	for c := 0; c < 4; c++ {
		v := float64(pix[i00+c])*w00 + float64(pix[i10+c])*w10 +
			float64(pix[i01+c])*w01 + float64(pix[i11+c])*w11
		out[c] = uint8(v + 0.5)
	}
}
