package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/rgarcia/sphereproj/internal/encode"
	"github.com/rgarcia/sphereproj/internal/projection"
	"github.com/rgarcia/sphereproj/internal/remap"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	var (
		projName      string
		direction     string
		center        string
		radius        float64
		fov           float64
		azimuth       float64
		scaleK0       float64
		size          string
		geoSize       string
		bounds        string
		interpolation string
		border        string
		format        string
		quality       int
		maxInput      int
		verbose       bool
		listProj      bool
		showVersion   bool
	)

	flag.StringVar(&projName, "projection", "gnomonic", "Projection name (see -list)")
	flag.StringVar(&direction, "direction", "forward", "forward: equirectangular -> projected; backward: projected -> equirectangular")
	flag.StringVar(&center, "center", "", "Projection center as \"lat,lon\" in degrees (default: projection preset)")
	flag.Float64Var(&radius, "radius", 0, "Sphere radius (default: projection preset)")
	flag.Float64Var(&fov, "fov", 0, "Field of view in degrees, 0 < fov < 180 (default: projection preset)")
	flag.Float64Var(&azimuth, "azimuth", 0, "Oblique central-line azimuth east of north, degrees (oblique-mercator only)")
	flag.Float64Var(&scaleK0, "scale", 0, "Central-line scale factor k0 (default: projection preset)")
	flag.StringVar(&size, "size", "", "Projected grid size as WxH (default: projection preset)")
	flag.StringVar(&geoSize, "geo-size", "", "Equirectangular grid size as WxH (default: projection preset)")
	flag.StringVar(&bounds, "bounds", "", "Geographic window as \"lonMin,latMin,lonMax,latMax\" (default: projection preset)")
	flag.StringVar(&interpolation, "interpolation", "bilinear", "Resampling: bilinear, nearest")
	flag.StringVar(&border, "border", "", "Fill color for masked/out-of-range pixels, \"R,G,B,A\" or \"#RRGGBBAA\"")
	flag.StringVar(&format, "format", "png", "Output format: png, jpeg, webp, webp-lossless")
	flag.IntVar(&quality, "quality", 85, "JPEG/WebP quality 1-100")
	flag.IntVar(&maxInput, "max-input", 0, "Downscale input so its longest side is at most this many pixels (0 = off)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")
	flag.BoolVar(&listProj, "list", false, "List registered projections and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: projimg [flags] <input image> <output image>\n\n")
		fmt.Fprintf(os.Stderr, "Convert a raster image between an equirectangular representation and a\n")
		fmt.Fprintf(os.Stderr, "planar map projection, in either direction, on a spherical Earth model.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("projimg %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	registry := projection.NewDefaultRegistry()

	if listProj {
		for _, name := range registry.Projections() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := args[0]
	outputPath := args[1]

	if direction != "forward" && direction != "backward" {
		log.Fatalf("Direction must be \"forward\" or \"backward\", got %q", direction)
	}

	// Collect config overrides; unset flags keep the projection's presets.
	var opts []projection.Option
	if center != "" {
		lat, lon, err := parseCenter(center)
		if err != nil {
			log.Fatalf("Center: %v", err)
		}
		opts = append(opts, projection.WithCenter(lat, lon))
	}
	if radius > 0 {
		opts = append(opts, projection.WithRadius(radius))
	}
	if fov > 0 {
		opts = append(opts, projection.WithFOV(fov))
	}
	if azimuth != 0 {
		opts = append(opts, projection.WithAzimuth(azimuth))
	}
	if scaleK0 > 0 {
		opts = append(opts, projection.WithScale(scaleK0))
	}
	if size != "" {
		w, h, err := parseSize(size)
		if err != nil {
			log.Fatalf("Size: %v", err)
		}
		opts = append(opts, projection.WithPlanarSize(w, h))
	}
	if geoSize != "" {
		w, h, err := parseSize(geoSize)
		if err != nil {
			log.Fatalf("Geo size: %v", err)
		}
		opts = append(opts, projection.WithSphericalSize(w, h))
	}
	if bounds != "" {
		vals, err := parseFloats(bounds, 4)
		if err != nil {
			log.Fatalf("Bounds: %v", err)
		}
		opts = append(opts, projection.WithBounds(vals[0], vals[1], vals[2], vals[3]))
	}
	mode, err := remap.ParseMode(interpolation)
	if err != nil {
		log.Fatalf("Interpolation: %v", err)
	}
	opts = append(opts, projection.WithInterpolation(mode))
	if border != "" {
		c, err := parseColor(border)
		if err != nil {
			log.Fatalf("Border: %v", err)
		}
		opts = append(opts, projection.WithBorder(c))
	}

	enc, err := encode.NewEncoder(format, quality)
	if err != nil {
		log.Fatalf("Encoder: %v", err)
	}

	proc, err := registry.Build(projName, opts...)
	if err != nil {
		log.Fatalf("Building projection %q: %v", projName, err)
	}

	start := time.Now()
	decoded, srcFormat, err := encode.DecodeFile(inputPath)
	if err != nil {
		log.Fatalf("Opening input: %v", err)
	}
	src := encode.ToNRGBA(decoded)
	if maxInput > 0 {
		src = downscale(src, maxInput)
	}

	if verbose {
		cfg := proc.Config()
		log.Printf("Input %s: %dx%d (%s)", inputPath, src.Bounds().Dx(), src.Bounds().Dy(), srcFormat)
		log.Printf("Projection %s: center (%.2f, %.2f), R=%g, fov=%g",
			projName, cfg.CenterLat, cfg.CenterLon, cfg.R, cfg.FOV)
	}

	var out *image.NRGBA
	if direction == "forward" {
		out, err = proc.Forward(src)
	} else {
		out, err = proc.Backward(src)
	}
	if err != nil {
		log.Fatalf("Projecting: %v", err)
	}

	data, err := enc.Encode(out)
	if err != nil {
		log.Fatalf("Encoding output: %v", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		log.Fatalf("Writing output: %v", err)
	}

	fmt.Printf("Done: %dx%d %s, %d bytes, %v -> %s\n",
		out.Bounds().Dx(), out.Bounds().Dy(), enc.Format(), len(data),
		time.Since(start).Round(time.Millisecond), outputPath)
}

// downscale shrinks img so its longest side is at most maxSide, preserving
// aspect ratio.
func downscale(img *image.NRGBA, maxSide int) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxSide {
		return img
	}
	scale := float64(maxSide) / float64(longest)
	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// parseCenter parses "lat,lon" in degrees.
func parseCenter(s string) (lat, lon float64, err error) {
	vals, err := parseFloats(s, 2)
	if err != nil {
		return 0, 0, err
	}
	return vals[0], vals[1], nil
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH format (e.g. \"1024x512\"), got %q", s)
	}
	w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", parts[1])
	}
	return w, h, nil
}

// parseFloats parses a comma-separated list of exactly n floats.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d in %q", n, len(parts), s)
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseColor parses an RGBA color from "R,G,B,A" or "#RRGGBBAA" format.
func parseColor(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("expected R,G,B,A format (e.g. \"0,0,0,255\"), got %q", s)
	}

	vals := make([]uint8, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid color component %q (must be 0-255)", p)
		}
		vals[i] = uint8(v)
	}
	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		s += "ff" // default alpha
	case 8:
		// full RRGGBBAA
	default:
		return color.NRGBA{}, fmt.Errorf("hex color must be #RRGGBB or #RRGGBBAA, got %q", "#"+s)
	}

	var c [4]uint8
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color: %w", err)
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
