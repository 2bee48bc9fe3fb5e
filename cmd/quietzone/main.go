package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.afab.re/quietzone"
	"go.afab.re/quietzone/pixel"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `%s [options] < matrix

Render a module matrix read from stdin as a PNG image.

The matrix is text, one row per line, with '#' for dark and '.' for light modules,
or an image (PNG/GIF/JPEG) with -img.

`, os.Args[0])
		flag.PrintDefaults()
	}

	var (
		format        = flag.String("format", pixel.Luma.Name(), fmt.Sprintf("Pixel format, one of %v.", pixel.Formats()))
		margin        = flag.Int("margin", 4, "Quiet zone around the matrix, in modules.")
		module        = flag.String("module", "", "Size of each module in pixels, WxH.")
		minSize       = flag.String("min", "", "Minimum image size in pixels, WxH.")
		maxSize       = flag.String("max", "", "Maximum image size in pixels, WxH.")
		img           = flag.Bool("img", false, "Read the matrix from an image (PNG/GIF/JPEG) instead of text.")
		imgModule     = flag.Int("img-module", 1, "Size of each module in the -img input, in pixels.")
		caption       = flag.String("caption", "", "Text to print below the matrix.")
		captionHeight = flag.Int("caption-height", 0, "Height of the caption in pixels. Defaults to twice the margin, at least 4 modules.")
		dpi           = flag.Int("dpi", 72, "DPI used to size the caption font.")
		out           = flag.String("o", "", "Write the PNG to filename instead of stdout.")
		verbose       = flag.Bool("v", false, "Log debug information to stderr.")
	)
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(-1)
	}

	if *verbose {
		quietzone.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := render(os.Stdin, flags{
		format:        *format,
		margin:        *margin,
		module:        *module,
		min:           *minSize,
		max:           *maxSize,
		img:           *img,
		imgModule:     *imgModule,
		caption:       *caption,
		captionHeight: *captionHeight,
		dpi:           *dpi,
		out:           *out,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(-1)
	}
}

type flags struct {
	format        string
	margin        int
	module        string
	min           string
	max           string
	img           bool
	imgModule     int
	caption       string
	captionHeight int
	dpi           int
	out           string
}

func render(in io.Reader, flags flags) error {
	f, ok := pixel.Lookup(flags.format)
	if !ok {
		return fmt.Errorf("unknown format %q, expected one of %v", flags.format, pixel.Formats())
	}

	var (
		m   quietzone.Matrix
		err error
	)
	if flags.img {
		m, err = matrixImage(in, flags.imgModule)
	} else {
		m, err = quietzone.ParseMatrix(in)
	}
	if err != nil {
		return err
	}

	r, err := quietzone.New(m, flags.margin, f)
	if err != nil {
		return err
	}
	if err := sizing(r, flags); err != nil {
		return err
	}

	rendered, err := r.Build()
	if err != nil {
		return err
	}

	if flags.caption != "" {
		height := flags.captionHeight
		if height == 0 {
			sw, _, err := r.Scale()
			if err != nil {
				return err
			}
			height = max(2*flags.margin, 4) * sw
		}

		rendered, err = quietzone.Caption(rendered, flags.caption, quietzone.CaptionOpts{
			Height: height,
			DPI:    flags.dpi,
		})
		if err != nil {
			return err
		}
	}

	if flags.out == "" {
		if isTerminal(os.Stdout) {
			return fmt.Errorf("refusing to write a PNG to a terminal, use -o or redirect stdout")
		}
		return png.Encode(os.Stdout, rendered)
	}

	dst, err := os.Create(flags.out)
	if err != nil {
		return err
	}
	if err := png.Encode(dst, rendered); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func matrixImage(in io.Reader, moduleSize int) (quietzone.Matrix, error) {
	img, _, err := image.Decode(in)
	if err != nil {
		return quietzone.Matrix{}, err
	}

	return quietzone.MatrixFromImage(img, moduleSize)
}

// sizing applies the one sizing flag that was set, if any.
func sizing(r *quietzone.Renderer, flags flags) error {
	set := 0
	for _, s := range []string{flags.module, flags.min, flags.max} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("only one of -module, -min and -max can be used")
	}

	switch {
	case flags.module != "":
		w, h, err := parseSize(flags.module)
		if err != nil {
			return fmt.Errorf("-module: %w", err)
		}
		r.ModuleDimensions(w, h)
	case flags.min != "":
		w, h, err := parseSize(flags.min)
		if err != nil {
			return fmt.Errorf("-min: %w", err)
		}
		r.MinDimensions(w, h)
	case flags.max != "":
		w, h, err := parseSize(flags.max)
		if err != nil {
			return fmt.Errorf("-max: %w", err)
		}
		r.MaxDimensions(w, h)
	}

	return nil
}

var errSize = errors.New("expected WxH or N")

// parseSize parses "WxH", or "N" for a square size.
func parseSize(s string) (w, h int, err error) {
	ws, hs, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		hs = ws
	}

	w, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, errSize)
	}
	h, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, errSize)
	}

	return w, h, nil
}
