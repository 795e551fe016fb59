package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-delta-mcp/internal/deltae"
)

// MaxSide is the largest width or height, in pixels, Render will produce
// either before or after scaling.
const MaxSide = 4096

// Options controls swatch layout.
type Options struct {
	Width        int     // Total width in pixels before scaling (at least 2)
	Height       int     // Height in pixels before scaling
	Scale        float64 // Output scale factor; 0 or 1 means no scaling
	DividerColor string  // Optional hex color "#RRGGBB" for the center bar
	DividerWidth int     // Divider width in pixels (default 2 when a color is set)
	Label        string  // Optional label drawn in the bottom-left corner
}

// Result contains the rendered swatch.
type Result struct {
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	ImageBase64      string `json:"image_base64"`
	MimeType         string `json:"mime_type"`
	ReferenceHex     string `json:"reference_hex"`
	SampleHex        string `json:"sample_hex"`
	ReferenceInGamut bool   `json:"reference_in_gamut"`
	SampleInGamut    bool   `json:"sample_in_gamut"`
}

// Render draws reference and sample side by side.
//
// Returns an error if the dimensions are too small or exceed MaxSide, the
// divider color cannot be parsed, or PNG encoding fails.
func Render(reference, sample deltae.Lab, opts Options) (*Result, error) {
	if opts.Width < 2 || opts.Height < 1 {
		return nil, fmt.Errorf("invalid swatch size %dx%d: width must be >= 2 and height >= 1",
			opts.Width, opts.Height)
	}
	if opts.Width > MaxSide || opts.Height > MaxSide {
		return nil, fmt.Errorf("swatch size %dx%d exceeds the %d pixel limit",
			opts.Width, opts.Height, MaxSide)
	}
	if opts.Scale > 0 && opts.Scale != 1.0 {
		sw := float64(opts.Width) * opts.Scale
		sh := float64(opts.Height) * opts.Scale
		if sw > MaxSide || sh > MaxSide {
			return nil, fmt.Errorf("scaled swatch size %.0fx%.0f exceeds the %d pixel limit",
				sw, sh, MaxSide)
		}
	}

	refColor, refHex, refOK := displayColor(reference)
	smpColor, smpHex, smpOK := displayColor(sample)

	half := opts.Width / 2
	canvas := imaging.New(opts.Width, opts.Height, smpColor)
	canvas = imaging.Paste(canvas, imaging.New(half, opts.Height, refColor), image.Pt(0, 0))

	if opts.DividerColor != "" {
		divider, err := parseHexColor(opts.DividerColor)
		if err != nil {
			return nil, fmt.Errorf("invalid divider color %q: %w", opts.DividerColor, err)
		}
		dw := opts.DividerWidth
		if dw <= 0 {
			dw = 2
		}
		if dw > opts.Width {
			dw = opts.Width
		}
		canvas = imaging.Paste(canvas, imaging.New(dw, opts.Height, divider), image.Pt(half-dw/2, 0))
	}

	if opts.Label != "" {
		drawLabel(canvas, 2, opts.Height-labelHeight-1, opts.Label,
			color.NRGBA{255, 255, 255, 255}, color.NRGBA{0, 0, 0, 180})
	}

	var out image.Image = canvas
	if opts.Scale > 0 && opts.Scale != 1.0 {
		w := int(float64(opts.Width) * opts.Scale)
		h := int(float64(opts.Height) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v reduces swatch below one pixel", opts.Scale)
		}
		out = imaging.Resize(canvas, w, h, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &Result{
		Width:            out.Bounds().Dx(),
		Height:           out.Bounds().Dy(),
		ImageBase64:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:         "image/png",
		ReferenceHex:     refHex,
		SampleHex:        smpHex,
		ReferenceInGamut: refOK,
		SampleInGamut:    smpOK,
	}, nil
}

// displayColor converts an L*a*b* color to an opaque sRGB color. The bool
// reports whether the color was inside the sRGB gamut before clamping.
func displayColor(c deltae.Lab) (color.NRGBA, string, bool) {
	cf := colorful.Lab(c[0]/100, c[1]/100, c[2]/100)
	inGamut := cf.IsValid()
	cf = cf.Clamped()
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, strings.ToUpper(cf.Hex()), inGamut
}

// parseHexColor accepts "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func parseHexColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
