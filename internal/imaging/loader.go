package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/k1LoW/errors"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrZeroHeight is returned when an image header reports a height of zero,
// which leaves the aspect ratio undefined.
var ErrZeroHeight = errors.New("division by zero")

// ImageProperties contains the intrinsic properties of an image file.
//
// Values are read once from the image header and never modified afterwards.
type ImageProperties struct {
	// Path is the path the image was opened from.
	Path string `json:"path"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the upper-case encoding family: "JPEG", "PNG", "GIF",
	// "BMP", "TIFF" or "WEBP".
	Format string `json:"format"`

	// ColorMode is the channel/bit-depth descriptor, e.g. "RGB" or "RGBA".
	ColorMode string `json:"color_mode"`
}

// Filename returns the base name of the inspected file.
func (p *ImageProperties) Filename() string {
	return filepath.Base(p.Path)
}

// AspectRatio returns Width / Height. Inspect never yields a zero height.
func (p *ImageProperties) AspectRatio() float64 {
	return float64(p.Width) / float64(p.Height)
}

// Orientation classifies the aspect ratio.
func (p *ImageProperties) Orientation() Orientation {
	return ClassifyOrientation(p.AspectRatio())
}

// Resolution classifies the pixel dimensions.
func (p *ImageProperties) Resolution() ResolutionTier {
	return ClassifyResolution(p.Width, p.Height)
}

// Inspect opens the image at path and reads its properties from the header.
//
// The file is closed before Inspect returns on every path, including
// failures. Only the header is decoded.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the encoding is unsupported or the header is corrupt
//   - Returns ErrZeroHeight if the header reports a height of zero
func Inspect(path string) (_ *ImageProperties, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Height == 0 {
		return nil, ErrZeroHeight
	}

	mode, ok := headerMode(f, format)
	if !ok {
		mode = ColorModeName(cfg.ColorModel)
	}

	return &ImageProperties{
		Path:      path,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Format:    FormatName(format),
		ColorMode: mode,
	}, nil
}

// FormatName converts a format name registered with the image package into
// the upper-case form used in reports.
func FormatName(registered string) string {
	if registered == "" {
		return "unknown"
	}
	return strings.ToUpper(registered)
}

// ColorModeName maps a color model reported by a decoder to its mode
// descriptor.
//
// Decoders report 8-bit RGB without alpha as color.RGBAModel (PNG truecolor,
// 24-bit BMP) or color.YCbCrModel (JPEG, lossy WebP), so both are "RGB".
// Inspect prefers the file header for PNG and lossless WebP, where the
// model alone cannot tell "LA" or "1" apart from "RGBA" or "L".
func ColorModeName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	switch m {
	case color.RGBAModel, color.YCbCrModel, color.RGBA64Model:
		return "RGB"
	case color.NRGBAModel, color.NYCbCrAModel, color.NRGBA64Model:
		return "RGBA"
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.CMYKModel:
		return "CMYK"
	}
	return "unknown"
}
