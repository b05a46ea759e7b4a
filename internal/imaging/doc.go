// Package imaging reads the intrinsic properties of an image file and
// classifies them for the design notes report.
//
// Only the image header is decoded. Inspect uses image.DecodeConfig, so the
// cost of an inspection does not grow with the pixel count for the formats
// whose decoders stop after the header (all the registered ones do).
//
// # Supported Formats
//
// Decoders are registered for:
//   - PNG, JPEG, GIF (standard library)
//   - BMP, TIFF, WebP (golang.org/x/image)
//
// # Color Modes
//
// The color mode is reported using the short descriptors common to image
// tooling rather than Go color model names:
//   - "RGB", "RGBA": 8-bit color without/with alpha
//   - "L", "LA": 8-bit grayscale without/with alpha
//   - "1": bilevel (1-bit grayscale PNG)
//   - "P": palette (indexed) color
//   - "CMYK": four-channel print color
//   - "I;16": 16-bit grayscale
//
// For PNG and WebP the mode comes from the file header (IHDR color type and
// bit depth, or the WebP alpha flags), since the decoder's color model folds
// gray+alpha into RGBA and 1-bit gray into L.
//
// # Classification
//
// Orientation is derived from the aspect ratio alone. Landscape and Portrait
// use strict inequalities, so ratios of exactly 0.8 and 1.2 are Balanced.
// Resolution tiers are checked from High to Low and the first match wins.
//
// # Error Handling
//
// Inspect returns an error for a missing or unreadable file, an unsupported
// or corrupt encoding, and an image with zero height. Errors carry a stack
// trace (see github.com/k1LoW/errors); their message is suitable for users.
package imaging
