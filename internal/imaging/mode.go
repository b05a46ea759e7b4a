package imaging

import (
	"encoding/binary"
	"io"
)

// PNG IHDR color types.
const (
	pngGray      = 0
	pngTrueColor = 2
	pngPaletted  = 3
	pngGrayAlpha = 4
	pngTrueAlpha = 6
)

// headerMode reads the color mode straight from the file header for the
// formats where the decoder's color model loses information: a PNG color
// type of gray+alpha decodes as NRGBA and a 1-bit gray PNG decodes as Gray,
// and a lossless WebP decodes as NRGBA whether or not it uses alpha.
//
// It reports false when the format is not one of these or the header cannot
// be read, in which case the decoder's color model is authoritative.
func headerMode(r io.ReaderAt, format string) (string, bool) {
	switch format {
	case "png":
		return pngMode(r)
	case "webp":
		return webpMode(r)
	}
	return "", false
}

// pngMode maps the IHDR bit depth and color type. IHDR is always the first
// chunk: signature (8), length (4), type (4), width (4), height (4), then
// bit depth and color type.
func pngMode(r io.ReaderAt) (string, bool) {
	var hdr [26]byte
	if _, err := r.ReadAt(hdr[:], 0); err != nil {
		return "", false
	}
	if string(hdr[12:16]) != "IHDR" {
		return "", false
	}
	depth, colorType := hdr[24], hdr[25]

	switch colorType {
	case pngGray:
		switch depth {
		case 1:
			return "1", true
		case 16:
			return "I;16", true
		default:
			return "L", true
		}
	case pngTrueColor:
		return "RGB", true
	case pngPaletted:
		return "P", true
	case pngGrayAlpha:
		return "LA", true
	case pngTrueAlpha:
		return "RGBA", true
	}
	return "", false
}

// webpMode inspects the first chunk after the RIFF header. Lossy VP8 is
// left to the decoder.
func webpMode(r io.ReaderAt) (string, bool) {
	var hdr [25]byte
	if _, err := r.ReadAt(hdr[:], 0); err != nil {
		return "", false
	}
	if string(hdr[0:4]) != "RIFF" || string(hdr[8:12]) != "WEBP" {
		return "", false
	}

	switch string(hdr[12:16]) {
	case "VP8L":
		// Signature byte 0x2f, then 14 bits width-1, 14 bits height-1 and
		// the alpha_is_used bit.
		if hdr[20] != 0x2f {
			return "", false
		}
		bits := binary.LittleEndian.Uint32(hdr[21:25])
		if bits>>28&1 == 1 {
			return "RGBA", true
		}
		return "RGB", true
	case "VP8X":
		const alphaFlag = 0x10
		if hdr[20]&alphaFlag != 0 {
			return "RGBA", true
		}
		return "RGB", true
	}
	return "", false
}
