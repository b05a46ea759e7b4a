package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	dimaging "github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// writeSolid writes a width x height image filled with c into dir.
// The encoding is chosen from the extension of name.
func writeSolid(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := dimaging.Save(dimaging.New(width, height, c), path); err != nil {
		t.Fatalf("failed to save %s: %v", name, err)
	}
	return path
}

// writeGradient writes a horizontal Lab gradient so lossy encoders have
// real content to work with.
func writeGradient(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	from, err := colorful.Hex("#1f3a93")
	if err != nil {
		t.Fatal(err)
	}
	to, err := colorful.Hex("#f4d03f")
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := from.BlendLab(to, float64(x)/float64(width)).Clamped()
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	if err := dimaging.Save(img, path); err != nil {
		t.Fatalf("failed to save %s: %v", name, err)
	}
	return path
}

// writeGrayPNG writes an 8-bit grayscale PNG. effect.Grayscale keeps an
// RGBA buffer, so the result is copied into an *image.Gray for the encoder
// to pick the gray color type.
func writeGrayPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	src := dimaging.New(width, height, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	b := src.Bounds()
	gray := image.NewGray(b)
	draw.Draw(gray, b, effect.Grayscale(src), b.Min, draw.Src)

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()

	if err := imgio.PNGEncoder()(f, gray); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
	return path
}

// writePNGHeader writes a PNG that stops after IHDR. That is all the decoder
// reads for a non-paletted config, and it allows color types and bit depths
// the standard encoder never produces.
func writePNGHeader(t *testing.T, dir, name string, width, height int, depth, colorType byte) string {
	t.Helper()
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = depth
	ihdr[9] = colorType

	var buf bytes.Buffer
	buf.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))

	return writeFile(t, dir, name, buf.Bytes())
}

// writeFile writes raw bytes, for hand-built headers and invalid files.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
