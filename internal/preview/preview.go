// Package preview exports an upright, optionally downscaled copy of a
// rendered framebuffer as WebP, TGA or PNG.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encoder writes img to w in one file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".webp": func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) },
	".tga":  tga.Encode,
	".png":  png.Encode,
}

// EncoderFor returns the encoder registered for the extension of path.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("preview: unsupported format %q", ext)
	}
	return enc, nil
}

// Upright returns a copy of img with the row order reversed. Framebuffer
// row 0 is the bottom of the picture.
func Upright(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Max.Y-1-y)
		dst := out.PixOffset(0, y)
		copy(out.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return out
}

// WriteFile writes an upright preview of img to path. When maxWidth is
// positive and smaller than the image, the preview is scaled down to that
// width keeping the aspect ratio.
func WriteFile(path string, img *image.NRGBA, maxWidth int) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	out := Upright(img)
	if maxWidth > 0 {
		out = Downsample(out, maxWidth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := enc(f, out); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}
