package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img so that it is at most maxWidth wide. Alpha is
// premultiplied around the filter so translucent edges do not darken.
func Downsample(img *image.NRGBA, maxWidth int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	dstW := maxWidth
	dstH := b.Dy() * maxWidth / b.Dx()
	if dstH < 1 {
		dstH = 1
	}

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	// CatmullRom approximates Lanczos.
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		a := float64(dst.Pix[i+3])
		if a > 1 {
			inv := 255.0 / a
			result.Pix[i] = clamp8(float64(dst.Pix[i]) * inv)
			result.Pix[i+1] = clamp8(float64(dst.Pix[i+1]) * inv)
			result.Pix[i+2] = clamp8(float64(dst.Pix[i+2]) * inv)
		}
		result.Pix[i+3] = dst.Pix[i+3]
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
