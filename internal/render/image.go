package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"time"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/ppiankov/civcards/internal/cache"
)

// loadImage decodes an image file read through the asset cache
func loadImage(assets cache.Cache, path string, ttl time.Duration) (image.Image, error) {
	data, err := cache.ReadFile(assets, path, ttl)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// scale resizes src to w x h
func scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// paste draws src over dst with its top-left corner at (x, y)
func paste(dst draw.Image, src image.Image, x, y int) {
	r := image.Rect(x, y, x+src.Bounds().Dx(), y+src.Bounds().Dy())
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

// applyBackgroundImage stretches bg over the whole canvas
func applyBackgroundImage(canvas *image.NRGBA, bg image.Image) {
	b := canvas.Bounds()
	if bg.Bounds().Dx() != b.Dx() || bg.Bounds().Dy() != b.Dy() {
		bg = scale(bg, b.Dx(), b.Dy())
	}
	paste(canvas, bg, 0, 0)
}

// applyHeraldry scales the heraldry to the canvas width, crops it vertically
// around the centre and blends every non-transparent pixel at opacity
func applyHeraldry(canvas *image.NRGBA, heraldry image.Image, opacity float64) {
	width, height := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	hb := heraldry.Bounds()
	if hb.Dx() == 0 || hb.Dy() == 0 {
		return
	}

	targetH := width * hb.Dy() / hb.Dx()
	if targetH <= 0 {
		targetH = height
	}
	scaled := scale(heraldry, width, targetH)

	srcY := 0
	if targetH > height {
		srcY = (targetH - height) / 2
		targetH = height
	}
	dstY := (height - targetH) / 2

	k := float64(alphaFor(opacity)) / 255
	for y := 0; y < targetH; y++ {
		for x := 0; x < width; x++ {
			src := scaled.NRGBAAt(x, srcY+y)
			if src.A == 0 {
				continue
			}
			dst := canvas.NRGBAAt(x, dstY+y)
			canvas.SetNRGBA(x, dstY+y, color.NRGBA{
				R: blend(src.R, dst.R, k),
				G: blend(src.G, dst.G, k),
				B: blend(src.B, dst.B, k),
				A: blend(255, dst.A, k),
			})
		}
	}
}

func blend(src, dst uint8, k float64) uint8 {
	return uint8(float64(src)*k + float64(dst)*(1-k) + 0.5)
}

// drawBorder strokes the canvas edge with the given width; radius > 0 rounds
// the corners
func drawBorder(canvas *image.NRGBA, c color.NRGBA, width, radius int) {
	if width <= 0 {
		return
	}
	b := canvas.Bounds()
	inner := image.Rect(b.Min.X+width, b.Min.Y+width, b.Max.X-width, b.Max.Y-width)
	innerRadius := radius - width
	if innerRadius < 0 {
		innerRadius = 0
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !insideRounded(x, y, b, radius) {
				continue
			}
			if inner.Empty() || !insideRounded(x, y, inner, innerRadius) {
				canvas.SetNRGBA(x, y, c)
			}
		}
	}
}

// insideRounded reports whether pixel (x, y) lies in r with corners of
// radius rad cut off
func insideRounded(x, y int, r image.Rectangle, rad int) bool {
	if !(image.Point{X: x, Y: y}).In(r) {
		return false
	}
	if rad <= 0 {
		return true
	}
	if limit := min(r.Dx(), r.Dy()) / 2; rad > limit {
		rad = limit
	}

	cx, cy := x, y
	switch {
	case x < r.Min.X+rad:
		cx = r.Min.X + rad
	case x >= r.Max.X-rad:
		cx = r.Max.X - rad - 1
	}
	switch {
	case y < r.Min.Y+rad:
		cy = r.Min.Y + rad
	case y >= r.Max.Y-rad:
		cy = r.Max.Y - rad - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= rad*rad
}

// flatten composites img onto an opaque background for formats without alpha
func flatten(img *image.NRGBA, bg color.NRGBA) *image.RGBA {
	bg.A = 255
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}
