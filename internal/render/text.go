package render

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// wrapText breaks one paragraph into lines no wider than maxWidth. A word
// wider than maxWidth gets a line of its own.
func wrapText(face font.Face, paragraph string, maxWidth int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return nil
	}

	limit := fixed.I(maxWidth)
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if font.MeasureString(face, candidate) <= limit {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

// textWidth returns the advance width of s in pixels
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// textHeight returns the line height of face in pixels
func textHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// drawText draws s with its top-left corner at (x, y)
func drawText(dst *image.NRGBA, face font.Face, c color.Color, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(s)
}

// drawWrapped draws text paragraph by paragraph starting at y and returns the
// y after the last line. Blank paragraphs advance one line unless last.
func drawWrapped(dst *image.NRGBA, face font.Face, c color.Color, text string, x, y, maxWidth, lineHeight int, compactness float64) int {
	if text == "" {
		return y
	}

	step := int(float64(lineHeight) * compactness)
	paragraphs := strings.Split(text, "\n")
	for i, para := range paragraphs {
		if strings.TrimSpace(para) == "" {
			if i < len(paragraphs)-1 {
				y += step
			}
			continue
		}
		for _, line := range wrapText(face, para, maxWidth) {
			drawText(dst, face, c, x, y, line)
			y += step
		}
	}
	return y
}
