package ttesting

import (
	"image"
	"image/color"
	"image/draw"
)

// Opaque is the color test sheets paint their content with.
var Opaque = color.NRGBA{R: 0xC0, G: 0x40, B: 0x20, A: 0xFF}

// NewSheet returns a fully transparent NRGBA image of the given size.
func NewSheet(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// Fill paints r in img with c.
func Fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// StripSheet builds a horizontal strip of n frames, each frameW x frameH,
// where frame i holds content at the rectangle returned by content(i),
// relative to the frame. A nil content rectangle leaves the frame
// transparent.
func StripSheet(n, frameW, frameH int, content func(i int) *image.Rectangle) *image.NRGBA {
	img := NewSheet(n*frameW, frameH)
	for i := 0; i < n; i++ {
		if r := content(i); r != nil {
			Fill(img, r.Add(image.Pt(i*frameW, 0)), Opaque)
		}
	}
	return img
}

// ColumnSheet is StripSheet laid out vertically.
func ColumnSheet(n, frameW, frameH int, content func(i int) *image.Rectangle) *image.NRGBA {
	img := NewSheet(frameW, n*frameH)
	for i := 0; i < n; i++ {
		if r := content(i); r != nil {
			Fill(img, r.Add(image.Pt(0, i*frameH)), Opaque)
		}
	}
	return img
}

// Rect is image.Rect returning a pointer, for content callbacks.
func Rect(x0, y0, x1, y1 int) *image.Rectangle {
	r := image.Rect(x0, y0, x1, y1)
	return &r
}

// AlphaAt returns the alpha of img at (x, y).
func AlphaAt(img image.Image, x, y int) uint8 {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
}
