// Package preview renders repacked sheets in forms that are quick to look
// at: an animated GIF cycling through the frames, or a data URL that can be
// pasted into a browser or a stylesheet.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/andybons/gogif"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/spritecrop/sheetio"
)

// Quantizer selects how frames are reduced to a GIF palette.
type Quantizer string

const (
	// Gogif uses gogif's median cut and reserves palette index 0 for
	// transparency.
	Gogif Quantizer = "gogif"
	// MedianCut uses go-quantize's median cut with a transparent entry.
	MedianCut Quantizer = "mediancut"
)

// String implements flag.Value.
func (q *Quantizer) String() string {
	if q == nil {
		return ""
	}
	return string(*q)
}

// Set implements flag.Value.
func (q *Quantizer) Set(s string) error {
	switch Quantizer(s) {
	case Gogif, MedianCut:
		*q = Quantizer(s)
		return nil
	}
	return fmt.Errorf("unknown quantizer %q; want %s or %s", s, Gogif, MedianCut)
}

// GIF encodes frames as an animation, showing each frame for delay
// hundredths of a second. All frames are drawn at the origin, so they should
// share the same size.
func GIF(w io.Writer, frames []image.Image, delay int, q Quantizer) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to animate")
	}

	g := gif.GIF{}
	for i, fr := range frames {
		img := sheetio.Normalize(fr)
		var pal *image.Paletted
		switch q {
		case MedianCut:
			pal = paletteMedianCut(img)
		default:
			pal = paletteGogif(img)
		}
		glog.V(2).Infof("gif frame %d: %d colors", i, len(pal.Palette))

		g.Image = append(g.Image, pal)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0
	return gif.EncodeAll(w, &g)
}

func paletteGogif(img *image.NRGBA) *image.Paletted {
	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // Up to 255 colors plus 1 space for transparency.
	pal := image.NewPaletted(img.Bounds(), nil)
	quantizer.Quantize(pal, img.Bounds(), img, image.ZP)

	// gogif's palette has no transparent entry. Put color.Transparent first
	// so the empty image defaults to it, then draw the frame over it.
	palTransparent := image.NewPaletted(img.Bounds(), append(color.Palette([]color.Color{color.Transparent}), pal.Palette...))
	draw.Draw(palTransparent, img.Bounds(), img, image.ZP, draw.Over)
	return palTransparent
}

func paletteMedianCut(img *image.NRGBA) *image.Paletted {
	quantizer := quantize.MedianCutQuantizer{AddTransparent: true}
	p := quantizer.Quantize(make(color.Palette, 0, 256), img)
	pal := image.NewPaletted(img.Bounds(), p)
	draw.Draw(pal, img.Bounds(), img, image.ZP, draw.Src)
	return pal
}

// WriteGIF writes the animation produced by GIF to a file at path.
func WriteGIF(path string, frames []image.Image, delay int, q Quantizer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating gif preview")
	}
	if err := GIF(f, frames, delay, q); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %q", path)
	}
	glog.Infof("wrote gif preview %s (%d frames)", path, len(frames))
	return nil
}

// DataURL returns img as a base64 PNG data URL.
func DataURL(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	if err := sheetio.Encode(buf, img); err != nil {
		return "", errors.Wrap(err, "encoding png for data url")
	}
	return dataurl.New(buf.Bytes(), "image/png").String(), nil
}
