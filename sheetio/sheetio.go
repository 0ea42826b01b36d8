// Package sheetio loads sprite sheets into a uniform RGBA representation and
// writes repacked sheets out as PNG.
package sheetio

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Registered so Load can read them.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Load reads and decodes the image at path and normalizes it with
// Normalize. It also returns the name of the decoded format.
func Load(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "opening sheet")
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "decoding sheet %q", path)
	}
	glog.V(1).Infof("decoded %s as %s, %T", path, format, img)
	return Normalize(img), format, nil
}

// Normalize returns img as an NRGBA image whose bounds start at (0, 0).
// Pixels of images without an alpha channel become fully opaque.
func Normalize(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// Save writes img as a PNG file at path. It refuses to overwrite src, the
// sheet img was produced from.
func Save(path, src string, img image.Image) error {
	if same, err := samePath(path, src); err != nil {
		return err
	} else if same {
		return errors.Errorf("refusing to overwrite source sheet %q", src)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %q", path)
	}
	glog.Infof("wrote %s", path)
	return nil
}

func samePath(a, b string) (bool, error) {
	if b == "" {
		return false, nil
	}
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, errors.Wrap(err, "resolving output path")
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, errors.Wrap(err, "resolving source path")
	}
	return absA == absB, nil
}
