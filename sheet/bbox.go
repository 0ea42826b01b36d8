package sheet

import (
	"context"
	"image"
	"image/draw"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// BoundingBox returns the smallest rectangle enclosing every pixel of img
// with a non-zero alpha. It returns false if img is fully transparent.
//
// There is no tolerance: alpha 1 counts as content.
func BoundingBox(img image.Image) (image.Rectangle, bool) {
	switch m := img.(type) {
	case *image.NRGBA:
		return alphaBox(m.Pix, m.Stride, m.Rect)
	case *image.RGBA:
		return alphaBox(m.Pix, m.Stride, m.Rect)
	}

	b := img.Bounds()
	box := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				box, found = px, true
				continue
			}
			box = box.Union(px)
		}
	}
	return box, found
}

// alphaBox scans 4-byte-per-pixel data whose alpha is the fourth byte.
func alphaBox(pix []uint8, stride int, r image.Rectangle) (image.Rectangle, bool) {
	minX, minY := r.Max.X, r.Max.Y
	maxX, maxY := r.Min.X-1, r.Min.Y-1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := pix[(y-r.Min.Y)*stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[(x-r.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// TrimmedFrame is a frame cropped to its bounding box.
type TrimmedFrame struct {
	Index int
	// Source is the untrimmed frame's rectangle in sheet coordinates.
	Source image.Rectangle
	// Box is the kept rectangle in sheet coordinates. It equals Source for
	// transparent frames.
	Box         image.Rectangle
	Transparent bool
	// Image holds a copy of the kept pixels, with its origin at (0, 0).
	Image *image.NRGBA
}

// Size returns the trimmed frame's width and height.
func (f TrimmedFrame) Size() image.Point {
	return f.Box.Size()
}

// Trim crops f to its bounding box. A fully transparent frame is kept whole
// so it never turns into an empty region.
func Trim(f Frame) TrimmedFrame {
	box, ok := BoundingBox(f.Image)
	if !ok {
		box = f.Bounds
	}
	dst := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), f.Image, box.Min, draw.Src)
	return TrimmedFrame{
		Index:       f.Index,
		Source:      f.Bounds,
		Box:         box,
		Transparent: !ok,
		Image:       dst,
	}
}

// TrimAll trims frames using up to workers goroutines. A non-positive
// workers value means no limit. The result is in the same order as frames.
func TrimAll(ctx context.Context, frames []Frame, workers int) ([]TrimmedFrame, error) {
	out := make([]TrimmedFrame, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, f := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Trim(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if glog.V(1) {
		for _, f := range out {
			if f.Transparent {
				glog.Infof("frame %d: fully transparent, kept at %dx%d", f.Index, f.Source.Dx(), f.Source.Dy())
				continue
			}
			glog.Infof("frame %d: %dx%d -> %dx%d", f.Index, f.Source.Dx(), f.Source.Dy(), f.Box.Dx(), f.Box.Dy())
		}
	}
	return out, nil
}
