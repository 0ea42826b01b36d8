package sheet

import (
	"fmt"
	"image"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
)

// Frame is one equally sized cell of a sheet, before trimming.
type Frame struct {
	Index int
	// Bounds is the frame's rectangle in sheet coordinates.
	Bounds image.Rectangle
	// Image shares its pixels with the sheet.
	Image *image.NRGBA
}

// FrameExtent returns the extent of a single frame when total pixels are
// split into n frames. Any remainder is not covered by a frame.
func FrameExtent(total, n int) int {
	return total / n
}

// Split cuts img into n equally sized frames along dir. Frame i starts at
// offset i*FrameExtent on the split axis and spans the whole cross axis.
//
// The split axis extent of img must be a multiple of n. If truncate is set,
// the remainder is dropped from the end of the sheet instead.
func Split(img *image.NRGBA, n int, dir Direction, truncate bool) ([]Frame, error) {
	b := img.Bounds()
	total := dir.split(b.Size())
	if n <= 0 {
		return nil, &InvalidFrameCountError{Frames: n, Extent: total, Reason: "frame count must be positive"}
	}
	extent := FrameExtent(total, n)
	if extent == 0 {
		return nil, &InvalidFrameCountError{Frames: n, Extent: total, Reason: "frames would be empty"}
	}
	if rem := total % n; rem != 0 {
		if !truncate {
			return nil, &InvalidFrameCountError{Frames: n, Extent: total, Reason: fmt.Sprintf("%dpx would be left over", rem)}
		}
		glog.Warningf("%s sheet of %dpx does not split evenly into %d frames; dropping the last %dpx", dir, total, n, rem)
	}

	cross := dir.cross(b.Size())
	frames := make([]Frame, 0, n)
	for i := range iter.N(n) {
		r := image.Rectangle{
			Min: dir.point(i*extent, 0),
			Max: dir.point((i+1)*extent, cross),
		}.Add(b.Min)
		frames = append(frames, Frame{
			Index:  i,
			Bounds: r,
			Image:  img.SubImage(r).(*image.NRGBA),
		})
	}
	return frames, nil
}
