package sheet

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/bradfitz/iter"
)

// Layout computes the slot every frame is pasted into and the size of the
// sheet holding all the slots.
//
// The slot's split axis extent is the largest trimmed split axis extent, and
// its cross axis extent the largest trimmed cross axis extent.
func Layout(frames []TrimmedFrame, dir Direction) (slot, canvas image.Point) {
	var split, cross int
	for _, f := range frames {
		split = max(split, dir.split(f.Size()))
		cross = max(cross, dir.cross(f.Size()))
	}
	return dir.point(split, cross), dir.point(split*len(frames), cross)
}

// Assemble pastes frames into a new transparent sheet, in order, each at the
// start of its slot on the split axis and centered on the cross axis. When
// centering leaves an odd number of pixels, the extra one goes after the
// frame.
//
// If limit is positive and the sheet would be longer than limit along dir,
// Assemble returns a *SizeLimitError.
func Assemble(frames []TrimmedFrame, dir Direction, limit int) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to assemble")
	}
	slot, canvas := Layout(frames, dir)
	if ext := dir.split(canvas); limit > 0 && ext > limit {
		return nil, &SizeLimitError{Direction: dir, Extent: ext, Limit: limit}
	}

	dst := image.NewNRGBA(image.Rectangle{Max: canvas})
	for i := range iter.N(len(frames)) {
		f := frames[i]
		size := f.Size()
		at := dir.point(i*dir.split(slot), (dir.cross(slot)-dir.cross(size))/2)
		draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(size)}, f.Image, image.Point{}, draw.Src)
	}
	return dst, nil
}
