package sheet

import (
	"context"
	"image"
	"runtime"

	"github.com/golang/glog"
)

// Options control Crop.
type Options struct {
	// Frames is the number of frames in the sheet.
	Frames    int
	Direction Direction
	// MaxExtent is the largest allowed split axis extent of the repacked
	// sheet. Zero or less disables the check.
	MaxExtent int
	// Truncate allows a frame count which does not divide the sheet evenly;
	// the remainder is dropped.
	Truncate bool
	// Workers bounds how many frames are trimmed concurrently.
	Workers int
}

// DefaultOptions returns the options used when nothing else is requested:
// 17 frames in a row, limited to DefaultMaxExtent.
func DefaultOptions() Options {
	return Options{
		Frames:    17,
		Direction: Horizontal,
		MaxExtent: DefaultMaxExtent,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Result is a repacked sheet along with how it was built.
type Result struct {
	Image      *image.NRGBA
	Direction  Direction
	SourceSize image.Point
	FrameSize  image.Point
	SlotSize   image.Point
	Frames     []TrimmedFrame
}

// Reduction returns by how many percent the sheet shrank along its split
// axis.
func (r *Result) Reduction() float64 {
	src := r.Direction.split(r.SourceSize)
	if src == 0 {
		return 0
	}
	return (1 - float64(r.Direction.split(r.Image.Bounds().Size()))/float64(src)) * 100
}

// Slots returns the part of the repacked sheet holding each frame, in order.
func (r *Result) Slots() []image.Image {
	slots := make([]image.Image, len(r.Frames))
	for i := range slots {
		at := r.Direction.point(i*r.Direction.split(r.SlotSize), 0)
		slots[i] = r.Image.SubImage(image.Rectangle{Min: at, Max: at.Add(r.SlotSize)})
	}
	return slots
}

// Crop splits img into frames, trims each one and assembles a new sheet.
func Crop(ctx context.Context, img *image.NRGBA, o Options) (*Result, error) {
	size := img.Bounds().Size()
	glog.Infof("source sheet: %dx%d, %d %s frames", size.X, size.Y, o.Frames, o.Direction)

	frames, err := Split(img, o.Frames, o.Direction, o.Truncate)
	if err != nil {
		return nil, err
	}
	frameSize := frames[0].Bounds.Size()
	glog.Infof("frame size: %dx%d", frameSize.X, frameSize.Y)

	trimmed, err := TrimAll(ctx, frames, o.Workers)
	if err != nil {
		return nil, err
	}

	slot, canvas := Layout(trimmed, o.Direction)
	glog.Infof("repacked sheet: %dx%d, slot %dx%d", canvas.X, canvas.Y, slot.X, slot.Y)

	out, err := Assemble(trimmed, o.Direction, o.MaxExtent)
	if err != nil {
		return nil, err
	}
	return &Result{
		Image:      out,
		Direction:  o.Direction,
		SourceSize: size,
		FrameSize:  frameSize,
		SlotSize:   slot,
		Frames:     trimmed,
	}, nil
}
