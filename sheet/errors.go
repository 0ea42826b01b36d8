package sheet

import "fmt"

// DefaultMaxExtent is the largest texture dimension WebGL renderers are
// commonly guaranteed to accept.
const DefaultMaxExtent = 16384

// InvalidFrameCountError is returned when a sheet cannot be split into the
// requested number of frames.
type InvalidFrameCountError struct {
	Frames int
	Extent int
	Reason string
}

func (e *InvalidFrameCountError) Error() string {
	return fmt.Sprintf("cannot split %dpx into %d frames: %s", e.Extent, e.Frames, e.Reason)
}

// SizeLimitError is returned when the repacked sheet would be larger than
// the configured ceiling along its split axis. Nothing is written when it
// occurs.
type SizeLimitError struct {
	Direction Direction
	Extent    int
	Limit     int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("%s sheet extent %dpx exceeds limit of %dpx", e.Direction, e.Extent, e.Limit)
}
