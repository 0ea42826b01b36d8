package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"

	"badc0de.net/pkg/spritecrop/imageprint"
	"badc0de.net/pkg/spritecrop/paths"
	"badc0de.net/pkg/spritecrop/preview"
	"badc0de.net/pkg/spritecrop/sheet"
	"badc0de.net/pkg/spritecrop/sheetio"
)

// Exit codes.
const (
	exitOK        = 0
	exitError     = 1
	exitUsage     = 2
	exitSizeLimit = 3
)

// usageError is reported when the command line cannot be understood.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func figureBanner() string {
	return figure.NewFigure("spritecrop", "", true).String()
}

// cropper holds everything one invocation needs besides its positional
// arguments.
type cropper struct {
	stdout io.Writer
	opts   sheet.Options
	output string

	gifPath   string
	gifDelay  int
	quantizer preview.Quantizer
	dataURL   bool
	preview   *imageprint.Options
}

// parseArgs reads <input_file> [frame_count] [direction] into o.
func parseArgs(args []string, o *sheet.Options) (string, error) {
	if len(args) < 1 {
		return "", &usageError{"missing input file"}
	}
	if len(args) > 3 {
		return "", &usageError{fmt.Sprintf("too many arguments: %q", args[3:])}
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return "", &usageError{fmt.Sprintf("frame count %q is not a positive number", args[1])}
		}
		o.Frames = n
	}
	if len(args) > 2 {
		dir, err := sheet.ParseDirection(args[2])
		if err != nil {
			return "", &usageError{err.Error()}
		}
		o.Direction = dir
	}
	return args[0], nil
}

func (c *cropper) run(ctx context.Context, args []string) int {
	o := c.opts
	input, err := parseArgs(args, &o)
	if err != nil {
		fmt.Fprintf(c.stdout, "%v\n\n", err)
		return exitUsage
	}
	out := paths.Resolve(input, c.output)

	fmt.Fprintf(c.stdout, "Loading sheet: %s\n", input)
	img, format, err := sheetio.Load(input)
	if err != nil {
		glog.Errorf("error loading sheet: %v", err)
		return exitError
	}
	size := img.Bounds().Size()
	fmt.Fprintf(c.stdout, "Source size: %d x %d (%s)\n", size.X, size.Y, format)

	res, err := sheet.Crop(ctx, img, o)
	var fcErr *sheet.InvalidFrameCountError
	var limitErr *sheet.SizeLimitError
	switch {
	case errors.As(err, &fcErr):
		fmt.Fprintf(c.stdout, "%v\n", fcErr)
		fmt.Fprintf(c.stdout, "Use -truncate to drop the leftover pixels.\n\n")
		return exitUsage
	case errors.As(err, &limitErr):
		fmt.Fprintf(c.stdout, "\nWarning: the new sheet would be %dpx long, over the %dpx limit!\n", limitErr.Extent, limitErr.Limit)
		fmt.Fprintf(c.stdout, "Consider laying the frames out %s instead.\n", other(limitErr.Direction))
		fmt.Fprintf(c.stdout, "\n✗ Crop failed\n")
		return exitSizeLimit
	case err != nil:
		glog.Errorf("error cropping sheet: %v", err)
		return exitError
	}

	c.report(res)

	if err := sheetio.Save(out, input, res.Image); err != nil {
		glog.Errorf("error saving sheet: %v", err)
		return exitError
	}
	fmt.Fprintf(c.stdout, "\nSaved to: %s\n", out)
	fmt.Fprintf(c.stdout, "Reduction: %.1f%%\n", res.Reduction())

	if c.gifPath != "" {
		if err := preview.WriteGIF(c.gifPath, res.Slots(), c.gifDelay, c.quantizer); err != nil {
			glog.Errorf("error writing gif preview: %v", err)
			return exitError
		}
		fmt.Fprintf(c.stdout, "Animation preview: %s\n", c.gifPath)
	}
	if c.dataURL {
		s, err := preview.DataURL(res.Image)
		if err != nil {
			glog.Errorf("error building data url: %v", err)
			return exitError
		}
		fmt.Fprintf(c.stdout, "%s\n", s)
	}
	if c.preview != nil {
		if err := imageprint.Print(c.stdout, res.Image, *c.preview); err != nil {
			glog.Warningf("could not print preview: %v", err)
		}
	}

	fmt.Fprintf(c.stdout, "\n✓ Crop done!\n")
	fmt.Fprintf(c.stdout, "Rename %s to %s to replace the original sheet.\n", out, input)
	return exitOK
}

func (c *cropper) report(res *sheet.Result) {
	fmt.Fprintf(c.stdout, "Frame size: %d x %d\n", res.FrameSize.X, res.FrameSize.Y)
	for _, f := range res.Frames {
		if f.Transparent {
			fmt.Fprintf(c.stdout, "  frame %d: fully transparent, kept as is\n", f.Index)
			continue
		}
		fmt.Fprintf(c.stdout, "  frame %d: %d x %d -> %d x %d\n", f.Index, f.Source.Dx(), f.Source.Dy(), f.Box.Dx(), f.Box.Dy())
	}
	size := res.Image.Bounds().Size()
	fmt.Fprintf(c.stdout, "\nNew sheet size: %d x %d\n", size.X, size.Y)
}

func other(d sheet.Direction) sheet.Direction {
	if d == sheet.Horizontal {
		return sheet.Vertical
	}
	return sheet.Horizontal
}
