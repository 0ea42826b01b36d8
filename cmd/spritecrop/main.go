// Command spritecrop trims the transparent padding around every frame of a
// sprite sheet and writes the frames, repacked, to a new sheet next to the
// original one.
//
//	spritecrop [flags] <input_file> [frame_count=17] [direction=horizontal|vertical]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/spritecrop/imageprint"
	"badc0de.net/pkg/spritecrop/paths"
	"badc0de.net/pkg/spritecrop/preview"
	"badc0de.net/pkg/spritecrop/sheet"
)

var (
	outputPath string
	quantizer  = preview.Gogif

	maxExtent = flag.Int("max_extent", sheet.DefaultMaxExtent, "largest allowed length of the repacked sheet along its frames, in pixels; 0 disables the check")
	truncate  = flag.Bool("truncate", false, "allow a frame count which does not divide the sheet evenly, dropping the remainder")
	workers   = flag.Int("workers", runtime.GOMAXPROCS(0), "how many frames to trim concurrently")

	gifPath  = flag.String("gif", "", "also write an animated gif of the trimmed frames to this path")
	gifDelay = flag.Int("gif_delay", 5, "delay between gif frames, in 100ths of a second")
	dataURL  = flag.Bool("dataurl", false, "print the repacked sheet as a data url")

	showPreview = flag.Bool("preview", false, "print the repacked sheet on the terminal")
	rasterm     = flag.Bool("rasterm", false, "whether to print with rasterm (kitty, iterm or sixel)")
	iterm       = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	col         = flag.Bool("col", true, "whether to use color at all")
	col256      = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	blanks      = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize    = flag.Bool("downsize", true, "whether to shrink the preview to the terminal size")
)

func init() {
	paths.SetupOutputFlag("o", &outputPath)
	flag.Var(&quantizer, "quantizer", "gif palette quantizer: gogif or mediancut")
}

func printMode() imageprint.Mode {
	switch {
	case *rasterm:
		return imageprint.RasTerm
	case !*col:
		return imageprint.NoColor
	case *iterm:
		return imageprint.ITerm
	case *col256:
		return imageprint.Color256
	default:
		return imageprint.TrueColor
	}
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	o := sheet.DefaultOptions()
	o.MaxExtent = *maxExtent
	o.Truncate = *truncate
	o.Workers = *workers

	c := &cropper{
		stdout:    os.Stdout,
		opts:      o,
		output:    outputPath,
		gifPath:   *gifPath,
		gifDelay:  *gifDelay,
		quantizer: quantizer,
		dataURL:   *dataURL,
	}
	if *showPreview {
		c.preview = &imageprint.Options{
			Mode:     printMode(),
			Blanks:   *blanks,
			Downsize: *downsize,
			Name:     "sheet.png",
		}
	}

	code := c.run(context.Background(), flag.Args())
	if code == exitUsage {
		usage(os.Stdout)
	}
	glog.Flush()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, figureBanner())
	fmt.Fprintln(w, "usage: spritecrop [flags] <input_file> [frame_count] [direction]")
	fmt.Fprintln(w, "example: spritecrop public/down.png 17 horizontal")
	fmt.Fprintln(w)
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}
