package imageprint

import (
	"image"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
)

// Fit shrinks img so it fits in a box of cols x rows cells, where each
// pixel takes two columns. Images which already fit are returned as is.
func Fit(img image.Image, cols, rows uint) image.Image {
	if cols == 0 || rows == 0 {
		return img
	}
	return resize.Thumbnail(cols/2, rows, img, resize.Lanczos3)
}

// FitTerminal shrinks img to the terminal. If pixels is set and the
// terminal reports its size in pixels, the image is fit to that instead,
// since it is going to be displayed as an image rather than as cells.
func FitTerminal(img image.Image, pixels bool) image.Image {
	termSize, err := GetTermSize()
	if err != nil {
		glog.V(1).Infof("not downsizing preview: %v", err)
		return img
	}
	if pixels && termSize.WSXPixel != 0 && termSize.WSYPixel != 0 {
		return resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
	}
	// Leave a row for the prompt.
	rows := termSize.WSRow
	if rows > 1 {
		rows--
	}
	return Fit(img, termSize.WSCol, rows)
}
