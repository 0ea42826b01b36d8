// Package imageprint prints images on terminal.
//
// It is meant for eyeballing a repacked sheet right after it was written,
// not for faithful reproduction.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
)

// Mode selects how Print draws an image.
type Mode int

const (
	// TrueColor draws colored cells with 24bit escape sequences.
	TrueColor Mode = iota
	// Color256 draws colored cells through gookit/color.
	Color256
	// NoColor draws shaded ascii art only.
	NoColor
	// ITerm uses iTerm2's inline image escape sequence.
	ITerm
	// RasTerm picks kitty, iTerm or sixel output, whichever the terminal supports.
	RasTerm
)

// Options control Print.
type Options struct {
	Mode Mode
	// Blanks draws colored blanks instead of some bad ascii art.
	Blanks bool
	// Downsize shrinks the image to fit the terminal first.
	Downsize bool
	// Name is reported to terminals which display inline files.
	Name string
}

// Print draws img to w as requested by o.
func Print(w io.Writer, img image.Image, o Options) error {
	if o.Downsize {
		img = FitTerminal(img, o.Mode == ITerm || o.Mode == RasTerm)
	}
	switch o.Mode {
	case RasTerm:
		return PrintRasTerm(w, img)
	case ITerm:
		return PrintITerm(w, img, o.Name)
	case NoColor:
		PrintNoColor(w, img, o.Blanks)
	case Color256:
		Print256Color(w, img, o.Blanks)
	default:
		Print24bit(w, img, o.Blanks)
	}
	return nil
}

type shader struct {
	w                io.Writer
	escapesTrueColor bool
	blanks           bool
	noColor          bool
}

func (s shader) shade(col ic.Color) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if s.noColor {
			fmt.Fprint(s.w, "  ")
		} else {
			fmt.Fprint(s.w, "\x1b[0m  ")
		}
		return
	}

	cell := "  "
	if !s.blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	switch {
	case s.noColor:
		fmt.Fprint(s.w, cell)
	case s.escapesTrueColor:
		fmt.Fprintf(s.w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), cell)
	default:
		fmt.Fprint(s.w, color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Sprint(cell))
	}
}

func (s shader) print(i image.Image) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			s.shade(i.At(x, y))
		}
		if !s.noColor {
			fmt.Fprint(s.w, "\x1b[0m")
		}
		fmt.Fprint(s.w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	shader{w: w, blanks: blanks}.print(i)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	shader{w: w, escapesTrueColor: true, blanks: blanks}.print(i)
}

// PrintNoColor draws an image without using color escape sequences. Only
// transparency is visible with blanks=true.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	shader{w: w, blanks: blanks, noColor: true}.print(i)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return err
	}
	if err := bEnc.Close(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return err
}
