package main

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"badc0de.net/pkg/spritecrop/imageprint"
	"badc0de.net/pkg/spritecrop/preview"
	"badc0de.net/pkg/spritecrop/sheet"
	"badc0de.net/pkg/spritecrop/sheetio"
	"badc0de.net/pkg/spritecrop/ttesting"
)

func writeSheet(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walk.png")
	if err := sheetio.Save(path, "", img); err != nil {
		t.Fatalf("failed to write test sheet: %v", err)
	}
	return path
}

func newCropper(buf *bytes.Buffer) *cropper {
	return &cropper{
		stdout:    buf,
		opts:      sheet.DefaultOptions(),
		gifDelay:  5,
		quantizer: preview.Gogif,
	}
}

func TestParseArgs(t *testing.T) {
	o := sheet.DefaultOptions()
	in, err := parseArgs([]string{"a.png"}, &o)
	if err != nil || in != "a.png" {
		t.Fatalf("parseArgs(a.png) = %q, %v", in, err)
	}
	ttesting.AssertEqualInt(t, "default frames", o.Frames, 17)

	if _, err := parseArgs([]string{"a.png", "8", "vertical"}, &o); err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	ttesting.AssertEqualInt(t, "frames", o.Frames, 8)
	ttesting.AssertEqualBool(t, "vertical", o.Direction == sheet.Vertical, true)

	for _, args := range [][]string{
		nil,
		{"a.png", "zero"},
		{"a.png", "0"},
		{"a.png", "3", "sideways"},
		{"a.png", "3", "vertical", "extra"},
	} {
		o := sheet.DefaultOptions()
		if _, err := parseArgs(args, &o); err == nil {
			t.Errorf("parseArgs(%q) succeeded; want usage error", args)
		}
	}
}

func TestRun(t *testing.T) {
	in := writeSheet(t, ttesting.StripSheet(4, 20, 10, func(i int) *image.Rectangle {
		if i == 2 {
			return nil
		}
		return ttesting.Rect(6, 2, 12, 8)
	}))
	buf := &bytes.Buffer{}
	c := newCropper(buf)
	c.gifPath = filepath.Join(filepath.Dir(in), "walk.gif")
	c.dataURL = true
	c.preview = &imageprint.Options{Mode: imageprint.NoColor}

	if code := c.run(context.Background(), []string{in, "4"}); code != exitOK {
		t.Fatalf("run = %d; want %d\n%s", code, exitOK, buf.String())
	}

	out, _, err := sheetio.Load(filepath.Join(filepath.Dir(in), "walk_cropped.png"))
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	// The transparent frame keeps its 20x10 size, so every slot is 20x10.
	ttesting.AssertEqualPoint(t, "output size", out.Bounds().Size(), image.Pt(80, 10))
	if _, err := os.Stat(c.gifPath); err != nil {
		t.Errorf("gif preview missing: %v", err)
	}
	for _, want := range []string{
		"frame 2: fully transparent, kept as is",
		"frame 0: 20 x 10 -> 6 x 6",
		"New sheet size: 80 x 10",
		"data:image/png;base64,",
		"✓ Crop done!",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, buf.String())
		}
	}
}

func TestRunExitCodes(t *testing.T) {
	in := writeSheet(t, ttesting.StripSheet(3, 10, 10, func(i int) *image.Rectangle {
		return ttesting.Rect(0, 0, 10, 10)
	}))

	for _, tc := range []struct {
		name      string
		args      []string
		maxExtent int
		want      int
	}{
		{"no args", nil, sheet.DefaultMaxExtent, exitUsage},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.png"), "3"}, sheet.DefaultMaxExtent, exitError},
		{"uneven frames", []string{in, "4"}, sheet.DefaultMaxExtent, exitUsage},
		{"size limit", []string{in, "3"}, 29, exitSizeLimit},
		{"vertical size limit", []string{in, "1", "vertical"}, 9, exitSizeLimit},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			c := newCropper(buf)
			c.opts.MaxExtent = tc.maxExtent
			c.output = filepath.Join(t.TempDir(), "out.png")
			if got := c.run(context.Background(), tc.args); got != tc.want {
				t.Errorf("run = %d; want %d\n%s", got, tc.want, buf.String())
			}
			if _, err := os.Stat(c.output); !os.IsNotExist(err) {
				t.Errorf("output written on failure: %v", err)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	buf := &bytes.Buffer{}
	usage(buf)
	if !strings.Contains(buf.String(), "usage: spritecrop") {
		t.Errorf("usage lacks synopsis:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "-max_extent") {
		t.Errorf("usage lacks flags:\n%s", buf.String())
	}
}
