// Package paths derives where repacked sheets get written.
package paths

import (
	"path/filepath"
	"strings"
)

// CroppedSuffix is appended to a sheet's name to form its output name.
const CroppedSuffix = "_cropped"

// Cropped returns the path the repacked version of the sheet at input is
// written to: the same directory, the same name with CroppedSuffix
// appended, and a .png extension.
//
// Only the final extension is replaced, so "walk.png.bak" becomes
// "walk.png_cropped.png" and "walk" becomes "walk_cropped.png".
func Cropped(input string) string {
	dir, base := filepath.Split(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles such as ".png" have no stem worth keeping apart from the name.
		stem = base
	}
	return filepath.Join(dir, stem+CroppedSuffix+".png")
}
