package imageprint

import (
	"fmt"
	"image"
	"io"
)

// PrintRasTerm falls back to 24bit ascii art, as rasterm is not supported
// on windows.
func PrintRasTerm(w io.Writer, i image.Image) error {
	fmt.Fprintf(w, "rasterm not supported on windows\n")
	Print24bit(w, i, true)
	return nil
}
