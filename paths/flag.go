package paths

import (
	"flag"
)

// SetupOutputFlag creates a new string flag with the passed name holding an
// explicit output path. Resolve falls back to Cropped when it is left empty.
func SetupOutputFlag(flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, "", "Path to write the repacked sheet to (default: <input>"+CroppedSuffix+".png)")
}

// Resolve returns output if set, or the derived path for input otherwise.
func Resolve(input, output string) string {
	if output != "" {
		return output
	}
	return Cropped(input)
}
