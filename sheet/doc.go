// Package sheet trims transparent padding from the frames of a sprite sheet
// and repacks the trimmed frames into a new, smaller sheet.
//
// A sheet is a single image holding a strip of equally sized frames, laid
// out either in a row (Horizontal) or in a column (Vertical). Crop splits the
// sheet into its frames, finds the tightest box around each frame's
// non-transparent pixels, and pastes the trimmed frames into equally sized
// slots of a new sheet, centering each one on the cross axis.
//
// Frames which are fully transparent are kept at their original size.
package sheet
