package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal attached to f.
// Falls back to defaults if f is not a terminal.
func Size(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal returns true if f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MapArea returns how many map rows and columns fit on stdout after
// reserving reservedRows lines for text around the map. When stdout is not
// a terminal nothing is cropped and 0, 0 is returned.
func MapArea(reservedRows int) (rows, cols int) {
	if !IsTerminal(os.Stdout) {
		return 0, 0
	}
	width, height := Size(os.Stdout)
	rows = height - reservedRows
	if rows < 1 {
		rows = 1
	}
	return rows, width
}
