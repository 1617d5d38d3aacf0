// Package input reads single key presses from a raw-mode terminal and maps
// them to browsing actions.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Key codes returned for non-printable keys
const (
	KeyArrowUp    = "arrow_up"
	KeyArrowDown  = "arrow_down"
	KeyArrowLeft  = "arrow_left"
	KeyArrowRight = "arrow_right"
	KeyEnter      = "enter"
	KeyEscape     = "escape"
	KeyCtrlC      = "ctrl_c"
)

// The reader outlives a single ReadKey so type-ahead keys are kept
var (
	reader     *bufio.Reader
	readerFile *os.File
)

func bufferFor(f *os.File) *bufio.Reader {
	if reader == nil || readerFile != f {
		reader = bufio.NewReaderSize(f, 16)
		readerFile = f
	}
	return reader
}

// ReadKey puts f into raw mode, reads one key press and restores the
// terminal. Printable keys are returned as themselves.
func ReadKey(f *os.File) (string, error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return DecodeKey(bufferFor(f))
}

// buffered is implemented by readers that can report pending bytes
type buffered interface {
	Buffered() int
}

// DecodeKey reads one key press from r. Arrow keys arrive as CSI (ESC [)
// or SS3 (ESC O) sequences; any other escape sequence is reported as escape.
// An escape sequence arrives in a single read, so when r reports nothing
// buffered after ESC the key is a bare escape and r is not read again.
func DecodeKey(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b1 {
	case 3:
		return KeyCtrlC, nil
	case '\n', '\r':
		return KeyEnter, nil
	case 0x1b:
		return decodeEscape(r)
	}

	if b1 >= 32 && b1 < 127 {
		return string(rune(b1)), nil
	}
	return "", nil
}

func decodeEscape(r io.ByteReader) (string, error) {
	if b, ok := r.(buffered); ok && b.Buffered() == 0 {
		return KeyEscape, nil
	}

	b2, err := r.ReadByte()
	if err == io.EOF {
		return KeyEscape, nil
	}
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return KeyEscape, nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return KeyEscape, nil
	}
	switch b3 {
	case 'A':
		return KeyArrowUp, nil
	case 'B':
		return KeyArrowDown, nil
	case 'C':
		return KeyArrowRight, nil
	case 'D':
		return KeyArrowLeft, nil
	}
	// Unknown escape sequence - discard it
	return KeyEscape, nil
}
