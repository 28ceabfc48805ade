package terminal

import (
	"errors"
	"io"
	"os"
)

// ErrShortFrame is returned when a frame holds fewer cells than width*height
var ErrShortFrame = errors.New("frame smaller than width*height")

// Presenter displays finished glyph frames
type Presenter interface {
	// Init prepares the output surface, clearing it once
	Init() error

	// Present paints one frame
	// Cells are row-major: cells[y*width + x]
	Present(cells []rune, width, height int) error

	// Fini restores the output surface. Safe to call multiple times
	Fini()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored in crash context
	resetTerminalMode()
}
