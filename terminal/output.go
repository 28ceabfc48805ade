// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// ANSIWriter repaints whole frames with raw escape sequences
// Each frame homes the cursor and rewrites every row; scrollback is left alone
type ANSIWriter struct {
	mu     sync.Mutex
	writer *bufio.Writer

	initialized bool
	finalized   bool
	lastHeight  int
}

// NewANSIWriter creates a presenter writing to w
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{
		writer: bufio.NewWriterSize(w, 16384),
	}
}

// Init clears the screen once and hides the cursor
func (a *ANSIWriter) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	w := a.writer
	w.Write(csiClear)
	w.Write(csiHome)
	w.Write(csiCursorHide)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	a.initialized = true
	return nil
}

// Present writes cursor-home followed by height rows of width glyphs
func (a *ANSIWriter) Present(cells []rune, width, height int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return nil
	}
	if len(cells) < width*height {
		return fmt.Errorf("present %dx%d: %w", width, height, ErrShortFrame)
	}

	w := a.writer
	w.Write(csiHome)
	for y := 0; y < height; y++ {
		if y > 0 {
			w.Write(crlf)
		}
		for _, r := range cells[y*width : (y+1)*width] {
			w.WriteRune(r)
		}
	}
	a.lastHeight = height

	return w.Flush()
}

// Fini shows the cursor and parks it below the last frame
func (a *ANSIWriter) Fini() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	w := a.writer
	writeCursorPos(w, 0, a.lastHeight)
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(crlf)
	w.Flush()

	a.finalized = true
}
