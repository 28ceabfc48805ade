package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen presents frames through a tcell.Screen
type TcellScreen struct {
	mu     sync.Mutex
	screen tcell.Screen
	style  tcell.Style

	done     chan struct{}
	doneOnce sync.Once

	initialized bool
	finalized   bool
}

// NewTcellScreen creates a presenter on the controlling terminal
func NewTcellScreen() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewTcellScreenFrom(screen), nil
}

// NewTcellScreenFrom wraps an existing screen, e.g. a simulation screen
func NewTcellScreenFrom(screen tcell.Screen) *TcellScreen {
	return &TcellScreen{
		screen: screen,
		style:  tcell.StyleDefault,
		done:   make(chan struct{}),
	}
}

// Init enters the tcell screen, hides cursor and clears once
func (t *TcellScreen) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true

	// Raw mode swallows SIGINT; the interrupt keys arrive as events instead
	go t.watchInterrupt()
	return nil
}

// Done is closed when the user presses Ctrl-C or Escape, or the screen is finalized
func (t *TcellScreen) Done() <-chan struct{} {
	return t.done
}

func (t *TcellScreen) watchInterrupt() {
	defer t.doneOnce.Do(func() { close(t.done) })

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				return
			}
		}
	}
}

// Present draws the frame at the screen origin, clipping to the screen size
func (t *TcellScreen) Present(cells []rune, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	if len(cells) < width*height {
		return fmt.Errorf("present %dx%d: %w", width, height, ErrShortFrame)
	}

	sw, sh := t.screen.Size()
	for y := 0; y < height && y < sh; y++ {
		row := cells[y*width : (y+1)*width]
		for x := 0; x < width && x < sw; x++ {
			t.screen.SetContent(x, y, row[x], nil, t.style)
		}
	}
	t.screen.Show()
	return nil
}

// Fini restores terminal state
func (t *TcellScreen) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}
