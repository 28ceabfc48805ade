//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Probe reports whether f is a terminal and its size in cells
func Probe(f *os.File) (isTerm bool, width, height int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, 0, 0
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return true, 0, 0
	}
	return true, w, h
}

func resetTerminalMode() {}
