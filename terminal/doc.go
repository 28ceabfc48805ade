// @focus: #sys { term }
// Package terminal presents finished glyph frames to a terminal.
//
// Features:
//   - Direct ANSI output over any io.Writer (local stdout or an SSH channel)
//   - tcell-backed screen as an alternative presenter
//   - Terminal probing and clean restoration on exit/panic
//
// The ANSI path bypasses terminfo/termcap entirely, emitting direct sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
