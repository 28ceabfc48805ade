package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"github.com/gliderlabs/ssh"

	"github.com/lixenwraith/spin-cube/constant"
	"github.com/lixenwraith/spin-cube/render"
	"github.com/lixenwraith/spin-cube/terminal"
)

// Bytes a PTY client sends for its interrupt and EOF keys
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// SSHServer serves the spinning cube to every PTY session
// Each session owns an independent Renderer; nothing is shared between sessions
type SSHServer struct {
	addr    string
	hostKey string
	server  *ssh.Server
	active  atomic.Int64
}

// NewSSHServer creates a new SSH server bound to the given address
func NewSSHServer(addr string, hostKey string) *SSHServer {
	s := &SSHServer{
		addr:    addr,
		hostKey: hostKey,
	}
	s.server = &ssh.Server{
		Addr:    addr,
		Handler: s.handleSession,
	}
	return s
}

// Start begins listening for SSH connections and blocks until Close
func (s *SSHServer) Start() error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(l)
}

// Serve accepts connections on l and blocks until Close
func (s *SSHServer) Serve(l net.Listener) error {
	if err := s.server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		l.Close()
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", l.Addr())
	if err := s.server.Serve(l); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Close stops the listener and drops open sessions
func (s *SSHServer) Close() error {
	return s.server.Close()
}

// Active returns the number of sessions currently rendering
func (s *SSHServer) Active() int64 {
	return s.active.Load()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		sess.Exit(1)
		return
	}

	user := sess.User()
	if user == "" {
		user = "anonymous"
	}
	if ptyReq.Window.Width < constant.ScreenWidth || ptyReq.Window.Height < constant.ScreenHeight {
		log.Printf("session %s: window %dx%d is smaller than the %dx%d frame",
			user, ptyReq.Window.Width, ptyReq.Window.Height, constant.ScreenWidth, constant.ScreenHeight)
	}

	s.active.Add(1)
	log.Printf("session opened: %s from %s", user, sess.RemoteAddr())
	defer func() {
		s.active.Add(-1)
		log.Printf("session closed: %s", user)
	}()

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	// The frame is fixed-size; window changes are drained and ignored
	go func() {
		for range winCh {
		}
	}()

	// The client's PTY is raw, so its interrupt keys arrive as bytes
	go func() {
		defer cancel()
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			for _, c := range buf[:n] {
				if c == keyCtrlC || c == keyCtrlD {
					return
				}
			}
		}
	}()

	presenter := terminal.NewANSIWriter(sess)
	if err := presenter.Init(); err != nil {
		log.Printf("session %s: %v", user, err)
		return
	}
	defer presenter.Fini()

	if err := render.NewRenderer().Run(ctx, presenter, 0); err != nil {
		log.Printf("session %s: %v", user, err)
	}
}
