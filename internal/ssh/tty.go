package ssh

import (
	"io"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sasha-s/go-deadlock"
)

// Fallback size for clients that report a zero window.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session, so
// every SSH client drives its own tcell.Screen and its own simulation.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       deadlock.Mutex
	window   gossh.Window
	cb       func() // resize callback registered by tcell
	draining bool
	closed   bool
}

// NewSessionTty wraps a gliderlabs SSH session as a tcell Tty.
// pty holds the initial window size; winCh delivers subsequent resize events.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read reads keyboard input from the session. After Close it reports EOF.
func (t *SessionTty) Read(b []byte) (int, error) {
	if t.isClosed() {
		return 0, io.EOF
	}
	return t.session.Read(b)
}

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) {
	if t.isClosed() {
		return 0, io.ErrClosedPipe
	}
	return t.session.Write(b)
}

// Close closes the SSH channel once; later calls are no-ops.
func (t *SessionTty) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()
	return t.session.Close()
}

// Start, Stop and Drain are no-ops: the channel is opened and flushed by
// the SSH server, and the handler goroutine owns its lifetime.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.window.Width, t.window.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	return tcell.WindowSize{Width: w, Height: h}, nil
}

// NotifyResize registers a callback invoked on every window resize event.
// tcell clears it with nil when the screen is finalised. The first call
// also starts draining the window-change channel for the lifetime of the
// session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	start := !t.draining && t.winCh != nil
	t.draining = true
	t.mu.Unlock()
	if !start {
		return
	}

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}

func (t *SessionTty) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
