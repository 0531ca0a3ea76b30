// Package ssh adapts an SSH session channel into a terminal tcell can drive.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Fallback size for clients that report a zero-sized window.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// SessionTty implements tcell.Tty on top of one SSH session channel.
// Each connected client gets its own SessionTty → tcell.Screen pair, and
// therefore its own arena.
type SessionTty struct {
	conn  io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell

	watchOnce sync.Once
	closeOnce sync.Once
	closeErr  error
}

// NewSessionTty wraps an SSH session (anything that reads keystrokes and
// writes output) as a tcell Tty. win is the size from the PTY request;
// winCh delivers later window-change requests.
func NewSessionTty(conn io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{conn: conn, window: win, winCh: winCh}
}

// Read reads keyboard input from the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.conn.Read(b) }

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.conn.Write(b) }

// Close closes the session channel. Later calls return the first result.
func (t *SessionTty) Close() error {
	t.closeOnce.Do(func() { t.closeErr = t.conn.Close() })
	return t.closeErr
}

// Start is a no-op; the channel is open before the screen exists.
func (t *SessionTty) Start() error { return nil }

// Stop unregisters the resize callback. The channel itself is closed by the
// session handler.
func (t *SessionTty) Stop() error {
	t.mu.Lock()
	t.cb = nil
	t.mu.Unlock()
	return nil
}

// Drain is a no-op; writes go straight to the channel.
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

// NotifyResize registers cb for window changes, replacing any earlier
// callback. The first call starts draining the window-change channel for the
// lifetime of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watchOnce.Do(func() {
		go t.watch()
	})
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.cb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
