package ssh

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// fakeConn records output and counts Close calls.
type fakeConn struct {
	in     io.Reader
	out    bytes.Buffer
	closed int
}

func (c *fakeConn) Read(b []byte) (int, error)  { return c.in.Read(b) }
func (c *fakeConn) Write(b []byte) (int, error) { return c.out.Write(b) }
func (c *fakeConn) Close() error                { c.closed++; return nil }

var _ tcell.Tty = (*SessionTty)(nil)

func TestWindowSize(t *testing.T) {
	cases := []struct {
		name string
		win  gossh.Window
		w, h int
	}{
		{"reported size", gossh.Window{Width: 120, Height: 40}, 120, 40},
		{"zero size falls back", gossh.Window{}, 80, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tty := NewSessionTty(&fakeConn{in: bytes.NewReader(nil)}, tc.win, nil)
			ws, err := tty.WindowSize()
			if err != nil {
				t.Fatalf("WindowSize: %v", err)
			}
			if ws.Width != tc.w || ws.Height != tc.h {
				t.Errorf("WindowSize = %dx%d, want %dx%d", ws.Width, ws.Height, tc.w, tc.h)
			}
		})
	}
}

func TestReadWritePassThrough(t *testing.T) {
	conn := &fakeConn{in: bytes.NewReader([]byte("w"))}
	tty := NewSessionTty(conn, gossh.Window{Width: 80, Height: 24}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	if err != nil || string(buf[:n]) != "w" {
		t.Fatalf("Read = %q, %v", buf[:n], err)
	}
	if _, err := tty.Write([]byte("frame")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if conn.out.String() != "frame" {
		t.Errorf("client saw %q", conn.out.String())
	}
}

func TestCloseOnce(t *testing.T) {
	conn := &fakeConn{in: bytes.NewReader(nil)}
	tty := NewSessionTty(conn, gossh.Window{}, nil)
	tty.Close()
	tty.Close()
	if conn.closed != 1 {
		t.Fatalf("Close reached the channel %d times, want 1", conn.closed)
	}
}

func TestResizeNotifiesLatestCallback(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewSessionTty(&fakeConn{in: bytes.NewReader(nil)}, gossh.Window{Width: 80, Height: 24}, winCh)

	stale := make(chan struct{}, 4)
	fresh := make(chan struct{}, 4)
	tty.NotifyResize(func() { stale <- struct{}{} })
	tty.NotifyResize(func() { fresh <- struct{}{} })

	winCh <- gossh.Window{Width: 100, Height: 30}

	select {
	case <-fresh:
	case <-time.After(time.Second):
		t.Fatal("resize callback not called")
	}
	if len(stale) != 0 {
		t.Error("replaced callback was still called")
	}
	if ws, _ := tty.WindowSize(); ws.Width != 100 || ws.Height != 30 {
		t.Errorf("size after resize = %dx%d, want 100x30", ws.Width, ws.Height)
	}

	tty.Stop()
	winCh <- gossh.Window{Width: 90, Height: 20}
	close(winCh)
	select {
	case <-fresh:
		t.Error("callback called after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
