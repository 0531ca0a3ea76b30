// fps-arena-server serves the arena over SSH. Every connection gets its own
// independent match. Build:
//
//	go build -o fps-arena-server ./cmd/server
//
// Usage:
//
//	./fps-arena-server [--port 2222] [--key server_host_key] [--enemies 5] [--log server.log]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	mrand "math/rand"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"fps-arena/internal/config"
	"fps-arena/internal/game"
	"fps-arena/internal/logging"
	internalssh "fps-arena/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	logPath := flag.String("log", "", "write per-session debug logs to this file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, closeLog, err := logging.Open(*logPath, slog.LevelDebug)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog() //nolint:errcheck

	signer := loadOrCreateHostKey(*keyFile)
	h := &host{cfg: cfg, logger: logger}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("fps-arena SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// host runs one match per SSH session. Sessions share nothing but the
// configuration and the log sink.
type host struct {
	cfg      config.Config
	logger   *slog.Logger
	sessions atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the match so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	n := h.sessions.Add(1)
	user := sanitizeName(s.User())
	logger := h.logger.With("session", n, "user", user)

	term := sessionTerm(s.Environ())

	// Create a tcell screen backed by this SSH session.
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty.Window, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()
	screen.EnableMouse()

	seed := time.Now().UnixNano() + n
	g, err := game.New(screen, h.cfg, mrand.New(mrand.NewSource(seed)), logger)
	if err != nil {
		log.Printf("session %d: %v", n, err)
		return
	}
	log.Printf("session %d: %s connected (TERM=%s)", n, user, term)
	logger.Info("match started", "seed", seed)
	g.Run()
	log.Printf("session %d: %s left", n, user)
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// allowedTerms are the TERM values passed through to terminfo. Anything else
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the client's TERM from its environment if it is known.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return defaultTerm
}

// maxNameBytes caps user names in logs.
const maxNameBytes = 16

// sanitizeName strips control characters and cuts the name to at most
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	signer, block, err := newHostKey()
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if block != nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(block), 0600)
	}
	return signer
}

// newHostKey generates an ed25519 signer and its PEM block.
func newHostKey() (gossh.Signer, *pem.Block, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "fps-arena server")
	if err != nil {
		return signer, nil, nil
	}
	return signer, block, nil
}
