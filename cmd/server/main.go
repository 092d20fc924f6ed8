// mrogue-server hosts the simulation over SSH. Every connection gets its own
// world and its own player. Build:
//
//	go build -o mrogue-server ./cmd/server
//
// Usage:
//
//	./mrogue-server [--port 2222] [--key server_host_key] [--config mrogue.yaml]
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
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"mrogue/internal/config"
	"mrogue/internal/game"
	"mrogue/internal/logger"
	internalssh "mrogue/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	maxSessions := flag.Int("max-sessions", 8, "Maximum concurrent sessions")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	out, err := logOutput(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
	log := logger.Log.WithField("component", "server")
	for _, w := range cfg.Validate() {
		log.Warn(w)
	}

	runs, err := game.OpenRunLogStore("mrogue-server")
	if err != nil {
		log.WithError(err).Warn("run history disabled")
	}
	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}

	h := newHost(cfg, runs, *maxSessions)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication. Add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.WithFields(logrus.Fields{"port": *port, "max_sessions": *maxSessions}).Info("listening")
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// logOutput picks stderr when no log file is configured; the server has no
// terminal of its own to protect.
func logOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// ─── sessions ───────────────────────────────────────────────────────────────

// session is one connected player.
type session struct {
	id   string
	name string
	term string
}

// host tracks live sessions and runs one game per connection.
type host struct {
	cfg  config.Config
	runs *game.RunLogStore
	max  int

	mu       deadlock.Mutex
	sessions map[string]*session
}

func newHost(cfg config.Config, runs *game.RunLogStore, limit int) *host {
	return &host{
		cfg:      cfg,
		runs:     runs,
		max:      limit,
		sessions: make(map[string]*session),
	}
}

// admit registers a session, or returns false when the host is full.
func (h *host) admit(s *session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.max > 0 && len(h.sessions) >= h.max {
		return false
	}
	h.sessions[s.id] = s
	return true
}

func (h *host) leave(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// count returns the number of live sessions.
func (h *host) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	sess := &session{
		id:   uuid.NewString(),
		name: sanitizeName(s.User()),
		term: sessionTerm(s.Environ()),
	}
	log := logger.Log.WithFields(logrus.Fields{
		"component": "server",
		"session":   sess.id,
		"user":      sess.name,
		"remote":    s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if !h.admit(sess) {
		fmt.Fprintln(s, "The server is full, try again later.")
		log.Warn("session rejected: server full")
		return
	}
	defer h.leave(sess.id)

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sess.term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.WithError(err).Warn("terminal setup failed")
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.WithError(err).Warn("screen init failed")
		return
	}

	log.WithField("sessions", h.count()).Info("session started")
	run := game.NewWithScreen(screen, h.cfg, h.runs).Run()
	log.WithFields(logrus.Fields{
		"ticks":  run.Ticks,
		"rounds": run.Rounds,
		"seen":   run.TilesSeen,
	}).Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu deadlock.Mutex

// allowedTerms lists TERM values with terminfo entries tcell can use. Anything
// else falls back to xterm-256color rather than reaching the environment.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// sessionTerm returns the client's TERM if it is allowed.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// maxNameBytes bounds a sanitized user name.
const maxNameBytes = 16

// sanitizeName drops control characters from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	log := logger.Log.WithFields(logrus.Fields{"component": "server", "path": path})
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key")
			return signer, nil
		}
	}

	log.Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "mrogue server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.WithError(err).Warn("host key not saved")
		}
	}
	return signer, nil
}
