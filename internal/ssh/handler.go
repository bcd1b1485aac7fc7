package ssh

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"

	"text-rpg/internal/game"
	"text-rpg/internal/session"
	"text-rpg/internal/tui"
)

// maxNameBytes bounds the display name taken from the SSH user.
const maxNameBytes = 16

// defaultTerm is used when the client's TERM is missing or not allowed.
const defaultTerm = "xterm-256color"

// allowedTerms are the TERM values passed through to terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
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

// termMu serialises os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// Handler runs one game per SSH connection.
type Handler struct {
	Store *session.Store
	// NewGame builds the game for a connection.
	NewGame func() *game.Game
	Logger  *slog.Logger
}

// Serve is the gliderlabs handler for one connection. It blocks for the
// lifetime of the connection.
func (h *Handler) Serve(s gossh.Session) {
	logger := h.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game needs a terminal. Connect with: ssh -t <host>")
		return
	}

	tty := NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", clientTerm(s.Environ(), pty.Term))
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

	id, _ := h.Store.Add(h.NewGame())
	defer h.Store.Remove(id)

	name := sanitizeName(s.User())
	logger.Info("ssh session started", "id", id, "user", name, "remote", s.RemoteAddr().String())
	ui := tui.New(screen, func(fn func(*game.Game)) error {
		return h.Store.With(id, fn)
	}, tui.Options{Name: name, Logger: logger})
	if err := ui.Run(); err != nil {
		logger.Warn("ssh session ended", "id", id, "err", err)
		return
	}
	logger.Info("ssh session ended", "id", id)
}

// clientTerm picks the TERM for a client: the pty request first, then the
// session environment, falling back to defaultTerm for unknown values.
func clientTerm(environ []string, ptyTerm string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}

// sanitizeName strips control characters from an SSH user name and cuts it
// to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
