// Package tui is the terminal front end: a status bar, a minimap of visited
// cells, a scrolling message log and the numbered options of the current
// prompt. The same loop serves the local terminal and SSH sessions.
package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"text-rpg/internal/game"
)

// MaxMessages caps the message log.
const MaxMessages = 50

// Access runs fn with exclusive access to the game behind the UI.
type Access func(fn func(g *game.Game)) error

// Local wraps a game owned by a single goroutine.
func Local(g *game.Game) Access {
	return func(fn func(*game.Game)) error {
		fn(g)
		return nil
	}
}

// Options configures a UI.
type Options struct {
	// Name is shown in the greeting line.
	Name   string
	Logger *slog.Logger
}

// UI drives one game on one screen.
type UI struct {
	screen   tcell.Screen
	renderer *Renderer
	access   Access
	logger   *slog.Logger

	frame    frame
	messages []string
}

// New builds a UI. Call Run to start it.
func New(screen tcell.Screen, access Access, opts Options) *UI {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	u := &UI{
		screen:   screen,
		renderer: NewRenderer(screen),
		access:   access,
		logger:   opts.Logger,
	}
	if opts.Name != "" {
		u.AddMessage("Welcome, " + opts.Name + ".")
	}
	return u
}

// AddMessage appends msg to the log, one entry per line, dropping the
// oldest entries past MaxMessages.
func (u *UI) AddMessage(msg string) {
	for _, line := range strings.Split(msg, "\n") {
		if line == "" {
			continue
		}
		u.messages = append(u.messages, line)
	}
	if over := len(u.messages) - MaxMessages; over > 0 {
		u.messages = u.messages[over:]
	}
}

// Messages returns the current log.
func (u *UI) Messages() []string { return u.messages }

// Run blocks until the player quits, the game ends, or the screen closes.
func (u *UI) Run() error {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	if err := u.refresh(current, true); err != nil {
		return err
	}
	for {
		u.draw()
		if u.frame.resp.Event == game.EventGameOver {
			waitKey(eventCh)
			return nil
		}
		ev, ok := <-eventCh
		if !ok {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			if err := u.refresh(current, false); err != nil {
				return err
			}
		case *tcell.EventKey:
			if isQuitKey(ev) {
				if !confirmQuit(u.screen, eventCh) {
					continue
				}
				return u.refresh(func(g *game.Game) game.Response { return g.Quit() }, false)
			}
			choice, ok := keyToChoice(ev)
			if !ok || !u.accepts(choice) {
				continue
			}
			err := u.refresh(func(g *game.Game) game.Response {
				return g.Handle(g.Event(), choice)
			}, true)
			if err != nil {
				return err
			}
		}
	}
}

func current(g *game.Game) game.Response { return g.Current() }

// refresh applies step to the game and takes a new frame. When logMsg is
// set the response message is added to the log.
func (u *UI) refresh(step func(g *game.Game) game.Response, logMsg bool) error {
	var f frame
	err := u.access(func(g *game.Game) {
		resp := step(g)
		u.renderer.Layout(len(resp.Options))
		f = snapshot(g, u.renderer.Camera())
	})
	if err != nil {
		u.logger.Warn("session lost", "err", err)
		return err
	}
	if logMsg {
		u.AddMessage(f.resp.Message)
	}
	u.frame = f
	return nil
}

func (u *UI) draw() { u.renderer.Draw(u.frame, u.messages) }

// accepts reports whether a digit should reach the game. The death prompt
// takes any digit so that a stray key falls back to restarting.
func (u *UI) accepts(choice int) bool {
	if u.frame.resp.Event == game.EventDeath {
		return true
	}
	return choice <= len(u.frame.resp.Options)
}

// keyToChoice maps the digit keys 1-9 to option numbers.
func keyToChoice(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

// confirmQuit shows a "Really quit? (y/n)" prompt. Returns true if confirmed.
func confirmQuit(screen tcell.Screen, eventCh <-chan tcell.Event) bool {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for {
		drawBox(screen, []string{"Really quit? (y/n)"}, style)
		ev, ok := <-eventCh
		if !ok {
			return true // disconnected
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}

// waitKey blocks until any key is pressed or the screen closes.
func waitKey(eventCh <-chan tcell.Event) {
	for ev := range eventCh {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}
