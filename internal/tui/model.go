package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/field"
)

var Log = logrus.New()

type screen int

const (
	screenSetup screen = iota
	screenPlaying
	screenOver
)

// Initial cursor position, clamped to the field.
const startX, startY = 2, 8

type Options struct {
	// Defaults pre-fills the setup prompts.
	Defaults *field.Params

	// Source returns the mine placement source for a new game. Nil uses
	// a time-seeded one.
	Source func() field.Source
	Now    func() time.Time
}

// Model is the bubbletea model driving one terminal session. Every game
// gets a fresh [field.Field]; the model only reads it to draw.
type Model struct {
	opts   Options
	screen screen
	setup  setupForm
	err    error

	field            *field.Field
	cursorX, cursorY int
	won, lost        bool
	started          time.Time
	elapsed          time.Duration
	answer           rune
}

func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Model{
		opts:  opts,
		setup: newSetupForm(opts.Defaults),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("minesweeper")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.screen {
	case screenSetup:
		return m.updateSetup(key)
	case screenPlaying:
		return m.updatePlaying(key)
	case screenOver:
		return m.updateOver(key)
	}
	return m, nil
}

func (m Model) updateSetup(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEsc {
		return m, tea.Quit
	}
	if !m.setup.update(key) {
		return m, nil
	}

	p, err := m.setup.params()
	if err == nil {
		err = m.startGame(p)
	}
	if err != nil {
		Log.WithError(err).WithField("params", p.Seed()).Warn("rejected field params")
		m.err = err
		m.setup = newSetupForm(m.opts.Defaults)
	}
	return m, nil
}

func (m *Model) startGame(p field.Params) error {
	var src field.Source
	if m.opts.Source != nil {
		src = m.opts.Source()
	}
	f, err := p.New(src)
	if err != nil {
		return err
	}
	*m = Model{
		opts:    m.opts,
		screen:  screenPlaying,
		field:   f,
		cursorX: clamp(startX, 0, f.Width()-1),
		cursorY: clamp(startY, 0, f.Height()-1),
		started: m.opts.Now(),
	}
	Log.WithField("params", p.Seed()).Info("new game")
	return nil
}

func (m Model) updatePlaying(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := parseKey(key)
	f := m.field

	m.cursorX = clamp(m.cursorX+cmd.dx, 0, f.Width()-1)
	m.cursorY = clamp(m.cursorY+cmd.dy, 0, f.Height()-1)

	var (
		mine bool
		err  error
	)
	switch cmd.action {
	case actOpen:
		mine, err = f.Open(m.cursorX, m.cursorY)
	case actChord:
		mine, err = f.AutoOpen(m.cursorX, m.cursorY)
	case actFlag:
		err = f.Flag(m.cursorX, m.cursorY)
	case actExit:
		return m, tea.Quit
	}
	if err != nil {
		// the cursor is clamped, so this is a bug rather than bad input
		Log.WithError(err).Error("field operation failed")
		return m, tea.Quit
	}

	switch {
	case mine:
		m.lost = true
		f.OpenAll()
	case field.Solved(f):
		m.won = true
		m.elapsed = m.opts.Now().Sub(m.started)
	default:
		return m, nil
	}

	m.screen = screenOver
	Log.WithFields(logrus.Fields{
		"won":     m.won,
		"params":  f.Params().Seed(),
		"elapsed": m.opts.Now().Sub(m.started).String(),
	}).Info("game over")
	Log.Debug("\n" + f.String())
	return m, nil
}

func (m Model) updateOver(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.answer != 'y' && m.answer != 'Y' {
			return m, tea.Quit
		}
		return New(m.opts), nil
	case tea.KeySpace:
		m.answer = ' '
	case tea.KeyRunes:
		if len(key.Runes) > 0 {
			m.answer = key.Runes[len(key.Runes)-1]
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	switch m.screen {
	case screenSetup:
		if m.err != nil {
			fmt.Fprintf(&b, "%s\n", m.err)
		}
		b.WriteString(m.setup.view())
	case screenPlaying:
		b.WriteString(boardView(m.field, m.cursorX, m.cursorY))
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"mines %d  flags %d", m.field.MineCount(), m.field.FlagCount(),
		)))
	case screenOver:
		b.WriteString(boardView(m.field, -1, -1))
		message := "You lose!"
		if m.won {
			message = "You won!"
		}
		b.WriteString(centered(messageStyle.Render(message), m.field.Width()))
		if m.won {
			fmt.Fprintf(&b, "\nYour time is %d sec", int(m.elapsed.Seconds()))
		}
		b.WriteString("\nDo you want to try again? (y/N): ")
		if m.answer != 0 {
			b.WriteRune(m.answer)
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
