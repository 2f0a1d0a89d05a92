package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actNone action = iota
	actMove
	actOpen
	actChord
	actFlag
	actExit
)

const (
	step    = 1
	bigStep = 4
)

type command struct {
	action action
	dx, dy int
}

// parseKey maps a key press on the board. Lowercase wasd moves by one cell,
// uppercase by four; y grows upwards.
func parseKey(msg tea.KeyMsg) command {
	switch msg.Type {
	case tea.KeyUp:
		return command{action: actMove, dy: step}
	case tea.KeyDown:
		return command{action: actMove, dy: -step}
	case tea.KeyRight:
		return command{action: actMove, dx: step}
	case tea.KeyLeft:
		return command{action: actMove, dx: -step}
	case tea.KeySpace:
		return command{action: actOpen}
	case tea.KeyTab:
		return command{action: actFlag}
	case tea.KeyEsc, tea.KeyCtrlC:
		return command{action: actExit}
	case tea.KeyRunes:
	default:
		return command{}
	}

	if len(msg.Runes) != 1 {
		return command{}
	}
	r := msg.Runes[0]
	n := step
	if unicode.IsUpper(r) {
		n = bigStep
	}
	switch unicode.ToLower(r) {
	case 'w':
		return command{action: actMove, dy: n}
	case 's':
		return command{action: actMove, dy: -n}
	case 'd':
		return command{action: actMove, dx: n}
	case 'a':
		return command{action: actMove, dx: -n}
	case ' ':
		return command{action: actOpen}
	case 'e':
		return command{action: actChord}
	case 'f':
		return command{action: actFlag}
	}
	return command{}
}
