package tui

import (
	"fmt"
	"net/url"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-tui/internal/field"
)

const maxDigits = 5

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type prompt struct {
	key, label string
}

var prompts = []prompt{
	{"width", "Enter width: "},
	{"height", "Enter height: "},
	{"mine_count", "Enter bombs count: "},
}

// setupForm asks for the three field parameters one after another.
type setupForm struct {
	values   url.Values
	current  int
	input    []rune
	defaults url.Values
}

func newSetupForm(defaults *field.Params) setupForm {
	s := setupForm{values: url.Values{}}
	if defaults != nil {
		s.defaults = url.Values{
			"width":      {strconv.Itoa(defaults.Width)},
			"height":     {strconv.Itoa(defaults.Height)},
			"mine_count": {strconv.Itoa(defaults.MineCount)},
		}
	}
	s.prefill()
	return s
}

func (s *setupForm) prefill() {
	s.input = []rune(s.defaults.Get(prompts[s.current].key))
	if len(s.input) > maxDigits {
		s.input = s.input[:maxDigits]
	}
}

func (s setupForm) done() bool {
	return s.current == len(prompts)
}

// update feeds one key press to the form. It returns true once the last
// prompt has been submitted.
func (s *setupForm) update(msg tea.KeyMsg) bool {
	if s.done() {
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case tea.KeyEnter:
		if len(s.input) == 0 {
			break
		}
		s.values.Set(prompts[s.current].key, string(s.input))
		s.current++
		if s.done() {
			return true
		}
		s.prefill()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if '0' <= r && r <= '9' && len(s.input) < maxDigits {
				s.input = append(s.input, r)
			}
		}
	}
	return false
}

func (s setupForm) params() (field.Params, error) {
	var p field.Params
	if err := decoder.Decode(&p, s.values); err != nil {
		return p, fmt.Errorf("unable to decode field params: %w", err)
	}
	return p, nil
}

func (s setupForm) view() string {
	var out string
	for i, p := range prompts[:min(s.current+1, len(prompts))] {
		if i < s.current {
			out += p.label + s.values.Get(p.key) + "\n"
		} else {
			out += p.label + string(s.input)
		}
	}
	return out
}
