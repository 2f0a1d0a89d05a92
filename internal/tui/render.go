package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-tui/internal/field"
)

// Palette for adjacency counts 1 to 7; 8 uses the terminal default.
var countColors = []lipgloss.Color{
	1: "#4c4ce5",
	2: "#4c994c",
	3: "#e54c4c",
	4: "#4c4c99",
	5: "#994c4c",
	6: "#4c9999",
	7: "#e54c4c",
}

var (
	red   = lipgloss.Color("1")
	black = lipgloss.Color("0")

	openStyle    = lipgloss.NewStyle().Bold(true)
	mistakeStyle = openStyle.Foreground(black).Background(red)
	closedStyle  = lipgloss.NewStyle().Reverse(true)
	flagStyle    = closedStyle.Foreground(red)
	messageStyle = lipgloss.NewStyle().Bold(true).Blink(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
)

func glyph(c field.Cell) (string, lipgloss.Style) {
	switch {
	case c.Open && c.Mine:
		return "X", mistakeStyle
	case c.Open && c.Flagged:
		return "!", mistakeStyle
	case c.Open && c.Adjacent > 0:
		st := openStyle
		if c.Adjacent < len(countColors) {
			st = st.Foreground(countColors[c.Adjacent])
		}
		return strconv.Itoa(c.Adjacent), st
	case c.Open:
		return " ", openStyle
	case c.Flagged:
		return ">", flagStyle
	default:
		return ".", closedStyle
	}
}

// cellView draws one cell three columns wide.
func cellView(c field.Cell, cursor bool) string {
	g, st := glyph(c)
	if cursor {
		st = st.Underline(true)
	}
	return st.Render(" " + g + " ")
}

// boardView draws the field with the highest row on top. A cursor outside
// the field is not drawn.
func boardView(f *field.Field, cx, cy int) string {
	var b strings.Builder
	for y := f.Height() - 1; y >= 0; y-- {
		for x := range f.Width() {
			c, err := f.Cell(x, y)
			if err != nil {
				Log.WithError(err).Error("render")
				continue
			}
			b.WriteString(cellView(c, x == cx && y == cy))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// centered pads s to sit in the middle of a board w cells wide.
func centered(s string, w int) string {
	return lipgloss.PlaceHorizontal(w*3, lipgloss.Center, s)
}
