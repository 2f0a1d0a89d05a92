package field

import (
	"fmt"
	"strconv"
	"strings"
)

func (c Cell) String() string {
	switch {
	case c.Open && c.Mine:
		return "X"
	case c.Open && c.Flagged:
		return "!"
	case c.Open:
		return strconv.Itoa(c.Adjacent)
	case c.Flagged:
		return ">"
	case c.Mine:
		return "*"
	default:
		return "."
	}
}

// String dumps the field top row first, the way it is drawn on screen. Hidden
// mines are shown as '*'; meant for logs and test output.
func (f *Field) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s opened=%d flags=%d\n",
		f.Params().Seed(), f.openedCount, f.flagCount)
	for y := f.height - 1; y >= 0; y-- {
		for x := range f.width {
			fmt.Fprint(&b, f.cells[y*f.width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
