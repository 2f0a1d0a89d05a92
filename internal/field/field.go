package field

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Source picks mine positions. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

type Cell struct {
	Mine     bool
	Adjacent int
	Open     bool
	Flagged  bool
}

type Field struct {
	cells         []Cell // row-major, y*width + x
	width, height int
	mineCount     int
	flagCount     int
	openedCount   int
	generated     bool
	src           Source
}

// New allocates a closed width x height field. Mines are not placed until
// the first [Field.Open]. A nil src selects a time-seeded generator.
func New(width, height, mineCount int, src Source) (*Field, error) {
	p := Params{Width: width, Height: height, MineCount: mineCount}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewRand()
	}
	return &Field{
		cells:     make([]Cell, width*height),
		width:     width,
		height:    height,
		mineCount: mineCount,
		src:       src,
	}, nil
}

func (f *Field) Width() int       { return f.width }
func (f *Field) Height() int      { return f.height }
func (f *Field) MineCount() int   { return f.mineCount }
func (f *Field) FlagCount() int   { return f.flagCount }
func (f *Field) OpenedCount() int { return f.openedCount }
func (f *Field) Generated() bool  { return f.generated }

func (f *Field) Params() Params {
	return Params{Width: f.width, Height: f.height, MineCount: f.mineCount}
}

func (f *Field) Contains(x, y int) bool {
	return 0 <= x && x < f.width && 0 <= y && y < f.height
}

func (f *Field) index(x, y int) (int, error) {
	if !f.Contains(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: f.width, Height: f.height}
	}
	return y*f.width + x, nil
}

func (f *Field) Cell(x, y int) (Cell, error) {
	i, err := f.index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return f.cells[i], nil
}

// neighbours calls fn for every cell of the 3x3 block centred on x:y,
// clipped to the field, including x:y itself.
func (f *Field) neighbours(x, y int, fn func(xx, yy int) bool) {
	for yy := max(y-1, 0); yy < min(y+2, f.height); yy++ {
		for xx := max(x-1, 0); xx < min(x+2, f.width); xx++ {
			if !fn(xx, yy) {
				return
			}
		}
	}
}

// CheckBombs recounts the mines around x:y and stores the result. The cell
// itself is not counted.
func (f *Field) CheckBombs(x, y int) error {
	i, err := f.index(x, y)
	if err != nil {
		return err
	}
	n := 0
	f.neighbours(x, y, func(xx, yy int) bool {
		if (xx != x || yy != y) && f.cells[yy*f.width+xx].Mine {
			n++
		}
		return true
	})
	f.cells[i].Adjacent = n
	return nil
}

// generate places the mines. A candidate sharing either the row or the
// column of the first opened cell is rejected; this keeps the behaviour of
// earlier releases, where the whole cross rather than the single cell stays
// mine-free.
func (f *Field) generate(noX, noY int) {
	placed := 0
	for placed < f.mineCount {
		x := f.src.IntN(f.width)
		y := f.src.IntN(f.height)
		c := &f.cells[y*f.width+x]
		if !c.Mine && x != noX && y != noY {
			c.Mine = true
			placed++
		}
	}
	f.recount()
	f.generated = true

	Log.WithFields(logrus.Fields{
		"params": f.Params().Seed(),
		"startX": noX,
		"startY": noY,
	}).Debug("mines placed")
}

func (f *Field) recount() {
	for y := range f.height {
		for x := range f.width {
			f.CheckBombs(x, y)
		}
	}
}

// Open reveals x:y and reports whether a mine was hit. Cells with no
// adjacent mines open their closed, unflagged neighbours as well.
//
// Opening a flagged cell clears the flag but leaves [Field.FlagCount]
// untouched.
func (f *Field) Open(x, y int) (bool, error) {
	i, err := f.index(x, y)
	if err != nil {
		return false, err
	}
	if !f.generated {
		f.generate(x, y)
	}
	if f.cells[i].Open {
		return false, nil
	}
	f.reveal(i)
	if f.cells[i].Mine {
		return true, nil
	}
	if f.cells[i].Adjacent != 0 {
		return false, nil
	}
	return f.flood(x, y), nil
}

func (f *Field) reveal(i int) {
	f.openedCount++
	f.cells[i].Open = true
	f.cells[i].Flagged = false
}

// flood opens the empty region around x:y. A mine uncovered on the way is
// reported, but does not stop the fill.
func (f *Field) flood(x, y int) (mine bool) {
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.neighbours(top[0], top[1], func(xx, yy int) bool {
			c := &f.cells[yy*f.width+xx]
			if c.Open || c.Flagged {
				return true
			}
			f.reveal(yy*f.width + xx)
			if c.Mine {
				mine = true
				Log.WithFields(logrus.Fields{
					"x": xx, "y": yy,
				}).Warn("flood fill uncovered a mine")
				return true
			}
			if c.Adjacent == 0 {
				stack = append(stack, [2]int{xx, yy})
			}
			return true
		})
	}
	return mine
}

func (f *Field) Flag(x, y int) error {
	i, err := f.index(x, y)
	if err != nil {
		return err
	}
	c := &f.cells[i]
	if c.Open {
		return nil
	}
	if c.Flagged {
		f.flagCount--
	} else {
		f.flagCount++
	}
	c.Flagged = !c.Flagged
	return nil
}

// AutoOpen chords on an open cell: once at least as many neighbours are
// flagged as the cell has adjacent mines, every unflagged neighbour is opened.
func (f *Field) AutoOpen(x, y int) (bool, error) {
	i, err := f.index(x, y)
	if err != nil {
		return false, err
	}
	c := f.cells[i]
	if !c.Open {
		return false, nil
	}
	flagged := 0
	f.neighbours(x, y, func(xx, yy int) bool {
		if f.cells[yy*f.width+xx].Flagged {
			flagged++
		}
		return true
	})
	if flagged < c.Adjacent {
		return false, nil
	}
	var mine bool
	f.neighbours(x, y, func(xx, yy int) bool {
		if f.cells[yy*f.width+xx].Flagged {
			return true
		}
		// in bounds by construction
		mine, _ = f.Open(xx, yy)
		return !mine
	})
	return mine, nil
}

// OpenAll exposes every mistake after a loss: mines that were not flagged and
// flags that sit on safe cells. Wrong flags stay set so they can be told
// apart from mines.
func (f *Field) OpenAll() {
	for i := range f.cells {
		c := &f.cells[i]
		if c.Mine != c.Flagged && !c.Open {
			c.Open = true
			f.openedCount++
		}
	}
}

// Solved reports whether every safe cell of f is open.
func Solved(f *Field) bool {
	return f.OpenedCount() == f.Width()*f.Height()-f.MineCount()
}
