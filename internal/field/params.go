package field

import (
	"fmt"
	"strings"
)

// Params is the record the presentation layer keeps to request a new [Field].
type Params struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func (p Params) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// Validate rejects parameters for which mine placement cannot terminate.
//
// Placement never puts a mine in the row or the column of the first opened
// cell, so only (w-1)*(h-1) cells are ever eligible.
func (p Params) Validate() error {
	w, h, mc := p.Unpack()
	switch {
	case w <= 0 || h <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive",
			ErrInvalidConfiguration, w, h)
	case mc < 0:
		return fmt.Errorf("%w: negative mine count %d",
			ErrInvalidConfiguration, mc)
	case mc >= w*h:
		return fmt.Errorf("%w: %d mines do not fit into %d cells",
			ErrInvalidConfiguration, mc, w*h)
	case mc > (w-1)*(h-1):
		return fmt.Errorf("%w: at most %d mines can be placed on a %dx%d field",
			ErrInvalidConfiguration, (w-1)*(h-1), w, h)
	}
	return nil
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid field params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p Params) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// New builds an unplayed field from p. See [New].
func (p Params) New(src Source) (*Field, error) {
	return New(p.Width, p.Height, p.MineCount, src)
}
