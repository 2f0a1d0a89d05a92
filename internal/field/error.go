package field

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid field configuration")
	ErrOutOfBounds          = errors.New("coordinates out of bounds")
)

type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell %d:%d is outside of %dx%d field", e.X, e.Y, e.Width, e.Height,
	)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
