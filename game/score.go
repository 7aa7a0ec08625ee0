package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned when a glyph outside 0-9 is requested.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidNumber is returned when asked to render a negative number.
	ErrInvalidNumber = errors.New("invalid number")
)

const (
	glyphColumns = 3
	glyphRows    = 5
	// glyphPitch is the horizontal distance between digits, in font cells.
	glyphPitch = 5
)

// digitGlyphs is a 3x5 bitmap font, row-major.
var digitGlyphs = [10][glyphColumns * glyphRows]uint8{
	{1, 1, 1,
		1, 0, 1,
		1, 0, 1,
		1, 0, 1,
		1, 1, 1},
	{0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1},
	{1, 1, 1,
		0, 0, 1,
		1, 1, 1,
		1, 0, 0,
		1, 1, 1},
	{1, 1, 1,
		0, 0, 1,
		0, 1, 1,
		0, 0, 1,
		1, 1, 1},
	{1, 0, 1,
		1, 0, 1,
		1, 1, 1,
		0, 0, 1,
		0, 0, 1},
	{1, 1, 1,
		1, 0, 0,
		1, 1, 1,
		0, 0, 1,
		1, 1, 1},
	{1, 1, 1,
		1, 0, 0,
		1, 1, 1,
		1, 0, 1,
		1, 1, 1},
	{1, 1, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1},
	{1, 1, 1,
		1, 0, 1,
		1, 1, 1,
		1, 0, 1,
		1, 1, 1},
	{1, 1, 1,
		1, 0, 1,
		1, 1, 1,
		0, 0, 1,
		1, 1, 1},
}

// DrawNumber renders n in decimal with its most significant digit at
// (offsetX, offsetY). size is the edge of one font cell in pixels.
func DrawNumber(c Canvas, n, size, offsetX, offsetY int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	if n == 0 {
		return DrawDigit(c, 0, size, offsetX, offsetY)
	}

	// Digits are emitted least significant first, right to left.
	x := offsetX + (decimalDigits(n)-1)*glyphPitch*size
	for d := n; d > 0; d /= 10 {
		if err := DrawDigit(c, d%10, size, x, offsetY); err != nil {
			return err
		}
		x -= glyphPitch * size
	}
	return nil
}

// DrawDigit renders a single glyph with its top-left cell at
// (offsetX, offsetY).
func DrawDigit(c Canvas, digit, size, offsetX, offsetY int) error {
	if digit < 0 || digit > 9 {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, digit)
	}

	for i, on := range digitGlyphs[digit] {
		if on == 0 {
			continue
		}
		column, row := i%glyphColumns, i/glyphColumns
		if err := c.FillRect(offsetX+column*size, offsetY+row*size, size, size); err != nil {
			return err
		}
	}
	return nil
}

func decimalDigits(n int) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
