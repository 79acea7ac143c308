package keypad

import (
	"golang.org/x/exp/constraints"
)

// Pt is a cell on a keypad grid.
type Pt = Pt2[int]

// Pt2 is a point with X growing right and Y growing down.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p moved by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Sub returns the offset from b to p.
func (p Pt2[T]) Sub(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - b.X, p.Y - b.Y}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Toward returns the point one step from p toward b on each axis where
// they differ. Keypad segments only differ on one axis.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + sign(b.X-p.X), p.Y + sign(b.Y-p.Y)}
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Grid holds one value per cell, indexed [y][x].
type Grid[T any] [][]T

// MakeGrid returns a w by h grid of zero values.
func MakeGrid[T any](w, h int) Grid[T] {
	g := make(Grid[T], h)
	for y := range g {
		g[y] = make([]T, w)
	}
	return g
}

// Set stores v at p, which must be on the grid.
func (g Grid[T]) Set(p Pt, v T) { g[p.Y][p.X] = v }

// AtOk returns the value at p and whether p is on the grid.
func (g Grid[T]) AtOk(p Pt) (v T, ok bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		return v, false
	}
	return g[p.Y][p.X], true
}

// Direction is one of the four arrows on a directional keypad.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directions lists the arrows clockwise from Up.
var directions = []Direction{Up, Right, Down, Left}

// Step returns the unit offset of d. Y grows downward.
func (d Direction) Step() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

// Symbol returns the glyph printed on the keypad button for d.
func (d Direction) Symbol() rune {
	switch d {
	case Left:
		return '<'
	case Right:
		return '>'
	case Up:
		return '^'
	case Down:
		return 'v'
	}
	return 0
}

func (d Direction) String() string {
	if r := d.Symbol(); r != 0 {
		return string(r)
	}
	return ""
}

// horizontal returns the direction moving dx along X. dx must be non-zero.
func horizontal(dx int) Direction {
	if dx < 0 {
		return Left
	}
	return Right
}

// vertical returns the direction moving dy along Y. dy must be non-zero.
func vertical(dy int) Direction {
	if dy < 0 {
		return Up
	}
	return Down
}
