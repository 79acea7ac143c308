package keypad

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Button is an index into a layout's button list.
type Button int

// NoButton marks the gap cell.
const NoButton Button = -1

const (
	gapSymbol     = ' '
	confirmSymbol = 'A'
)

// Layout is an immutable keypad: buttons placed on a grid with exactly one
// gap cell. Y grows downward.
type Layout struct {
	name    string
	symbols []rune
	index   map[rune]Button
	pos     []Pt
	cells   Grid[Button]
	gap     Pt
	confirm Button
}

var (
	// Numeric is the door keypad.
	//
	//	789
	//	456
	//	123
	//	 0A
	Numeric = MustGet(NewLayout("numeric", "0123456789A", "789", "456", "123", " 0A"))

	// Directional is the robot control keypad.
	//
	//	 ^A
	//	<v>
	Directional = MustGet(NewLayout("directional", "^<v>A", " ^A", "<v>"))
)

// NewLayout builds a layout from picture rows. symbols lists every button
// once and fixes its Button index; a space in rows marks the gap. The
// confirm symbol 'A' must be among the buttons.
func NewLayout(name, symbols string, rows ...string) (*Layout, error) {
	l := &Layout{
		name:    name,
		symbols: []rune(symbols),
		index:   make(map[rune]Button, len(symbols)),
	}
	for i, r := range l.symbols {
		if _, ok := l.index[r]; ok || r == gapSymbol {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrDuplicateButton, r)
		}
		l.index[r] = Button(i)
	}
	c, ok := l.index[confirmSymbol]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", name, ErrMissingButton, confirmSymbol)
	}
	l.confirm = c

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNonRectangular)
	}
	width := len([]rune(rows[0]))
	l.cells = MakeGrid[Button](width, len(rows))
	l.pos = make([]Pt, len(l.symbols))
	placed := make([]bool, len(l.symbols))
	var gaps []Pt
	for y, row := range rows {
		rs := []rune(row)
		if len(rs) != width {
			return nil, fmt.Errorf("%s: %w: row %d", name, ErrNonRectangular, y)
		}
		for x, r := range rs {
			p := Pt{x, y}
			if r == gapSymbol {
				l.cells.Set(p, NoButton)
				gaps = append(gaps, p)
				continue
			}
			b, ok := l.index[r]
			if !ok {
				return nil, fmt.Errorf("%s: %w: %q at %v", name, ErrUnknownSymbol, r, p)
			}
			if placed[b] {
				return nil, fmt.Errorf("%s: %w: %q at %v", name, ErrDuplicateButton, r, p)
			}
			placed[b] = true
			l.pos[b] = p
			l.cells.Set(p, b)
		}
	}
	if len(gaps) != 1 {
		return nil, fmt.Errorf("%s: %w: found %d", name, ErrGapCount, len(gaps))
	}
	l.gap = gaps[0]
	for b, ok := range placed {
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrMissingButton, l.symbols[b])
		}
	}
	if err := l.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

// check verifies that the buttons form one connected region and that every
// ordered pair is joined by at least one gap-avoiding L-path.
func (l *Layout) check() error {
	visited := mapset.New[Pt]()
	q := NewQueue(l.pos[0])
	q.While(func(p Pt) bool {
		if visited.Has(p) {
			return true
		}
		visited.Put(p)
		for _, d := range directions {
			n := p.Add(d.Step())
			if _, ok := l.ButtonAt(n); ok && !visited.Has(n) {
				q.Push(n)
			}
		}
		return true
	})
	if visited.Size() != l.Len() {
		return fmt.Errorf("%w: reached %d of %d buttons", ErrDisconnected, visited.Size(), l.Len())
	}

	for _, from := range l.Buttons() {
		for _, to := range l.Buttons() {
			hFirst, vFirst := l.legal(from, to)
			if !hFirst && !vFirst {
				return fmt.Errorf("%w: %q to %q", ErrNoLPath, l.Symbol(from), l.Symbol(to))
			}
		}
	}
	return nil
}

// legal reports which of the two L-shaped traversals from one button to
// another stay clear of the gap. When the buttons share a row or column
// both orders describe the same straight path.
func (l *Layout) legal(from, to Button) (horizontalFirst, verticalFirst bool) {
	a, b := l.pos[from], l.pos[to]
	hCorner := Pt{b.X, a.Y}
	vCorner := Pt{a.X, b.Y}
	horizontalFirst = l.clear(a, hCorner) && l.clear(hCorner, b)
	verticalFirst = l.clear(a, vCorner) && l.clear(vCorner, b)
	return horizontalFirst, verticalFirst
}

// clear reports whether the straight segment from a to b, endpoints
// included, avoids the gap and stays on the grid.
func (l *Layout) clear(a, b Pt) bool {
	for p := a; ; p = p.Toward(b) {
		if _, ok := l.ButtonAt(p); !ok {
			return false
		}
		if p == b {
			return true
		}
	}
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) String() string { return l.name }

// Len returns the number of buttons.
func (l *Layout) Len() int { return len(l.symbols) }

// Buttons returns every button in index order.
func (l *Layout) Buttons() []Button {
	out := make([]Button, l.Len())
	for i := range out {
		out[i] = Button(i)
	}
	return out
}

// Confirm returns the confirm button.
func (l *Layout) Confirm() Button { return l.confirm }

// Position returns the grid cell of b.
func (l *Layout) Position(b Button) Pt { return l.pos[b] }

// ButtonAt returns the button at p. It reports false for the gap and for
// cells off the grid.
func (l *Layout) ButtonAt(p Pt) (Button, bool) {
	b, ok := l.cells.AtOk(p)
	if !ok || b == NoButton {
		return NoButton, false
	}
	return b, true
}

// IsGap reports whether p is the layout's gap cell.
func (l *Layout) IsGap(p Pt) bool { return p == l.gap }

// Symbol returns the glyph printed on b.
func (l *Layout) Symbol(b Button) rune { return l.symbols[b] }

// Button returns the button printed with r.
func (l *Layout) Button(r rune) (Button, bool) {
	b, ok := l.index[r]
	return b, ok
}

// Distance returns the manhattan distance between two buttons.
func (l *Layout) Distance(from, to Button) int {
	return l.pos[from].MDist(l.pos[to])
}
