package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leftFirst moves left before anything else and otherwise moves
// vertically first.
func leftFirst() Preferences {
	p := Preferences{}
	for dx := -3; dx < 0; dx++ {
		for dy := -3; dy <= 3; dy++ {
			if dy != 0 {
				p[Bucket{dx, dy}] = true
			}
		}
	}
	return p
}

func mustCode(t *testing.T, s string) Code {
	t.Helper()
	c, err := ParseCode(s)
	require.NoError(t, err)
	return c
}

func TestCostSelf(t *testing.T) {
	for _, top := range []*Layout{Numeric, Directional} {
		tbl := NewTable(top, 6, leftFirst())
		for d := 0; d <= tbl.Depth(); d++ {
			l := tbl.Layout(d)
			for _, b := range l.Buttons() {
				if got := tbl.Cost(d, b, b); got != 1 {
					t.Errorf("%v Cost(%d, %q, %q) = %d, want 1", top, d, l.Symbol(b), l.Symbol(b), got)
				}
			}
		}
	}
}

func TestCostBase(t *testing.T) {
	tbl := NewTable(Directional, 3, nil)
	for _, from := range Directional.Buttons() {
		for _, to := range Directional.Buttons() {
			want := uint64(Directional.Distance(from, to)) + 1
			if got := tbl.Cost(0, from, to); got != want {
				t.Errorf("Cost(0, %q, %q) = %d, want %d", Directional.Symbol(from), Directional.Symbol(to), got, want)
			}
		}
	}

	// With no indirection the human walks the numeric arm directly.
	num := NewTable(Numeric, 0, nil)
	seven, _ := Numeric.Button('7')
	assert.Equal(t, uint64(6), num.Cost(0, Numeric.Confirm(), seven))
}

func TestCostMonotonic(t *testing.T) {
	for _, prefs := range []Preferences{nil, leftFirst()} {
		tbl := NewTable(Directional, 8, prefs)
		for d := 0; d < tbl.Depth(); d++ {
			for _, from := range Directional.Buttons() {
				for _, to := range Directional.Buttons() {
					lo, hi := tbl.Cost(d, from, to), tbl.Cost(d+1, from, to)
					if hi < lo {
						t.Errorf("prefs %v: Cost(%d, %q, %q) = %d > Cost(%d) = %d", prefs, d, Directional.Symbol(from), Directional.Symbol(to), lo, d+1, hi)
					}
				}
			}
		}
	}
}

func TestCostKnown(t *testing.T) {
	tbl := NewTable(Directional, 1, leftFirst())
	down, _ := Directional.Button('v')
	// <vA typed from A: A->< 4, <->v 2, v->A 3.
	assert.Equal(t, uint64(9), tbl.Cost(1, Directional.Confirm(), down))
	assert.Equal(t, uint64(3), tbl.Cost(0, Directional.Confirm(), down))
}

func TestTableIdempotent(t *testing.T) {
	prefs := leftFirst()
	a := NewTable(Numeric, 4, prefs)
	b := NewTable(Numeric, 4, prefs.Clone())
	for d := 0; d <= a.Depth(); d++ {
		l := a.Layout(d)
		for _, from := range l.Buttons() {
			for _, to := range l.Buttons() {
				first := a.Cost(d, from, to)
				require.Equal(t, first, a.Cost(d, from, to))
				require.Equal(t, first, b.Cost(d, from, to))
			}
		}
	}
	assert.Equal(t, 4*25+121, a.Size())
}

func TestTableFlipUnrelated(t *testing.T) {
	// (2,-3) only occurs on the numeric keypad, so the directional levels
	// must not move when it flips.
	before := NewTable(Numeric, 5, leftFirst())
	after := NewTable(Numeric, 5, leftFirst().Flip(Bucket{2, -3}))
	for d := 0; d < before.Depth(); d++ {
		for _, from := range Directional.Buttons() {
			for _, to := range Directional.Buttons() {
				if b, a := before.Cost(d, from, to), after.Cost(d, from, to); a != b {
					t.Errorf("Cost(%d, %q, %q) changed from %d to %d", d, Directional.Symbol(from), Directional.Symbol(to), b, a)
				}
			}
		}
	}
}

func TestTotalSample(t *testing.T) {
	tests := []struct {
		code string
		want uint64
	}{
		{"029A", 68},
		{"980A", 60},
		{"179A", 68},
		{"456A", 64},
		{"379A", 64},
	}
	tbl := NewTable(Numeric, 2, leftFirst())
	for _, tt := range tests {
		c := mustCode(t, tt.code)
		if got := tbl.Total(c.Buttons); got != tt.want {
			t.Errorf("Total(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestCostOutOfRange(t *testing.T) {
	tbl := NewTable(Numeric, 2, nil)
	assert.Panics(t, func() { tbl.Cost(3, 0, 0) })
	assert.Panics(t, func() { tbl.Cost(-1, 0, 0) })
	assert.Panics(t, func() { NewTable(Numeric, -1, nil) })
}

func TestTotalSaturates(t *testing.T) {
	c := mustCode(t, "029A")
	assert.False(t, Saturated(NewTable(Numeric, 25, nil).Total(c.Buttons)))
	assert.True(t, Saturated(NewTable(Numeric, 80, nil).Total(c.Buttons)))
	assert.Equal(t, uint64(1), NewTable(Numeric, 80, nil).Cost(80, Numeric.Confirm(), Numeric.Confirm()))
}
