package keypad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLayouts(t *testing.T) {
	tests := []struct {
		l      *Layout
		symbol rune
		want   Pt
	}{
		{Numeric, '7', Pt{0, 0}},
		{Numeric, '5', Pt{1, 1}},
		{Numeric, '0', Pt{1, 3}},
		{Numeric, 'A', Pt{2, 3}},
		{Directional, '^', Pt{1, 0}},
		{Directional, 'A', Pt{2, 0}},
		{Directional, '<', Pt{0, 1}},
		{Directional, '>', Pt{2, 1}},
	}
	for _, tt := range tests {
		b, ok := tt.l.Button(tt.symbol)
		require.True(t, ok, "%v has no %q", tt.l, tt.symbol)
		if got := tt.l.Position(b); got != tt.want {
			t.Errorf("%v.Position(%q) = %v, want %v", tt.l, tt.symbol, got, tt.want)
		}
		if got, ok := tt.l.ButtonAt(tt.want); !ok || got != b {
			t.Errorf("%v.ButtonAt(%v) = %v, %v, want %v", tt.l, tt.want, got, ok, b)
		}
	}

	assert.Equal(t, 11, Numeric.Len())
	assert.Equal(t, 5, Directional.Len())
	assert.True(t, Numeric.IsGap(Pt{0, 3}))
	assert.True(t, Directional.IsGap(Pt{0, 0}))
	assert.False(t, Directional.IsGap(Pt{1, 0}))
	assert.Equal(t, 'A', Numeric.Symbol(Numeric.Confirm()))
	assert.Equal(t, 'A', Directional.Symbol(Directional.Confirm()))
}

func TestButtonAtOutside(t *testing.T) {
	for _, p := range []Pt{{0, 3}, {-1, 0}, {3, 0}, {0, 4}} {
		if b, ok := Numeric.ButtonAt(p); ok {
			t.Errorf("Numeric.ButtonAt(%v) = %v, want none", p, b)
		}
	}
}

func TestDirectionalArrows(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		b := arrow(d)
		if got := Directional.Symbol(b); got != d.Symbol() {
			t.Errorf("arrow(%v) = %q", d, got)
		}
		p := Directional.Position(Directional.Confirm())
		assert.Equal(t, 1, p.MDist(p.Add(d.Step())), "step of %v", d)
	}
}

func TestNewLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		rows    []string
		want    error
	}{
		{"DuplicateSymbol", "AA", []string{"A A"}, ErrDuplicateButton},
		{"NoConfirm", "12", []string{"1 2"}, ErrMissingButton},
		{"NoRows", "1A", nil, ErrNonRectangular},
		{"Ragged", "1A", []string{" 1A", "1"}, ErrNonRectangular},
		{"UnknownSymbol", "1A", []string{" 1X"}, ErrUnknownSymbol},
		{"DuplicateCell", "1A", []string{"11 ", "A  "}, ErrDuplicateButton},
		{"NoGap", "1A", []string{"1A"}, ErrGapCount},
		{"TwoGaps", "1A", []string{" 1A "}, ErrGapCount},
		{"MissingButton", "12A", []string{"1A "}, ErrMissingButton},
		{"Disconnected", "12A", []string{"1 2A"}, ErrDisconnected},
		{"NoLPath", "1234567A", []string{"123", "4 5", "67A"}, ErrNoLPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.name, tt.symbols, tt.rows...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewLayout(%q, %q) = %v, %v; want error %v", tt.symbols, tt.rows, l, err, tt.want)
			}
		})
	}
}

func TestNewLayoutCustom(t *testing.T) {
	// The directional keypad flipped upside down.
	l, err := NewLayout("flipped", "^<v>A", "<v>", " ^A")
	require.NoError(t, err)
	assert.True(t, l.IsGap(Pt{0, 1}))
	up, _ := l.Button('^')
	left, _ := l.Button('<')
	assert.Equal(t, 2, l.Distance(left, up))
}
