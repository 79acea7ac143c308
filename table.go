// Package keypad computes the fewest button presses a human needs to type a
// code on a numeric door keypad through a chain of robots, each driven from
// a directional keypad by the one before it.
package keypad

import (
	"fmt"
	"math"
)

// Table holds, for one fixed Preferences, the minimum number of human
// presses needed to move the arm at each level of a chain between two
// buttons and push the second one.
//
// Level 0 is the keypad whose robot the human drives directly. Levels
// 0..depth-1 are Directional keypads and level depth is the target keypad.
// Every arm rests on the button it last pushed and every controlling arm
// returns to confirm, so an entry depends only on (level, from, to). The
// table is filled bottom-up from level 0 and never reused for another
// Preferences.
//
// Counts that do not fit in a uint64 saturate at math.MaxUint64; see
// Saturated.
type Table struct {
	top   *Layout
	depth int
	prefs Preferences

	levels [][]uint64 // levels[k][from*n+to], n = len of level k's layout
}

// NewTable fills a table for a chain of depth directional keypads in front
// of top.
func NewTable(top *Layout, depth int, prefs Preferences) *Table {
	if depth < 0 {
		panic(fmt.Sprintf("keypad: negative depth %d", depth))
	}
	t := &Table{
		top:    top,
		depth:  depth,
		prefs:  prefs,
		levels: make([][]uint64, depth+1),
	}
	for k := 0; k <= depth; k++ {
		t.levels[k] = t.fill(k)
	}
	return t
}

func (t *Table) fill(level int) []uint64 {
	l := t.Layout(level)
	n := l.Len()
	out := make([]uint64, n*n)
	for _, from := range l.Buttons() {
		for _, to := range l.Buttons() {
			if level == 0 {
				// The human walks the arm directly: one press per step
				// plus confirm.
				out[int(from)*n+int(to)] = uint64(l.Distance(from, to)) + 1
				continue
			}
			out[int(from)*n+int(to)] = t.routeCost(level-1, Route(l, from, to, t.prefs))
		}
	}
	return out
}

// routeCost returns the human presses needed to type presses on the
// Directional keypad at level, starting from confirm.
func (t *Table) routeCost(level int, presses []Press) uint64 {
	var total uint64
	prev := Directional.Confirm()
	for _, p := range presses {
		total = addSat(total, t.Cost(level, prev, p.Button))
		total = addSat(total, mulSat(uint64(p.Count-1), t.Cost(level, p.Button, p.Button)))
		prev = p.Button
	}
	return total
}

// Depth returns the number of directional keypads in the chain.
func (t *Table) Depth() int { return t.depth }

// Preferences returns the preferences the table was built with.
func (t *Table) Preferences() Preferences { return t.prefs }

// Layout returns the keypad at level.
func (t *Table) Layout(level int) *Layout {
	if level == t.depth {
		return t.top
	}
	return Directional
}

// Cost returns the human presses needed to move the arm at level from one
// button to another and push it. Buttons index the keypad at that level.
func (t *Table) Cost(level int, from, to Button) uint64 {
	if level < 0 || level > t.depth {
		panic(fmt.Sprintf("keypad: level %d outside chain of depth %d", level, t.depth))
	}
	n := t.Layout(level).Len()
	return t.levels[level][int(from)*n+int(to)]
}

// Total returns the human presses needed to type seq on the target keypad,
// starting with its arm on confirm.
func (t *Table) Total(seq []Button) uint64 {
	var total uint64
	for _, pr := range Pairs(t.top.Confirm(), seq) {
		total = addSat(total, t.Cost(t.depth, pr.From, pr.To))
	}
	return total
}

// Saturated reports whether n is the value a Table reports for a count
// that overflowed.
func Saturated(n uint64) bool { return n == math.MaxUint64 }

// Size returns the number of entries in the table.
func (t *Table) Size() int {
	var n int
	for _, lv := range t.levels {
		n += len(lv)
	}
	return n
}
