package keypad

import "strings"

// Sequence returns the literal presses the human makes to type seq on top
// through depth directional keypads, choosing routes with prefs. Its
// length equals NewTable(top, depth, prefs).Total(seq). The result grows
// exponentially with depth.
func Sequence(top *Layout, depth int, prefs Preferences, seq []Button) string {
	l := top
	for k := depth; k >= 0; k-- {
		seq = typeOn(l, prefs, seq)
		l = Directional
	}
	var sb strings.Builder
	sb.Grow(len(seq))
	for _, b := range seq {
		sb.WriteRune(Directional.Symbol(b))
	}
	return sb.String()
}

// typeOn returns the Directional presses that type seq on l.
func typeOn(l *Layout, prefs Preferences, seq []Button) []Button {
	var out []Button
	for _, pr := range Pairs(l.Confirm(), seq) {
		out = append(out, Expand(Route(l, pr.From, pr.To, prefs))...)
	}
	return out
}
