package keypad

// Press is a run of identical presses of one Directional button.
type Press struct {
	Button Button
	Count  int
}

// arrow returns the Directional button carrying d's glyph.
func arrow(d Direction) Button {
	b, ok := Directional.Button(d.Symbol())
	if !ok {
		panic("directional keypad has no " + d.String())
	}
	return b
}

// Route returns the presses on the Directional keypad that move the arm
// over l from one button to another along a single L-path and then push
// the target. When both orders avoid the gap, prefs picks one; otherwise
// the legal order is forced. The last press is always one confirm.
func Route(l *Layout, from, to Button, prefs Preferences) []Press {
	d := l.Position(to).Sub(l.Position(from))
	presses := make([]Press, 0, 3)
	h := Press{arrow(horizontal(d.X)), AbsDiff(d.X, 0)}
	v := Press{arrow(vertical(d.Y)), AbsDiff(d.Y, 0)}

	hFirst, vFirst := l.legal(from, to)
	if b := BucketOf(d); hFirst && vFirst && !b.Forced() {
		hFirst = prefs.HorizontalFirst(b)
	}
	legs := [2]Press{v, h}
	if hFirst {
		legs = [2]Press{h, v}
	}
	for _, p := range legs {
		if p.Count > 0 {
			presses = append(presses, p)
		}
	}
	return append(presses, Press{Directional.Confirm(), 1})
}

// Expand flattens presses into individual button presses.
func Expand(presses []Press) []Button {
	var out []Button
	for _, p := range presses {
		for i := 0; i < p.Count; i++ {
			out = append(out, p.Button)
		}
	}
	return out
}
