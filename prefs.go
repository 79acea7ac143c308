package keypad

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Bucket is the displacement between two buttons. Every move with the same
// displacement shares one path-order preference, on every keypad and at
// every level of the chain.
type Bucket struct {
	DX, DY int
}

// BucketOf returns the bucket of offset d.
func BucketOf(d Pt) Bucket { return Bucket{d.X, d.Y} }

// Forced reports whether moves in b run along a single axis, leaving no
// order to choose.
func (b Bucket) Forced() bool { return b.DX == 0 || b.DY == 0 }

func (b Bucket) String() string { return fmt.Sprintf("(%+d,%+d)", b.DX, b.DY) }

func compareBuckets(a, b Bucket) int {
	if a.DX != b.DX {
		return a.DX - b.DX
	}
	return a.DY - b.DY
}

// Preferences records, per bucket, whether to move horizontally before
// vertically when both orders avoid the gap. Absent buckets prefer
// vertical first. A Preferences value is never mutated once handed to a
// Table; use Flip or Clone to derive a new one.
type Preferences map[Bucket]bool

// HorizontalFirst reports the preferred order for b.
func (p Preferences) HorizontalFirst(b Bucket) bool { return p[b] }

// Clone returns a copy of p that is safe to modify.
func (p Preferences) Clone() Preferences {
	if p == nil {
		return Preferences{}
	}
	return maps.Clone(p)
}

// Flip returns a copy of p with the preference for b inverted.
func (p Preferences) Flip(b Bucket) Preferences {
	q := p.Clone()
	q[b] = !q[b]
	return q
}

var hashPrefs = deephash.HasherForType[Preferences]()

// Fingerprint returns a hash of the horizontal-first buckets of p, so two
// tables that choose the same orders share a fingerprint.
func (p Preferences) Fingerprint() deephash.Sum {
	norm := Preferences{}
	for b, h := range p {
		if h {
			norm[b] = true
		}
	}
	return hashPrefs(&norm)
}

// String lists the horizontal-first buckets in order.
func (p Preferences) String() string {
	keys := maps.Keys(p)
	slices.SortFunc(keys, compareBuckets)
	var sb strings.Builder
	sb.WriteString("[")
	for _, b := range keys {
		if !p[b] {
			continue
		}
		if sb.Len() > 1 {
			sb.WriteString(" ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Pair is one move of a robot arm between two buttons of the same layout.
type Pair struct {
	From, To Button
}

// Pairs splits a press sequence into consecutive moves, starting from
// start, where the arm rests between actions.
func Pairs(start Button, seq []Button) []Pair {
	out := make([]Pair, 0, len(seq))
	prev := start
	for _, b := range seq {
		out = append(out, Pair{prev, b})
		prev = b
	}
	return out
}

// FreeBuckets returns, in order, the buckets of the given moves on l for
// which both L-shaped orders avoid the gap. With no pairs it considers
// every pair of buttons on l.
func FreeBuckets(l *Layout, pairs ...Pair) []Bucket {
	if len(pairs) == 0 {
		for _, from := range l.Buttons() {
			for _, to := range l.Buttons() {
				pairs = append(pairs, Pair{from, to})
			}
		}
	}
	set := mapset.New[Bucket]()
	for _, pr := range pairs {
		b := BucketOf(l.Position(pr.To).Sub(l.Position(pr.From)))
		if b.Forced() {
			continue
		}
		if h, v := l.legal(pr.From, pr.To); h && v {
			set.Put(b)
		}
	}
	var out []Bucket
	set.Each(func(b Bucket) {
		out = append(out, b)
	})
	slices.SortFunc(out, compareBuckets)
	return out
}
