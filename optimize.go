package keypad

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Evaluator returns the total human presses of a workload under prefs.
type Evaluator func(prefs Preferences) uint64

// Strategy searches for the preferences that minimize an Evaluator. Only
// the listed buckets are varied; the rest keep their value from start.
type Strategy interface {
	Optimize(buckets []Bucket, start Preferences, eval Evaluator) (Preferences, uint64, error)
}

var (
	_ Strategy = HillClimb{}
	_ Strategy = Exhaustive{}
)

// HillClimb is coordinate-ascent local search. Each pass flips every bucket
// in turn and keeps a flip only if the total strictly drops; it stops after
// a pass with no kept flip.
//
// The result is a local optimum only. On unfamiliar inputs, check it
// against Exhaustive when the bucket count allows.
type HillClimb struct {
	// MaxPasses bounds the number of passes. Zero means no bound.
	MaxPasses int
	// Log receives a debug entry per kept flip. May be nil.
	Log logrus.FieldLogger
}

func (h HillClimb) Optimize(buckets []Bucket, start Preferences, eval Evaluator) (Preferences, uint64, error) {
	best := start.Clone()
	bestCost := eval(best)
	for pass := 1; h.MaxPasses == 0 || pass <= h.MaxPasses; pass++ {
		improved := false
		for _, b := range buckets {
			cand := best.Flip(b)
			c := eval(cand)
			if c >= bestCost {
				continue
			}
			if h.Log != nil {
				h.Log.WithFields(logrus.Fields{
					"pass":   pass,
					"bucket": b,
					"from":   bestCost,
					"to":     c,
				}).Debug("kept flip")
			}
			best, bestCost, improved = cand, c, true
		}
		if !improved {
			break
		}
	}
	return best, bestCost, nil
}

const defaultMaxBuckets = 16

// Exhaustive tries every assignment of the buckets and returns the first
// one with the lowest total.
type Exhaustive struct {
	// MaxBuckets caps the search at 2^MaxBuckets evaluations. Zero means 16.
	MaxBuckets int
	// Log receives a debug entry per improvement. May be nil.
	Log logrus.FieldLogger
}

func (e Exhaustive) Optimize(buckets []Bucket, start Preferences, eval Evaluator) (Preferences, uint64, error) {
	limit := e.MaxBuckets
	if limit == 0 {
		limit = defaultMaxBuckets
	}
	if len(buckets) > limit {
		return nil, 0, fmt.Errorf("%w: %d > %d", ErrTooManyBuckets, len(buckets), limit)
	}
	var best Preferences
	var bestCost uint64
	for mask := 0; mask < 1<<len(buckets); mask++ {
		prefs := start.Clone()
		for i, b := range buckets {
			prefs[b] = mask>>i&1 == 1
		}
		c := eval(prefs)
		if best != nil && c >= bestCost {
			continue
		}
		if e.Log != nil {
			e.Log.WithFields(logrus.Fields{
				"assignment": prefs,
				"total":      c,
			}).Debug("new best")
		}
		best, bestCost = prefs, c
	}
	return best, bestCost, nil
}
