package keypad

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"tailscale.com/util/deephash"
)

// SolverOptions configures a Solver. The zero value is usable.
type SolverOptions struct {
	// Strategy picks route preferences. Defaults to HillClimb.
	Strategy Strategy
	// Log receives debug tracing. Defaults to a discarding logger.
	Log logrus.FieldLogger
	// CacheEntries bounds the number of cached workload evaluations.
	// Defaults to 1<<16.
	CacheEntries int64
}

// Result is the outcome for one code.
type Result struct {
	Code       Code
	Presses    uint64 // minimal human presses
	Value      uint64 // numeric value of Code
	Complexity uint64 // Presses * Value
	Prefs      Preferences
}

// Solver computes minimal human press counts for codes typed on the
// Numeric keypad through a chain of directional keypads.
type Solver struct {
	strategy Strategy
	log      logrus.FieldLogger
	cache    *ristretto.Cache // evalKey fingerprint -> uint64 total
}

// evalKey identifies one workload evaluation. Totals are only shared
// between evaluations with an identical code, depth and preference table.
type evalKey struct {
	Code  string
	Depth int
	Prefs deephash.Sum
}

var hashEvalKey = deephash.HasherForType[evalKey]()

// NewSolver returns a Solver. Call Close when done.
func NewSolver(opts SolverOptions) (*Solver, error) {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	strategy := opts.Strategy
	if strategy == nil {
		strategy = HillClimb{Log: log}
	}
	entries := opts.CacheEntries
	if entries <= 0 {
		entries = 1 << 16
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * entries,
		MaxCost:     entries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize evaluation cache: %w", err)
	}
	return &Solver{
		strategy: strategy,
		log:      log,
		cache:    cache,
	}, nil
}

// Close releases the evaluation cache.
func (s *Solver) Close() { s.cache.Close() }

// evaluator returns an Evaluator for typing c through depth directional
// keypads. Each call builds its own Table.
func (s *Solver) evaluator(c Code, depth int) Evaluator {
	return func(prefs Preferences) uint64 {
		key := hashEvalKey(&evalKey{Code: c.Text, Depth: depth, Prefs: prefs.Fingerprint()}).String()
		if v, ok := s.cache.Get(key); ok {
			return v.(uint64)
		}
		total := NewTable(Numeric, depth, prefs).Total(c.Buttons)
		s.cache.Set(key, total, 1)
		return total
	}
}

// Buckets returns the buckets whose preference can change the cost of
// typing c through depth directional keypads.
func Buckets(c Code, depth int) []Bucket {
	buckets := FreeBuckets(Numeric, Pairs(Numeric.Confirm(), c.Buttons)...)
	if depth == 0 {
		return buckets
	}
	seen := mapset.New[Bucket]()
	for _, b := range buckets {
		seen.Put(b)
	}
	for _, b := range FreeBuckets(Directional) {
		if !seen.Has(b) {
			buckets = append(buckets, b)
		}
	}
	return buckets
}

// Optimize runs the strategy for a single code and returns its result.
func (s *Solver) Optimize(c Code, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	prefs, presses, err := s.strategy.Optimize(Buckets(c, depth), Preferences{}, s.evaluator(c, depth))
	if err != nil {
		return Result{}, fmt.Errorf("optimizing %v: %w", c, err)
	}
	if Saturated(presses) {
		return Result{}, fmt.Errorf("%w: code %v at depth %d", ErrOverflow, c, depth)
	}
	hi, complexity := bits.Mul64(presses, c.Value)
	if hi != 0 {
		return Result{}, fmt.Errorf("%w: complexity of %v at depth %d", ErrOverflow, c, depth)
	}
	r := Result{
		Code:       c,
		Presses:    presses,
		Value:      c.Value,
		Complexity: complexity,
		Prefs:      prefs,
	}
	s.log.WithFields(logrus.Fields{
		"code":       c.Text,
		"depth":      depth,
		"presses":    r.Presses,
		"complexity": r.Complexity,
		"prefs":      prefs,
	}).Debug("solved code")
	return r, nil
}

// Solve optimizes every code independently and concurrently, returning
// results in input order.
func (s *Solver) Solve(codes []Code, depth int) ([]Result, error) {
	type resultOrErr struct {
		r   Result
		err error
	}
	out := Parallel(codes, func(c Code) resultOrErr {
		r, err := s.Optimize(c, depth)
		return resultOrErr{r, err}
	})
	results := make([]Result, len(out))
	for i, o := range out {
		if o.err != nil {
			return nil, o.err
		}
		results[i] = o.r
	}
	return results, nil
}

// TotalComplexity returns the sum over codes of minimal human presses
// times the code's numeric value.
func (s *Solver) TotalComplexity(codes []Code, depth int) (uint64, error) {
	results, err := s.Solve(codes, depth)
	if err != nil {
		return 0, err
	}
	return SumComplexity(results)
}

// SumComplexity adds up the complexities of results.
func SumComplexity(results []Result) (uint64, error) {
	var total uint64
	for _, r := range results {
		var carry uint64
		total, carry = bits.Add64(total, r.Complexity, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: total complexity", ErrOverflow)
		}
	}
	return total, nil
}
