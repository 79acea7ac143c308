// Command keypad prints the total complexity of door codes typed through a
// chain of robot-operated directional keypads.
//
// Codes are read one per line from the file named by the first argument,
// or from stdin.
package main

import (
	"bufio"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/maisem/keypad"
	"github.com/sirupsen/logrus"
)

// maxSequenceDepth bounds -sequence output; the press string grows
// roughly 2.5x per level.
const maxSequenceDepth = 4

//go:embed sample.txt
var sampleText string

type sample struct {
	depth int
	want  string
	input string
}

var sampleRx = regexp.MustCompile(`(?s)^\s*depth=(\d+)\s+want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(text string) (sample, bool) {
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	var depth int
	if _, err := fmt.Sscan(m[1], &depth); err != nil {
		return sample{}, false
	}
	return sample{depth: depth, want: m[2], input: m[3]}, true
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}

var log = logrus.New()

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	flag.StringVar(&cfg.Depths, "depths", cfg.Depths, "comma separated chain depths to solve")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "preference search: hillclimb or exhaustive")
	flag.IntVar(&cfg.MaxBuckets, "max-buckets", cfg.MaxBuckets, "bucket cap for exhaustive search")
	flag.IntVar(&cfg.MaxPasses, "max-passes", cfg.MaxPasses, "pass cap for hillclimb; 0 means none")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging")
	flag.BoolVar(&cfg.Sequence, "sequence", cfg.Sequence, fmt.Sprintf("print the human press sequence for depths up to %d", maxSequenceDepth))
	onlySample := flag.Bool("sample", false, "only run the built-in sample")
	flag.Parse()

	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if err := run(cfg, *onlySample, flag.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, onlySample bool, args []string, w io.Writer) error {
	strategy, err := cfg.strategy(log)
	if err != nil {
		return err
	}
	solver, err := keypad.NewSolver(keypad.SolverOptions{Strategy: strategy, Log: log})
	if err != nil {
		return err
	}
	defer solver.Close()

	if onlySample {
		return runSample(solver, w)
	}

	depths, err := cfg.depths()
	if err != nil {
		return err
	}
	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}
	codes, err := keypad.ParseCodes(lines)
	if err != nil {
		return err
	}
	for i, depth := range depths {
		t0 := time.Now()
		results, err := solver.Solve(codes, depth)
		if err != nil {
			return err
		}
		total, err := keypad.SumComplexity(results)
		if err != nil {
			return err
		}
		if cfg.Sequence && depth <= maxSequenceDepth {
			for _, r := range results {
				fmt.Fprintf(w, "%s: %s\n", r.Code, keypad.Sequence(keypad.Numeric, depth, r.Prefs, r.Code.Buttons))
			}
		}
		fmt.Fprintf(w, "part %d (depth %d): %v (took %v)\n", i+1, depth, total, time.Since(t0).Round(time.Microsecond))
	}
	return nil
}

func runSample(solver *keypad.Solver, w io.Writer) error {
	s, ok := parseSample(sampleText)
	if !ok {
		return fmt.Errorf("malformed built-in sample")
	}
	lines, err := readLines(strings.NewReader(s.input))
	if err != nil {
		return err
	}
	codes, err := keypad.ParseCodes(lines)
	if err != nil {
		return err
	}
	t0 := time.Now()
	got, err := solver.TotalComplexity(codes, s.depth)
	if err != nil {
		return err
	}
	if fmt.Sprint(got) != s.want {
		return fmt.Errorf("sample (depth %d): %v ❌; want %v", s.depth, got, s.want)
	}
	fmt.Fprintf(w, "sample (depth %d): %v ✅ (%v)\n", s.depth, got, time.Since(t0).Round(time.Microsecond))
	return nil
}
