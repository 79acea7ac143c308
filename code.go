package keypad

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a sequence to type on the Numeric keypad. It ends with confirm
// and the digits before it give the code's numeric value.
type Code struct {
	Text    string
	Buttons []Button
	Value   uint64
}

func (c Code) String() string { return c.Text }

// ParseCode parses s, such as "029A", into a Code.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	buttons, err := parseButtons(Numeric, s)
	if err != nil {
		return Code{}, err
	}
	last := len(buttons) - 1
	for i, b := range buttons {
		if (b == Numeric.Confirm()) != (i == last) {
			return Code{}, fmt.Errorf("%w: %q", ErrMissingConfirm, s)
		}
	}
	digits := s[:len(s)-1]
	if digits == "" {
		return Code{}, fmt.Errorf("%w: %q", ErrNoValue, s)
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q: %v", ErrNoValue, s, err)
	}
	return Code{Text: s, Buttons: buttons, Value: v}, nil
}

// ParseCodes parses one code per line, skipping blank lines. It fails on
// the first malformed code rather than dropping it from the workload.
func ParseCodes(lines []string) ([]Code, error) {
	var codes []Code
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// parseButtons maps each symbol of s to a button on l.
func parseButtons(l *Layout, s string) ([]Button, error) {
	if s == "" {
		return nil, ErrEmptyCode
	}
	var out []Button
	for _, r := range s {
		b, ok := l.Button(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s keypad", ErrBadSymbol, r, l.Name())
		}
		out = append(out, b)
	}
	return out, nil
}
