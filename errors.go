package keypad

import "errors"

// Layout construction errors.
var (
	// ErrNonRectangular indicates layout rows are empty or of differing lengths.
	ErrNonRectangular = errors.New("keypad: layout rows must be non-empty and of equal length")
	// ErrUnknownSymbol indicates a layout cell holds a symbol not in the button list.
	ErrUnknownSymbol = errors.New("keypad: unknown symbol in layout")
	// ErrDuplicateButton indicates a button appears more than once.
	ErrDuplicateButton = errors.New("keypad: duplicate button")
	// ErrMissingButton indicates a listed button (or confirm) has no cell.
	ErrMissingButton = errors.New("keypad: button missing from layout")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must have exactly one gap")
	// ErrDisconnected indicates some button cannot be reached from the others.
	ErrDisconnected = errors.New("keypad: layout is not connected")
	// ErrNoLPath indicates a button pair with no gap-avoiding L-shaped path.
	ErrNoLPath = errors.New("keypad: no gap-avoiding L-path between buttons")
)

// Code errors.
var (
	// ErrEmptyCode indicates an empty code.
	ErrEmptyCode = errors.New("keypad: empty code")
	// ErrBadSymbol indicates a code symbol absent from the target keypad.
	ErrBadSymbol = errors.New("keypad: symbol not on keypad")
	// ErrMissingConfirm indicates a code that does not end with confirm, or
	// has confirm before its end.
	ErrMissingConfirm = errors.New("keypad: code must end with a single confirm")
	// ErrNoValue indicates a code without a decimal value before confirm.
	ErrNoValue = errors.New("keypad: code has no numeric value")
)

// Solver errors.
var (
	// ErrNegativeDepth indicates a negative chain depth.
	ErrNegativeDepth = errors.New("keypad: chain depth must not be negative")
	// ErrTooManyBuckets indicates an exhaustive search over too many buckets.
	ErrTooManyBuckets = errors.New("keypad: too many buckets for exhaustive search")
	// ErrOverflow indicates a press count or complexity that does not fit
	// in a uint64.
	ErrOverflow = errors.New("keypad: press count overflows uint64")
)
