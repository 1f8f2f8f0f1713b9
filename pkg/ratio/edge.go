package ratio

import (
	"fmt"

	"github.com/matzehuels/ratiosplit/pkg/errors"
)

const (
	// DefaultRatio is the weight used for a flexible edge whose Ratio is 0.
	DefaultRatio = 1

	// DefaultMinimumSize is the floor set by [Flex].
	DefaultMinimumSize = 1
)

// Edge describes one slot competing for space in [Resolve].
//
// A nil Size marks the edge as flexible. A non-nil Size fixes the edge at
// that value, including zero, and Ratio and MinimumSize are then ignored.
type Edge struct {
	Size        *int
	Ratio       int
	MinimumSize int
}

// Fixed returns an edge that always resolves to n.
func Fixed(n int) Edge {
	return Edge{Size: &n}
}

// Flex returns a flexible edge with the given weight and a minimum size of
// [DefaultMinimumSize].
func Flex(ratio int) Edge {
	return Edge{Ratio: ratio, MinimumSize: DefaultMinimumSize}
}

// WithMinimum returns a copy of e with its minimum size set to n.
func (e Edge) WithMinimum(n int) Edge {
	e.MinimumSize = n
	return e
}

// IsFixed reports whether the edge has a fixed size.
func (e Edge) IsFixed() bool { return e.Size != nil }

// Weight returns the ratio used for the edge when it is flexible.
func (e Edge) Weight() int {
	if e.Ratio == 0 {
		return DefaultRatio
	}
	return e.Ratio
}

// String returns a compact description such as "fixed(3)" or
// "flex(ratio=2, min=1)".
func (e Edge) String() string {
	if e.Size != nil {
		return fmt.Sprintf("fixed(%d)", *e.Size)
	}
	return fmt.Sprintf("flex(ratio=%d, min=%d)", e.Weight(), e.MinimumSize)
}

func (e Edge) validate(i int) error {
	if e.Size != nil {
		if *e.Size < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "edge %d: size must be >= 0, got %d", i, *e.Size)
		}
		return nil
	}
	if e.Ratio < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "edge %d: ratio must be >= 0, got %d", i, e.Ratio)
	}
	if e.MinimumSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "edge %d: minimum size must be >= 0, got %d", i, e.MinimumSize)
	}
	return nil
}
