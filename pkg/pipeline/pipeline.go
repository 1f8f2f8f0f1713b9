// Package pipeline runs allocation requests for the CLI and the HTTP API.
//
// The allocation functions in package ratio are pure. This package wraps
// them with the parts every entry point needs: request validation, timing,
// structured logging and observability hooks. Centralizing this keeps the
// CLI and the server consistent.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Request{
//	    Op:    pipeline.OpResolve,
//	    Total: 80,
//	    Edges: []ratio.Edge{ratio.Fixed(20), ratio.Flex(1)},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Values) // [20 60]
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	"github.com/matzehuels/ratiosplit/pkg/ratio"
)

// Op names an allocation operation.
type Op string

// Supported operations.
const (
	OpResolve    Op = "resolve"
	OpReduce     Op = "reduce"
	OpDistribute Op = "distribute"
)

// ParseOp converts a user-supplied operation name.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case OpResolve, OpReduce, OpDistribute:
		return op, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported,
		"unknown operation %q (want resolve, reduce or distribute)", s)
}

// Request is the input to [Runner.Execute]. Which fields apply depends on Op:
//
//   - resolve: Total, Edges
//   - reduce: Total, Ratios, Maximums, Values
//   - distribute: Total, Ratios, Minimums (optional)
//
// Names optionally labels the slots; when set it must have one entry per slot.
type Request struct {
	Op       Op
	Total    int
	Edges    []ratio.Edge
	Ratios   []int
	Maximums []int
	Values   []int
	Minimums []int
	Names    []string
}

// Slots returns the number of slots the request allocates.
func (r Request) Slots() int {
	if r.Op == OpResolve {
		return len(r.Edges)
	}
	return len(r.Ratios)
}

// Validate checks the request shape. Value-level checks (negative weights,
// mismatched list lengths) are left to package ratio so that both layers
// report the same errors.
func (r Request) Validate() error {
	if _, err := ParseOp(string(r.Op)); err != nil {
		return err
	}
	if len(r.Names) > 0 && len(r.Names) != r.Slots() {
		return errors.New(errors.ErrCodeInvalidInput,
			"got %d names for %d slots", len(r.Names), r.Slots())
	}
	return nil
}

// Result is the output of [Runner.Execute].
type Result struct {
	Op       Op            `json:"op"`
	Total    int           `json:"total"`
	Values   []int         `json:"values"`
	Names    []string      `json:"names,omitempty"`
	Sum      int           `json:"sum"`
	Duration time.Duration `json:"-"`
}

// Filled reports whether the values add up to the requested total.
//
// For reduce the comparison is against the amount removed, so a reduce
// result is filled when the whole reduction could be applied.
func (r *Result) Filled(req Request) bool {
	if r.Op == OpReduce {
		removed := 0
		for i, v := range req.Values {
			removed += v - r.Values[i]
		}
		return removed == req.Total
	}
	return r.Sum == r.Total
}
