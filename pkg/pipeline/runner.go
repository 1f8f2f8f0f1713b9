package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	"github.com/matzehuels/ratiosplit/pkg/observability"
	"github.com/matzehuels/ratiosplit/pkg/ratio"
)

// Runner executes allocation requests.
//
// The Runner holds no per-request state, so one Runner can serve
// concurrent callers.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates req, runs the allocation and returns the result.
//
// Allocation errors keep their codes (see package errors) and are wrapped
// with the operation name. Execute returns ctx.Err() if ctx is already done.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	hooks := observability.Allocation()
	hooks.OnAllocateStart(ctx, string(req.Op), req.Slots())

	start := time.Now()
	values, err := dispatch(req)
	duration := time.Since(start)

	hooks.OnAllocateComplete(ctx, string(req.Op), duration, err)
	if err != nil {
		r.Logger.Debug("allocation failed", "op", req.Op, "code", errors.GetCode(err), "err", err)
		return nil, fmt.Errorf("%s: %w", req.Op, err)
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	res := &Result{
		Op:       req.Op,
		Total:    req.Total,
		Values:   values,
		Names:    req.Names,
		Sum:      sum,
		Duration: duration,
	}

	r.Logger.Debug("allocated",
		"op", req.Op,
		"slots", len(values),
		"total", req.Total,
		"sum", sum,
		"duration", duration)
	if len(values) > 0 && !res.Filled(req) {
		r.Logger.Warn("allocation does not match total",
			"op", req.Op,
			"total", req.Total,
			"sum", sum)
	}

	return res, nil
}

func dispatch(req Request) ([]int, error) {
	switch req.Op {
	case OpResolve:
		return ratio.Resolve(req.Total, req.Edges)
	case OpReduce:
		return ratio.Reduce(req.Total, req.Ratios, req.Maximums, req.Values)
	case OpDistribute:
		return ratio.Distribute(req.Total, req.Ratios, req.Minimums)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unknown operation %q", req.Op)
}
