package ratio

import "github.com/matzehuels/ratiosplit/pkg/errors"

// Distribute splits total into len(ratios) parts by weight.
//
// minimums is optional; pass nil (or an empty slice) for none. When it is
// given, a slot with a minimum of 0 gets no weight, and every slot receives
// at least its minimum.
//
// Slots are visited left to right. Each takes
// max(minimum, ceil(ratio * remaining / remainingRatio)); once no weight is
// left a slot takes max(minimum, remaining). Because rounding is upward,
// earlier slots are favored and the last weighted slot absorbs the
// difference, so the parts add up to exactly total unless a minimum raises
// a slot above its share. In that case the sum exceeds total and no part
// is ever negative.
//
// If no slot carries a positive weight there is no valid split and
// Distribute returns an error with code errors.ErrCodeInvalidConfiguration.
func Distribute(total int, ratios, minimums []int) ([]int, error) {
	if err := errors.ValidateTotal(total); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("ratios", ratios); err != nil {
		return nil, err
	}
	hasMinimums := len(minimums) > 0
	if hasMinimums {
		if err := errors.ValidateSameLength([]string{"ratios", "minimums"}, len(ratios), len(minimums)); err != nil {
			return nil, err
		}
		if err := errors.ValidateNonNegative("minimums", minimums); err != nil {
			return nil, err
		}
	}

	weights := make([]int, len(ratios))
	totalRatio := 0
	for i, r := range ratios {
		if hasMinimums && minimums[i] == 0 {
			continue
		}
		weights[i] = r
		totalRatio += r
	}
	if totalRatio <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "sum of ratios must be > 0")
	}

	parts := make([]int, len(ratios))
	remaining := total
	for i, w := range weights {
		minimum := 0
		if hasMinimums {
			minimum = minimums[i]
		}
		var distributed int
		if totalRatio > 0 {
			distributed = max(minimum, ceilDiv(w*remaining, totalRatio))
		} else {
			distributed = max(minimum, remaining, 0)
		}
		parts[i] = distributed
		totalRatio -= w
		remaining -= distributed
	}
	return parts, nil
}
