package ratio

import "github.com/matzehuels/ratiosplit/pkg/errors"

// Reduce removes total from values, weighted by ratios.
//
// maximums[i] caps how much may be taken from values[i]; a slot with a
// maximum of 0 is never touched whatever its ratio. Slots are visited left
// to right and each takes round(ratio * remaining / remainingRatio), capped
// at its maximum, where remaining and remainingRatio cover the slots not yet
// visited. Rounding is to the nearest integer with ties to even.
//
// The returned slice has the reduced values. Every result is at least
// values[i]-maximums[i], and the total removed never exceeds total. When caps
// bind, the removed total can fall short of total by more than the caps
// alone explain because of rounding in earlier slots.
func Reduce(total int, ratios, maximums, values []int) ([]int, error) {
	if err := errors.ValidateTotal(total); err != nil {
		return nil, err
	}
	if err := errors.ValidateSameLength(
		[]string{"ratios", "maximums", "values"},
		len(ratios), len(maximums), len(values),
	); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("ratios", ratios); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("maximums", maximums); err != nil {
		return nil, err
	}

	weights := make([]int, len(ratios))
	totalRatio := 0
	for i, r := range ratios {
		if maximums[i] > 0 {
			weights[i] = r
			totalRatio += r
		}
	}

	result := make([]int, len(values))
	copy(result, values)
	if totalRatio == 0 {
		return result, nil
	}

	remaining := total
	for i, w := range weights {
		if w == 0 || totalRatio <= 0 {
			continue
		}
		distributed := min(maximums[i], roundHalfEven(w*remaining, totalRatio))
		result[i] = values[i] - distributed
		remaining -= distributed
		totalRatio -= w
	}
	return result, nil
}
