package ratio

import "github.com/matzehuels/ratiosplit/pkg/errors"

// Resolve divides total between edges.
//
// Fixed edges keep their size. The space they leave is shared between the
// flexible edges in proportion to their weight. A flexible edge whose share
// would be at or below its minimum is pinned to that minimum and the rest
// is recomputed without it; only the first such edge in input order is
// pinned per round. Shares are rounded with a running remainder so the
// flexible sizes add up to exactly the space left.
//
// When fixed sizes and minimums leave no room, the remaining flexible edges
// get 0. The result then sums to more or less than total; callers that need
// strict capacity should compare the sum themselves.
//
// Intermediate products of total, weights and minimums must fit in an int;
// inputs up to about 2^31 each are safe on 64-bit platforms.
func Resolve(total int, edges []Edge) ([]int, error) {
	if err := errors.ValidateTotal(total); err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err := e.validate(i); err != nil {
			return nil, err
		}
	}

	sizes := make([]int, len(edges))
	resolved := make([]bool, len(edges))
	used, pending := 0, 0
	for i, e := range edges {
		if e.Size != nil {
			sizes[i] = *e.Size
			resolved[i] = true
			used += *e.Size
		} else {
			pending++
		}
	}

	for pending > 0 {
		remaining := total - used
		if remaining <= 0 {
			// Unresolved edges are already 0.
			break
		}

		totalRatio := 0
		for i, e := range edges {
			if !resolved[i] {
				totalRatio += e.Weight()
			}
		}

		// portion*ratio <= minimum, with portion = remaining/totalRatio.
		pinned := -1
		for i, e := range edges {
			if !resolved[i] && remaining*e.Weight() <= e.MinimumSize*totalRatio {
				pinned = i
				break
			}
		}
		if pinned >= 0 {
			sizes[pinned] = edges[pinned].MinimumSize
			resolved[pinned] = true
			used += sizes[pinned]
			pending--
			continue
		}

		carry := 0
		for i, e := range edges {
			if resolved[i] {
				continue
			}
			share := remaining*e.Weight() + carry
			sizes[i] = share / totalRatio
			carry = share % totalRatio
		}
		break
	}

	return sizes, nil
}
