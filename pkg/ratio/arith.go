package ratio

// ceilDiv returns ceil(n/d) for d > 0. n may be negative once minimums have
// overdrawn the remaining space.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

// roundHalfEven returns n/d rounded to the nearest integer, ties to even,
// for n >= 0 and d > 0.
func roundHalfEven(n, d int) int {
	q, r := n/d, n%d
	switch {
	case 2*r > d:
		q++
	case 2*r == d && q%2 != 0:
		q++
	}
	return q
}
