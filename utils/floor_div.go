package utils

// FloorDiv divides a by b rounding the quotient toward negative infinity.
//
// Go's native integer division truncates toward zero, which is off by one for
// negative quotients with a remainder. Mid/side halving relies on floor
// semantics for negative sums, so this helper must be used instead of the /
// operator anywhere a sample value is halved.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
