package common

// FirstNonZero returns the first argument that differs from T's zero value.
// Used to layer caller-supplied settings over defaults without dedicated
// option types.
//
// Parameters:
//   - values: candidate values, highest priority first
//
// Returns:
//   - T: the first non-zero candidate, or the zero value when none is set
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
