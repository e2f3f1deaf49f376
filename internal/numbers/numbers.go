package numbers

// Between reports whether value lies between min and max. Bounds are
// included unless inclusive is false.
func Between(value, min, max int, inclusive bool) bool {
	if !inclusive {
		return value > min && value < max
	}
	return value >= min && value <= max
}

func Min0(value int) int {
	return max(0, value)
}

// Limit caps value at maximum.
func Limit(value, maximum int) int {
	return min(maximum, value)
}
