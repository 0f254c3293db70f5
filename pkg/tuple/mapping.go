package tuple

// Map applies the three values of t as arguments to f and returns its result.
func Map[T1, T2, T3, R any](t Triple[T1, T2, T3], f func(T1, T2, T3) R) R {
	return f(t.first, t.second, t.third)
}

// MapFirst returns a new Triple with the first value replaced by f(first).
func MapFirst[T1, T2, T3, U any](t Triple[T1, T2, T3], f func(T1) U) Triple[U, T2, T3] {
	return New(f(t.first), t.second, t.third)
}

// MapSecond returns a new Triple with the second value replaced by f(second).
func MapSecond[T1, T2, T3, U any](t Triple[T1, T2, T3], f func(T2) U) Triple[T1, U, T3] {
	return New(t.first, f(t.second), t.third)
}

// MapThird returns a new Triple with the third value replaced by f(third).
func MapThird[T1, T2, T3, U any](t Triple[T1, T2, T3], f func(T3) U) Triple[T1, T2, U] {
	return New(t.first, t.second, f(t.third))
}
