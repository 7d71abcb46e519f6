package common

func Map[I, O any](p func(I) O, xs []I) []O {
	result := make([]O, len(xs))
	for i, x := range xs {
		result[i] = p(x)
	}
	return result
}

func MapIf[I, O any](p func(I) (O, bool), xs []I) []O {
	result := make([]O, 0, len(xs))
	for _, x := range xs {
		if r, ok := p(x); ok {
			result = append(result, r)
		}
	}
	return result
}

// ReverseEach walks xs from last to first, calling p on each element. The
// block summarizer's bottom-up scan (spec §4.4) is exactly this, driven
// with a two-state flag rather than a generator or continuation (§9).
func ReverseEach[T any](p func(T), xs []T) {
	for i := len(xs) - 1; i >= 0; i-- {
		p(xs[i])
	}
}
