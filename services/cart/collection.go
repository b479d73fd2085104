package cart

import "slices"

// upsert removes any element matching match and appends item at the end.
func upsert[T any](items []T, item T, match func(T) bool) []T {
	if i := slices.IndexFunc(items, match); i >= 0 {
		items = slices.Delete(items, i, i+1)
	}
	return append(items, item)
}

// remove drops the first element matching match. It reports whether one was found.
func remove[T any](items []T, match func(T) bool) ([]T, bool) {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}
