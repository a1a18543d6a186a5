package store

// Partition splits newest-first items into the first window elements and the
// rest. It is purely positional; recent followed by archived is always items.
func Partition[T any](items []T, window int) (recent, archived []T) {
	if window < 0 {
		window = 0
	}
	if len(items) <= window {
		return items, items[len(items):]
	}
	return items[:window], items[window:]
}

// Recent returns the first window elements of items.
func Recent[T any](items []T, window int) []T {
	r, _ := Partition(items, window)
	return r
}

// Archived returns the elements of items after the first window.
func Archived[T any](items []T, window int) []T {
	_, a := Partition(items, window)
	return a
}
