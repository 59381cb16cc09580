package mapreduce

// Map counts, for a single batch of items, how many items fall under each key.
func Map[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// MapMany is Map for items that fall under several keys at once, such as a
// movie under each of its cast members.
func MapMany[T any, K comparable](items []T, keys func(T) []K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		for _, k := range keys(item) {
			counts[k]++
		}
	}
	return counts
}

// Reduce aggregates a slice of count maps into a single map.
func Reduce[K comparable](intermediate []map[K]int) map[K]int {
	finalResults := make(map[K]int)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}

// Chunk splits items into at most n contiguous batches for parallel mapping.
func Chunk[T any](items []T, n int) [][]T {
	if len(items) == 0 || n <= 0 {
		return nil
	}
	n = min(n, len(items))
	size := (len(items) + n - 1) / n

	batches := make([][]T, 0, n)
	for lo := 0; lo < len(items); lo += size {
		batches = append(batches, items[lo:min(lo+size, len(items))])
	}
	return batches
}
