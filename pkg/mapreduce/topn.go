package mapreduce

import (
	"slices"
)

// KV is one key with its count.
type KV[K comparable] struct {
	Key   K
	Count int
}

// TopN returns the n keys with the greatest counts, highest first. Equal
// counts are ordered by compare so results do not depend on map order.
// n < 0 returns every key.
func TopN[K comparable](counts map[K]int, n int, compare func(a, b K) int) []KV[K] {
	ss := make([]KV[K], 0, len(counts))
	for k, v := range counts {
		ss = append(ss, KV[K]{k, v})
	}

	// Sort by count (descending), then key
	slices.SortFunc(ss, func(a, b KV[K]) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return compare(a.Key, b.Key)
	})

	if n >= 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// Max returns the key with the greatest count, the smallest key under
// compare on ties. ok is false for an empty map.
func Max[K comparable](counts map[K]int, compare func(a, b K) int) (kv KV[K], ok bool) {
	for k, v := range counts {
		if !ok || v > kv.Count || (v == kv.Count && compare(k, kv.Key) < 0) {
			kv = KV[K]{k, v}
			ok = true
		}
	}
	return kv, ok
}
