package mapreduce

import (
	"fmt"
	"sort"
)

// TopCounts returns the top N entries of a count map as formatted
// strings, "key:count", highest count first. Ties break alphabetically
// so output stays deterministic.
func TopCounts(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	sorted := make([]kv, 0, len(counts))
	for k, v := range counts {
		sorted = append(sorted, kv{Key: k, Value: v})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value > sorted[j].Value
		}
		return sorted[i].Key < sorted[j].Key
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	top := make([]string, 0, n)
	for _, item := range sorted[:n] {
		top = append(top, fmt.Sprintf("%s:%d", item.Key, item.Value))
	}
	return top
}
