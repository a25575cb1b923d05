package history

import (
	"cmp"
	"slices"
)

// Rank orders history by frequency, most frequent first, breaking ties by
// recency of the last occurrence. Each distinct entry appears exactly once.
func Rank[T comparable](history []T) []T {
	if len(history) == 0 {
		return nil
	}

	freq := make(map[T]int, len(history))
	lastPos := make(map[T]int, len(history))
	for i, e := range history {
		freq[e]++
		lastPos[e] = i
	}

	ranked := slices.Clone(history)

	// Every copy of an entry shares one last position, so copies end up adjacent
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(lastPos[b], lastPos[a])
	})
	ranked = slices.Compact(ranked)

	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(freq[b], freq[a])
	})
	return ranked
}

// Unique returns entries with duplicates removed, keeping the first occurrence
func Unique[T comparable](entries []T) []T {
	seen := make(map[T]struct{}, len(entries))
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
