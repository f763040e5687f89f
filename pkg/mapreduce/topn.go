package mapreduce

import (
	"fmt"
	"sort"
)

// Scored is a key with a numeric score.
type Scored struct {
	Key   string
	Score float64
}

// TopN returns at most n entries with the highest scores, highest first.
// Entries with equal scores keep their relative input order, so callers pass
// entries in document order to break ties by first occurrence.
// Scores are returned unaltered. n <= 0 yields an empty slice.
func TopN(entries []Scored, n int) []Scored {
	if n <= 0 || len(entries) == 0 {
		return []Scored{}
	}

	sorted := make([]Scored, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	limit := n
	if len(sorted) < n {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// TopKeywords returns the top N keywords from weighted counts as formatted strings.
// Each string is formatted as "word:weight" (e.g., "learning:1.00").
// Equal weights are ordered alphabetically.
func TopKeywords(weights map[string]float64, n int) []string {
	ss := make([]Scored, 0, len(weights))
	for k, v := range weights {
		ss = append(ss, Scored{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		return ss[i].Key < ss[j].Key
	})

	top := TopN(ss, n)
	keywords := make([]string, len(top))
	for i, kv := range top {
		keywords[i] = fmt.Sprintf("%s:%.2f", kv.Key, kv.Score)
	}
	return keywords
}
