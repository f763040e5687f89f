package mapreduce

// Fold reduces items into acc, left to right.
func Fold[T, A any](items []T, acc A, step func(A, T) A) A {
	for _, item := range items {
		acc = step(acc, item)
	}
	return acc
}

// Map generates a frequency map for the tokens accepted by keep.
func Map(tokens []string, keep func(string) bool) map[string]int {
	return Fold(tokens, make(map[string]int), func(counts map[string]int, token string) map[string]int {
		if keep(token) {
			counts[token]++
		}
		return counts
	})
}
