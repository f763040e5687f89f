package analytics

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dtnitsch/article-summarizer/pkg/mapreduce"
)

// ErrEmptyCorpus is returned when no countable word remains after stop-word removal.
var ErrEmptyCorpus = errors.New("no countable words after stop-word removal")

// mojibakePossessive is "’s" decoded as Windows-1252 instead of UTF-8.
const mojibakePossessive = "â€™s"

var (
	nonWordPattern    = regexp.MustCompile(`[^\p{L}\p{N}_]`)
	digitPattern      = regexp.MustCompile(`\p{Nd}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text and reduces it to words separated by single spaces.
// Non-word runes and digits become spaces. Normalized text is a fixed point.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, mojibakePossessive, "")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = digitPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Histogram maps a word to its count divided by the largest count, so
// every weight lies in (0, 1] and the most frequent words weigh 1.0.
type Histogram map[string]float64

// WordFrequency counts every word that is not a stop word.
func WordFrequency(words []string, stopWords StopWordSet) map[string]int {
	return mapreduce.Map(words, func(word string) bool {
		return word != "" && !stopWords.Contains(word)
	})
}

// BuildWordHistogram counts words outside stopWords and normalizes the counts
// by the maximum. It fails with ErrEmptyCorpus when nothing was counted.
func BuildWordHistogram(words []string, stopWords StopWordSet) (Histogram, error) {
	counts := WordFrequency(words, stopWords)

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return nil, ErrEmptyCorpus
	}

	histogram := make(Histogram, len(counts))
	for word, c := range counts {
		histogram[word] = float64(c) / float64(maxCount)
	}
	return histogram, nil
}

// Weight returns the weight of word and whether it was counted.
func (h Histogram) Weight(word string) (float64, bool) {
	w, ok := h[word]
	return w, ok
}
