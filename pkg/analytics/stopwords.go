package analytics

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StopWordSet holds lowercase words excluded from frequency analysis.
// It is never mutated after construction and is safe for concurrent reads.
type StopWordSet map[string]struct{}

// englishStopWords is the standard English stop-word list used by most NLP toolkits.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "ain", "all", "am",
	"an", "and", "any", "are", "aren", "aren't", "as", "at",

	"be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by",

	"can", "couldn", "couldn't",

	"d", "did", "didn", "didn't", "do", "does", "doesn", "doesn't", "doing",
	"don", "don't", "down", "during",

	"each",

	"few", "for", "from", "further",

	"had", "hadn", "hadn't", "has", "hasn", "hasn't", "have", "haven",
	"haven't", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how",

	"i", "if", "in", "into", "is", "isn", "isn't", "it", "it's", "its",
	"itself",

	"just",

	"ll",

	"m", "ma", "me", "mightn", "mightn't", "more", "most", "mustn",
	"mustn't", "my", "myself",

	"needn", "needn't", "no", "nor", "not", "now",

	"o", "of", "off", "on", "once", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own",

	"re",

	"s", "same", "shan", "shan't", "she", "she's", "should", "should've",
	"shouldn", "shouldn't", "so", "some", "such",

	"t", "than", "that", "that'll", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those",
	"through", "to", "too",

	"under", "until", "up",

	"ve", "very",

	"was", "wasn", "wasn't", "we", "were", "weren", "weren't", "what",
	"when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"won", "won't", "wouldn", "wouldn't",

	"y", "you", "you'd", "you'll", "you're", "you've", "your", "yours",
	"yourself", "yourselves",
}

// NewStopWordSet builds a set from words, lowercasing and trimming each one.
// Blank entries are ignored.
func NewStopWordSet(words ...string) StopWordSet {
	set := make(StopWordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// EnglishStopWords returns a fresh copy of the built-in English list.
func EnglishStopWords() StopWordSet {
	return NewStopWordSet(englishStopWords...)
}

// Contains reports whether word is a stop word. word must already be lowercase.
func (s StopWordSet) Contains(word string) bool {
	_, exists := s[word]
	return exists
}

type stopWordsFile struct {
	StopWords []string `yaml:"stop_words"`
}

// LoadStopWords reads a YAML file of the form
//
//	stop_words:
//	  - the
//	  - is
//
// A bare YAML list is accepted as well.
func LoadStopWords(path string) (StopWordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading stop words file: %w", err)
	}

	var file stopWordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		var list []string
		if listErr := yaml.Unmarshal(data, &list); listErr != nil {
			return nil, fmt.Errorf("error parsing stop words file %s: %w", path, err)
		}
		file.StopWords = list
	}

	set := NewStopWordSet(file.StopWords...)
	if len(set) == 0 {
		return nil, fmt.Errorf("stop words file %s contains no words", path)
	}
	return set, nil
}
