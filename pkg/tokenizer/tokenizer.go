// Package tokenizer splits text into sentences and words.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Tokenizer is the text segmentation capability the summarizer depends on.
// Implementations must be pure: the same input always yields the same output.
type Tokenizer interface {
	Sentences(text string) []string
	Words(text string) []string
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// English splits sentences with the Punkt model trained on English text, so
// abbreviations and decimal numbers do not end a sentence.
type English struct {
	punkt *sentences.DefaultSentenceTokenizer
}

func NewEnglish() (*English, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load English sentence model: %w", err)
	}
	return &English{punkt: punkt}, nil
}

// Sentences returns the trimmed, non-empty sentences of text in document order.
func (e *English) Sentences(text string) []string {
	var out []string
	for _, s := range e.punkt.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Words returns the runs of letters, numbers and underscores in text.
func (e *English) Words(text string) []string {
	return Words(text)
}

// Words splits text on every rune that is not a letter, number or underscore,
// matching the word boundaries the normalizer produces.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}
