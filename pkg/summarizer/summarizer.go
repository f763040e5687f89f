// Package summarizer ranks the sentences of a document by word frequency and
// selects the highest scoring ones as an extractive summary.
package summarizer

import (
	"strings"

	"github.com/dtnitsch/article-summarizer/models"
	"github.com/dtnitsch/article-summarizer/pkg/analytics"
	"github.com/dtnitsch/article-summarizer/pkg/mapreduce"
	"github.com/dtnitsch/article-summarizer/pkg/parser"
	"github.com/dtnitsch/article-summarizer/pkg/tokenizer"
)

// MaxSentenceWords is the exclusive upper bound on the whitespace-delimited
// word count of a sentence that may be scored.
const MaxSentenceWords = 25

// Summarizer owns one immutable document. It holds no state between calls,
// so Summarize may be called repeatedly and always returns the same result.
type Summarizer struct {
	doc       models.Document
	tokenizer tokenizer.Tokenizer
	stopWords analytics.StopWordSet
}

// Result is the output of a single Summarize call.
type Result struct {
	Sentences     []models.ScoredSentence
	Histogram     analytics.Histogram
	Scores        *ScoreTable
	SentenceCount int
}

// New captures text (already cleaned by the parser) as the summarizer's document.
// It returns parser.ErrEmptyDocument when text is blank.
func New(url, text string, tok tokenizer.Tokenizer, stopWords analytics.StopWordSet) (*Summarizer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, parser.ErrEmptyDocument
	}
	return &Summarizer{
		doc: models.Document{
			URL:        url,
			Text:       text,
			Normalized: analytics.Normalize(text),
		},
		tokenizer: tok,
		stopWords: stopWords,
	}, nil
}

// Document returns the document the summarizer was built from.
func (s *Summarizer) Document() models.Document {
	return s.doc
}

// Sentences splits the original text into sentences.
func (s *Summarizer) Sentences() []string {
	return s.tokenizer.Sentences(s.doc.Text)
}

// BuildWordHistogram weights every non stop word of the normalized text.
func (s *Summarizer) BuildWordHistogram() (analytics.Histogram, error) {
	return analytics.BuildWordHistogram(s.tokenizer.Words(s.doc.Normalized), s.stopWords)
}

// ScoreSentences scores every sentence of the original text against h.
func (s *Summarizer) ScoreSentences(h analytics.Histogram) *ScoreTable {
	return ScoreSentences(s.Sentences(), h, s.tokenizer)
}

// Summarize returns up to n sentences, highest score first.
func (s *Summarizer) Summarize(n int) (*Result, error) {
	histogram, err := s.BuildWordHistogram()
	if err != nil {
		return nil, err
	}

	sentences := s.Sentences()
	table := ScoreSentences(sentences, histogram, s.tokenizer)

	return &Result{
		Sentences:     Select(table, n),
		Histogram:     histogram,
		Scores:        table,
		SentenceCount: len(sentences),
	}, nil
}

// ScoreSentences sums, for each sentence shorter than MaxSentenceWords words,
// the histogram weight of every lowercase word token it contains.
// Sentences without any weighted word are left out of the table.
func ScoreSentences(sentences []string, h analytics.Histogram, tok tokenizer.Tokenizer) *ScoreTable {
	return mapreduce.Fold(sentences, NewScoreTable(), func(table *ScoreTable, sentence string) *ScoreTable {
		if len(strings.Fields(sentence)) >= MaxSentenceWords {
			return table
		}
		for _, word := range tok.Words(strings.ToLower(sentence)) {
			if w, ok := h.Weight(word); ok {
				table.add(sentence, w)
			}
		}
		return table
	})
}

// Select returns the n best sentences of table, ties broken by first occurrence.
func Select(table *ScoreTable, n int) []models.ScoredSentence {
	top := mapreduce.TopN(table.Entries(), n)
	out := make([]models.ScoredSentence, len(top))
	for i, e := range top {
		out[i] = models.ScoredSentence{Text: e.Key, Score: e.Score}
	}
	return out
}
