package summarizer

import "github.com/dtnitsch/article-summarizer/pkg/mapreduce"

// ScoreTable maps a sentence to its accumulated score and remembers the order
// in which sentences were first scored. Identical sentences share one entry.
type ScoreTable struct {
	scores map[string]float64
	order  []string
}

func NewScoreTable() *ScoreTable {
	return &ScoreTable{scores: make(map[string]float64)}
}

func (t *ScoreTable) add(sentence string, weight float64) {
	if _, ok := t.scores[sentence]; !ok {
		t.order = append(t.order, sentence)
	}
	t.scores[sentence] += weight
}

// Score returns the score of sentence and whether it was scored at all.
func (t *ScoreTable) Score(sentence string) (float64, bool) {
	s, ok := t.scores[sentence]
	return s, ok
}

func (t *ScoreTable) Len() int {
	return len(t.order)
}

// Entries returns every scored sentence in first-occurrence order.
func (t *ScoreTable) Entries() []mapreduce.Scored {
	entries := make([]mapreduce.Scored, len(t.order))
	for i, sentence := range t.order {
		entries[i] = mapreduce.Scored{Key: sentence, Score: t.scores[sentence]}
	}
	return entries
}
