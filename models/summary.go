package models

// ScoredSentence is a sentence selected for the summary along with its score.
type ScoredSentence struct {
	Text  string  `json:"text" yaml:"text"`
	Score float64 `json:"score" yaml:"score"`
}

// Summary is the structured output for a single summarize run.
type Summary struct {
	URL                string           `json:"url" yaml:"url"`
	Title              string           `json:"title,omitempty" yaml:"title,omitempty"`
	Language           string           `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64          `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	Sentences          []ScoredSentence `json:"sentences" yaml:"sentences"`
	TopKeywords        []string         `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	Stats              SummaryStats     `json:"stats" yaml:"stats"`
}

// SummaryStats provides counts describing how the summary was produced.
type SummaryStats struct {
	Paragraphs       int     `json:"paragraphs" yaml:"paragraphs"`
	Sentences        int     `json:"sentences" yaml:"sentences"`
	ScoredSentences  int     `json:"scored_sentences" yaml:"scored_sentences"`
	DistinctWords    int     `json:"distinct_words" yaml:"distinct_words"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// Lines returns the summary sentences in ranked order.
func (s *Summary) Lines() []string {
	lines := make([]string, len(s.Sentences))
	for i, sentence := range s.Sentences {
		lines[i] = sentence.Text
	}
	return lines
}
