package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/article-summarizer/internal/common"
	"github.com/dtnitsch/article-summarizer/models"
	"github.com/dtnitsch/article-summarizer/pkg/analytics"
	"github.com/dtnitsch/article-summarizer/pkg/detector"
	"github.com/dtnitsch/article-summarizer/pkg/fetcher"
	"github.com/dtnitsch/article-summarizer/pkg/mapreduce"
	"github.com/dtnitsch/article-summarizer/pkg/parser"
	"github.com/dtnitsch/article-summarizer/pkg/storage"
	"github.com/dtnitsch/article-summarizer/pkg/summarizer"
	"github.com/dtnitsch/article-summarizer/pkg/tokenizer"
)

// ErrInput marks failures caused by local input such as a missing file.
var ErrInput = errors.New("invalid input")

// Runner executes one summarize run: load, parse, score, select.
type Runner struct {
	logger    *slog.Logger
	config    *models.SummarizeConfig
	fetcher   *fetcher.Fetcher
	storage   *storage.Storage
	parser    *parser.Parser
	tokenizer tokenizer.Tokenizer
	detector  *detector.LanguageDetector
}

// RunnerOption overrides a Runner collaborator, mostly for tests.
type RunnerOption func(*Runner)

func WithFetcher(f *fetcher.Fetcher) RunnerOption {
	return func(r *Runner) { r.fetcher = f }
}

func WithTokenizer(t tokenizer.Tokenizer) RunnerOption {
	return func(r *Runner) { r.tokenizer = t }
}

func NewRunner(logger *slog.Logger, config *models.SummarizeConfig, opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: logger,
		config: config,
		fetcher: fetcher.NewFetcher(
			fetcher.WithTimeout(config.Timeout),
			fetcher.WithUserAgent(config.UserAgent),
		),
		storage: &storage.Storage{},
		parser:  &parser.Parser{Mode: config.Extract},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run produces the complete summary. Nothing is written anywhere; the
// caller decides how to render the result.
func (r *Runner) Run(ctx context.Context) (*models.Summary, error) {
	startTime := time.Now()

	stopWords, err := r.loadStopWords()
	if err != nil {
		return nil, err
	}

	if r.tokenizer == nil {
		tok, err := tokenizer.NewEnglish()
		if err != nil {
			return nil, err
		}
		r.tokenizer = tok
	}

	docURL, html, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	page, err := r.parser.Parse(docURL, html)
	if err != nil {
		return nil, err
	}
	text := parser.CleanText(page.ToPlainText())
	r.logger.Info("Parsed document", "url", docURL, "paragraphs", len(page.Paragraphs), "chars", len(text))

	s, err := summarizer.New(docURL, text, r.tokenizer, stopWords)
	if err != nil {
		return nil, err
	}
	result, err := s.Summarize(r.config.SentenceCount)
	if err != nil {
		return nil, fmt.Errorf("summarizing %s: %w", docURL, err)
	}

	summary := &models.Summary{
		URL:         docURL,
		Title:       page.Title,
		Sentences:   result.Sentences,
		TopKeywords: mapreduce.TopKeywords(result.Histogram, r.config.KeywordCount),
		Stats: models.SummaryStats{
			Paragraphs:      len(page.Paragraphs),
			Sentences:       result.SentenceCount,
			ScoredSentences: result.Scores.Len(),
			DistinctWords:   len(result.Histogram),
		},
	}

	if r.config.DetectLanguage {
		r.detectLanguage(summary, text)
	}

	summary.Stats.TotalTimeSeconds = time.Since(startTime).Seconds()
	r.logger.Info("Summary complete",
		"url", docURL,
		"selected", len(summary.Sentences),
		"scored_sentences", summary.Stats.ScoredSentences,
		"distinct_words", summary.Stats.DistinctWords,
	)
	return summary, nil
}

func (r *Runner) loadStopWords() (analytics.StopWordSet, error) {
	if r.config.StopWordsFile == "" {
		return analytics.EnglishStopWords(), nil
	}
	stopWords, err := analytics.LoadStopWords(r.config.StopWordsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	r.logger.Info("Loaded stop words", "file", r.config.StopWordsFile, "count", len(stopWords))
	return stopWords, nil
}

// load returns the document URL and raw HTML from either the network or disk.
func (r *Runner) load(ctx context.Context) (string, []byte, error) {
	if r.config.File != "" {
		if !r.storage.HasFile(r.config.File) {
			return "", nil, fmt.Errorf("%w: file %s does not exist", ErrInput, r.config.File)
		}
		stats, err := r.storage.GetFileStats(r.config.File)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInput, err)
		}
		r.logger.Info("Reading file", "file", r.config.File, "size_bytes", stats.SizeBytes)

		html, err := r.storage.ReadFile(r.config.File)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInput, err)
		}
		docURL, err := storage.FileURL(r.config.File)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInput, err)
		}
		return docURL, html, nil
	}

	cleaned, err := common.SanitizeAndValidateURL(r.config.URL)
	if err != nil {
		return "", nil, err
	}
	if cleaned != r.config.URL {
		r.logger.Info("URL auto-cleaned", "original", r.config.URL, "url", cleaned)
	}

	r.logger.Info("Fetching URL", "url", cleaned)
	html, err := r.fetcher.GetHtmlBytes(ctx, cleaned)
	if err != nil {
		return "", nil, err
	}
	r.logger.Info("Fetched URL", "url", cleaned, "size_bytes", len(html))
	return cleaned, html, nil
}

func (r *Runner) detectLanguage(summary *models.Summary, text string) {
	if r.detector == nil {
		r.detector = detector.NewLanguageDetector()
	}
	lang, ok := r.detector.Detect(text)
	if !ok {
		r.logger.Warn("Could not determine document language", "url", summary.URL)
		return
	}
	summary.Language = lang.Code
	summary.LanguageConfidence = lang.Confidence
	if !lang.IsEnglish() {
		r.logger.Warn("Document is not English, stop words may not apply",
			"url", summary.URL, "language", lang.Name, "confidence", lang.Confidence)
	}
}
