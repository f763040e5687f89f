package summarize

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dtnitsch/article-summarizer/models"
	"github.com/dtnitsch/article-summarizer/pkg/fetcher"
	"github.com/dtnitsch/article-summarizer/pkg/tokenizer"
)

func newTestRunner(t *testing.T, config *models.SummarizeConfig) *Runner {
	t.Helper()

	srv := newArticleServer(t)
	if config.URL != "" {
		config.URL = srv.URL + config.URL
	}
	if config.Extract == "" {
		config.Extract = models.ExtractParagraphs
	}

	tok, err := tokenizer.NewEnglish()
	if err != nil {
		t.Fatalf("NewEnglish() error = %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewRunner(logger, config,
		WithFetcher(fetcher.NewFetcher(fetcher.WithHTTPClient(srv.Client()))),
		WithTokenizer(tok),
	)
}

func TestRunnerRun(t *testing.T) {
	r := newTestRunner(t, &models.SummarizeConfig{
		URL:            "/article",
		SentenceCount:  models.DefaultSentenceCount,
		KeywordCount:   2,
		DetectLanguage: true,
	})

	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(summary.Sentences) != 3 {
		t.Fatalf("got %d sentences, want 3", len(summary.Sentences))
	}
	if len(summary.TopKeywords) != 2 {
		t.Errorf("TopKeywords = %v, want 2 entries", summary.TopKeywords)
	}
	if summary.LanguageConfidence < 0 || summary.LanguageConfidence > 1 {
		t.Errorf("LanguageConfidence = %v", summary.LanguageConfidence)
	}
	if summary.Stats.DistinctWords != 5 {
		t.Errorf("DistinctWords = %d, want 5", summary.Stats.DistinctWords)
	}
	for i := 1; i < len(summary.Sentences); i++ {
		if summary.Sentences[i].Score > summary.Sentences[i-1].Score {
			t.Errorf("sentences not in descending score order: %+v", summary.Sentences)
		}
	}
}

func TestRunnerFetchError(t *testing.T) {
	r := newTestRunner(t, &models.SummarizeConfig{URL: "/gone", SentenceCount: 5})

	_, err := r.Run(context.Background())
	if !errors.Is(err, fetcher.ErrFetch) {
		t.Fatalf("Run() error = %v, want ErrFetch", err)
	}
	if exitCode(err) != exitPipeline {
		t.Errorf("exitCode() = %d, want %d", exitCode(err), exitPipeline)
	}
}

func TestRunnerCancelled(t *testing.T) {
	r := newTestRunner(t, &models.SummarizeConfig{URL: "/article", SentenceCount: 5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
}
