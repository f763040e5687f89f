package summarize

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/article-summarizer/internal/common"
	"github.com/dtnitsch/article-summarizer/models"
	"github.com/dtnitsch/article-summarizer/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

const (
	exitUsage    = 1
	exitPipeline = 2
)

// Command returns the summarize subcommand.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "summarize",
		Aliases: []string{"sum"},
		Usage:   "Fetch an article and print its highest scoring sentences",
		UsageText: `article-summarizer summarize --url "https://example.com/article" [--sentences 25]
   article-summarizer summarize --file article.html --format json`,
		Flags:  Flags(),
		Action: SummarizeAction,
	}
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "article URL to summarize"},
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "local HTML file to summarize instead of a URL"},
		&cli.IntFlag{Name: "sentences", Aliases: []string{"n"}, Value: models.DefaultSentenceCount, Usage: "number of sentences in the summary"},
		&cli.IntFlag{Name: "keywords", Value: 10, Usage: "number of top keywords in json/yaml output"},
		&cli.DurationFlag{Name: "timeout", Value: 0, Usage: "HTTP timeout (0 disables it)"},
		&cli.StringFlag{Name: "user-agent", Value: fetcher.DefaultUserAgent, Usage: "User-Agent header sent with the request"},
		&cli.StringFlag{Name: "extract", Value: string(models.ExtractParagraphs), Usage: "paragraphs (every <p>) or article (readability main content)"},
		&cli.StringFlag{Name: "stopwords", Usage: "YAML file with a stop_words list replacing the built-in English set"},
		&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text, json or yaml"},
		&cli.BoolFlag{Name: "detect-language", Value: true, Usage: "detect the document language and warn when it is not English"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
	}
}

func SummarizeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	config := &models.SummarizeConfig{
		URL:            c.String("url"),
		File:           c.String("file"),
		SentenceCount:  c.Int("sentences"),
		KeywordCount:   c.Int("keywords"),
		Timeout:        c.Duration("timeout"),
		UserAgent:      c.String("user-agent"),
		Extract:        models.ExtractMode(strings.ToLower(c.String("extract"))),
		StopWordsFile:  c.String("stopwords"),
		Format:         strings.ToLower(c.String("format")),
		DetectLanguage: c.Bool("detect-language"),
	}

	if err := validateConfig(config); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v\n\nNeed help? Run: article-summarizer summarize --help", err), exitUsage)
	}

	runner := NewRunner(logger, config)
	summary, err := runner.Run(c.Context)
	if err != nil {
		logger.Error("summarize failed", "url", config.URL, "file", config.File, "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), exitCode(err))
	}

	// Render fully before writing so a failure never leaves partial output.
	var out bytes.Buffer
	if err := WriteSummary(&out, summary, config.Format); err != nil {
		logger.Error("failed to render summary", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), exitPipeline)
	}
	if _, err := c.App.Writer.Write(out.Bytes()); err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to write summary: %v", err), exitPipeline)
	}
	return nil
}

func validateConfig(config *models.SummarizeConfig) error {
	if config.URL == "" && config.File == "" {
		return errors.New("no input provided, use --url or --file")
	}
	if config.URL != "" && config.File != "" {
		return errors.New("cannot use both --url and --file")
	}
	if config.SentenceCount < 0 {
		return fmt.Errorf("--sentences must not be negative, got %d", config.SentenceCount)
	}
	if config.KeywordCount < 0 {
		return fmt.Errorf("--keywords must not be negative, got %d", config.KeywordCount)
	}
	if config.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative, got %s", config.Timeout)
	}
	switch config.Extract {
	case models.ExtractParagraphs, models.ExtractArticle:
	default:
		return fmt.Errorf("unknown --extract mode %q (want paragraphs or article)", config.Extract)
	}
	switch config.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown --format %q (want text, json or yaml)", config.Format)
	}
	return nil
}

// exitCode maps input errors to 1 and pipeline failures
// (fetch, parse, empty document, empty corpus) to 2.
func exitCode(err error) int {
	if errors.Is(err, common.ErrInvalidURL) || errors.Is(err, ErrInput) {
		return exitUsage
	}
	return exitPipeline
}
