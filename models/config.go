// Package models defines data structures for configuration and summaries.
package models

import "time"

// DefaultSentenceCount is the summary length used when none is requested.
const DefaultSentenceCount = 25

// ExtractMode selects which part of the page paragraphs are collected from.
type ExtractMode string

const (
	// ExtractParagraphs collects every <p> element in the document.
	ExtractParagraphs ExtractMode = "paragraphs"
	// ExtractArticle collects <p> elements from the readability article body only.
	ExtractArticle ExtractMode = "article"
)

// SummarizeConfig holds runtime configuration for a summarize run.
// All values come from CLI flags, not external config files.
type SummarizeConfig struct {
	URL            string
	File           string
	SentenceCount  int
	KeywordCount   int
	Timeout        time.Duration
	UserAgent      string
	Extract        ExtractMode
	StopWordsFile  string
	Format         string
	DetectLanguage bool
}
