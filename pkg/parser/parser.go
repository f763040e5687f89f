package parser

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/article-summarizer/models"
	"github.com/go-shiori/go-readability"
)

var (
	// ErrParse is returned when the payload cannot be parsed as markup.
	ErrParse = errors.New("failed to parse markup")
	// ErrEmptyDocument is returned when no paragraph text was found.
	ErrEmptyDocument = errors.New("document has no paragraph text")
)

var (
	citationPattern   = regexp.MustCompile(`\[[0-9]*\]`)
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}]+`)
)

type Parser struct {
	Mode models.ExtractMode
}

// Parse extracts the text of every <p> element from html. In article mode the
// search is restricted to the main content found by go-readability.
func (p *Parser) Parse(rawURL string, html []byte) (*models.Page, error) {
	page := &models.Page{URL: rawURL}

	var doc *goquery.Document
	switch p.Mode {
	case models.ExtractArticle:
		parsedURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid page URL: %v", ErrParse, err)
		}
		readabilityParser := readability.NewParser()
		article, err := readabilityParser.Parse(bytes.NewReader(html), parsedURL)
		if err != nil {
			return nil, fmt.Errorf("%w: readability: %v", ErrParse, err)
		}
		page.Title = normalizeText(article.Title)
		page.Byline = normalizeText(article.Byline)
		page.SiteName = normalizeText(article.SiteName)

		doc, err = goquery.NewDocumentFromReader(strings.NewReader(article.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	case models.ExtractParagraphs, "":
		var err error
		doc, err = goquery.NewDocumentFromReader(bytes.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		page.Title = normalizeText(doc.Find("title").First().Text())
	default:
		return nil, fmt.Errorf("unknown extract mode %q", p.Mode)
	}

	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		page.Paragraphs = append(page.Paragraphs, s.Text())
	})

	if CleanText(page.ToPlainText()) == "" {
		return nil, ErrEmptyDocument
	}
	return page, nil
}

// CleanText removes bracketed citation markers such as [12] and collapses
// every whitespace run to a single space.
func CleanText(text string) string {
	text = citationPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func normalizeText(input string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(input, " "))
}
