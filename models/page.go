package models

import "strings"

// Page represents the paragraph content extracted from a single web page.
type Page struct {
	URL        string   `json:"url"`
	Title      string   `json:"title,omitempty"`
	Byline     string   `json:"byline,omitempty"`
	SiteName   string   `json:"site_name,omitempty"`
	Paragraphs []string `json:"paragraphs"`
}

// ToPlainText joins the raw text of every paragraph with a single space.
// Citation markers and whitespace are cleaned by the parser, not here.
func (p *Page) ToPlainText() string {
	return strings.Join(p.Paragraphs, " ")
}
