package models

// Document is the text a summary is computed from. Text keeps the original
// casing for sentence splitting and display; Normalized is the lowercase,
// punctuation and digit free copy used for word counting.
type Document struct {
	URL        string
	Text       string
	Normalized string
}
