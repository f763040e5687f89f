package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// minDetectRunes is the shortest text worth running language detection on.
const minDetectRunes = 20

// maxDetectRunes caps how much of a document is fed to the detector.
const maxDetectRunes = 5000

// LanguageResult describes the detected language of a document.
type LanguageResult struct {
	Code       string  // ISO 639-1, lowercase (e.g. "en")
	Name       string  // e.g. "English"
	Confidence float64 // 0-1
}

// IsEnglish reports whether the detected language is English.
func (r LanguageResult) IsEnglish() bool {
	return r.Code == "en"
}

// LanguageDetector wraps a lingua detector limited to a handful of languages.
// Building it loads language models, so create it once per process.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// DefaultLanguages are the languages considered when none are given.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

func NewLanguageDetector(languages ...lingua.Language) *LanguageDetector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the most likely language of text and false when the text
// is too short or no language could be determined reliably.
func (d *LanguageDetector) Detect(text string) (LanguageResult, bool) {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) < minDetectRunes {
		return LanguageResult{}, false
	}
	if len(runes) > maxDetectRunes {
		text = string(runes[:maxDetectRunes])
	}

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return LanguageResult{}, false
	}

	return LanguageResult{
		Code:       strings.ToLower(language.IsoCode639_1().String()),
		Name:       language.String(),
		Confidence: d.detector.ComputeLanguageConfidence(text, language),
	}, true
}
