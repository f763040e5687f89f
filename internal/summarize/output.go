package summarize

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtnitsch/article-summarizer/models"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const summaryHeader = "\n\nSUMMARY :\n\n\n"

// WriteSummary renders summary to w in the given format.
func WriteSummary(w io.Writer, summary *models.Summary, format string) error {
	switch format {
	case FormatText, "":
		return writeText(w, summary)
	case FormatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText prints the header line followed by one sentence per line.
func writeText(w io.Writer, summary *models.Summary) error {
	if _, err := io.WriteString(w, summaryHeader); err != nil {
		return err
	}
	for _, line := range summary.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
