package summarize

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/article-summarizer/models"
	"github.com/urfave/cli/v2"
)

const articleHTML = `<html>
<head><title>Mammals</title></head>
<body>
  <nav><a href="/">Home</a></nav>
  <p>Cats are mammals.[1]</p>
  <p>Dogs are mammals too.[2] The sky is blue.</p>
  <footer>Copyright</footer>
</body>
</html>`

const sidebarSentence = "Subscribe to our newsletter for weekly updates."

// longArticleHTML has enough prose inside <article> for go-readability to pick
// it as the main content over the sidebar.
func longArticleHTML() string {
	var body strings.Builder
	for i := 0; i < 6; i++ {
		body.WriteString("<p>Cats are small carnivorous mammals, and they have lived alongside people for thousands of years. ")
		body.WriteString("They hunt rodents in farms, barns and cities, which earned them a place in homes.[4]</p>\n")
	}
	return `<html><head><title>All about cats</title></head><body>
<div class="sidebar"><p>` + sidebarSentence + `</p></div>
<article><h1>All about cats</h1>` + body.String() + `</article>
</body></html>`
}

func newArticleServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	})
	mux.HandleFunc("/long-article", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(longArticleHTML()))
	})
	mux.HandleFunc("/stopwords-only", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>The and is it. Of the.</p></body></html>"))
	})
	mux.HandleFunc("/no-paragraphs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><div>Nothing here</div></body></html>"))
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runApp runs the summarize command and returns stdout, stderr and the exit code.
func runApp(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := &cli.App{
		Name:           "article-summarizer",
		Writer:         &stdout,
		ErrWriter:      &stderr,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands:       []*cli.Command{Command()},
	}

	fullArgs := append([]string{"article-summarizer", "summarize", "--detect-language=false"}, args...)
	err := app.Run(fullArgs)

	code := 0
	if err != nil {
		var exitErr cli.ExitCoder
		if !errors.As(err, &exitErr) {
			t.Fatalf("unexpected non-exit error: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

func TestSummarizeActionText(t *testing.T) {
	srv := newArticleServer(t)

	stdout, stderr, code := runApp(t, "--url", srv.URL+"/article")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	want := "\n\nSUMMARY :\n\n\nCats are mammals.\nDogs are mammals too.\nThe sky is blue.\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, `"msg":"Summary complete"`) {
		t.Errorf("expected structured log on stderr, got %s", stderr)
	}
}

func TestSummarizeActionSentenceCount(t *testing.T) {
	srv := newArticleServer(t)

	tests := []struct {
		name  string
		count string
		lines int
	}{
		{name: "zero", count: "0", lines: 0},
		{name: "one", count: "1", lines: 1},
		{name: "more than available", count: "50", lines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runApp(t, "--url", srv.URL+"/article", "--sentences", tt.count)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr = %s", code, stderr)
			}
			if !strings.HasPrefix(stdout, summaryHeader) {
				t.Fatalf("missing header in %q", stdout)
			}
			body := strings.TrimPrefix(stdout, summaryHeader)
			if got := strings.Count(body, "\n"); got != tt.lines {
				t.Errorf("got %d summary lines, want %d", got, tt.lines)
			}
		})
	}
}

func TestSummarizeActionJSON(t *testing.T) {
	srv := newArticleServer(t)

	stdout, stderr, code := runApp(t, "--url", srv.URL+"/article", "--format", "json", "--sentences", "2", "--quiet")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if stderr != "" {
		t.Errorf("--quiet still logged: %s", stderr)
	}

	var summary models.Summary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if summary.Title != "Mammals" {
		t.Errorf("Title = %q", summary.Title)
	}
	if len(summary.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(summary.Sentences))
	}
	if summary.Sentences[0].Text != "Cats are mammals." || summary.Sentences[0].Score != 1.5 {
		t.Errorf("first sentence = %+v", summary.Sentences[0])
	}
	if summary.Stats.Paragraphs != 2 || summary.Stats.Sentences != 3 || summary.Stats.ScoredSentences != 3 {
		t.Errorf("stats = %+v", summary.Stats)
	}
	if len(summary.TopKeywords) == 0 || summary.TopKeywords[0] != "mammals:1.00" {
		t.Errorf("TopKeywords = %v", summary.TopKeywords)
	}
}

func TestSummarizeActionYAML(t *testing.T) {
	srv := newArticleServer(t)

	stdout, stderr, code := runApp(t, "--url", srv.URL+"/article", "--format", "yaml")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	for _, want := range []string{"sentences:", "text: Cats are mammals.", "scored_sentences: 3"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("YAML output missing %q:\n%s", want, stdout)
		}
	}
}

func TestSummarizeActionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.html")
	if err := os.WriteFile(path, []byte(articleHTML), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	stdout, stderr, code := runApp(t, "--file", path, "--sentences", "1")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if stdout != summaryHeader+"Cats are mammals.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestSummarizeActionStopWordsFile(t *testing.T) {
	srv := newArticleServer(t)
	path := filepath.Join(t.TempDir(), "stop.yaml")
	if err := os.WriteFile(path, []byte("stop_words: [are, is, the, too, mammals]\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	stdout, stderr, code := runApp(t, "--url", srv.URL+"/article", "--stopwords", path, "--format", "json")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	var summary models.Summary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	for _, kw := range summary.TopKeywords {
		if strings.HasPrefix(kw, "mammals:") {
			t.Errorf("custom stop word counted: %v", summary.TopKeywords)
		}
	}
}

func TestSummarizeActionExtractMode(t *testing.T) {
	srv := newArticleServer(t)

	tests := []struct {
		name        string
		mode        string
		wantSidebar bool
	}{
		{name: "paragraphs", mode: "paragraphs", wantSidebar: true},
		{name: "article", mode: "article", wantSidebar: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runApp(t, "--url", srv.URL+"/long-article", "--extract", tt.mode, "--sentences", "50")
			if code != 0 {
				t.Fatalf("exit code = %d, stderr = %s", code, stderr)
			}
			if !strings.HasPrefix(stdout, summaryHeader) {
				t.Fatalf("missing header in %q", stdout)
			}
			if !strings.Contains(stdout, "Cats are small carnivorous mammals") {
				t.Errorf("article text missing from summary: %q", stdout)
			}
			if strings.Contains(stdout, "[4]") {
				t.Errorf("citation marker left in summary: %q", stdout)
			}
			if got := strings.Contains(stdout, sidebarSentence); got != tt.wantSidebar {
				t.Errorf("sidebar sentence present = %v, want %v", got, tt.wantSidebar)
			}
		})
	}
}

func TestSummarizeActionErrors(t *testing.T) {
	srv := newArticleServer(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "no input", args: nil, wantCode: exitUsage},
		{name: "url and file", args: []string{"--url", srv.URL + "/article", "--file", "a.html"}, wantCode: exitUsage},
		{name: "invalid url", args: []string{"--url", "not a url"}, wantCode: exitUsage},
		{name: "missing file", args: []string{"--file", filepath.Join(t.TempDir(), "missing.html")}, wantCode: exitUsage},
		{name: "missing stop words file", args: []string{"--url", srv.URL + "/article", "--stopwords", "missing.yaml"}, wantCode: exitUsage},
		{name: "negative sentences", args: []string{"--url", srv.URL + "/article", "--sentences", "-1"}, wantCode: exitUsage},
		{name: "bad format", args: []string{"--url", srv.URL + "/article", "--format", "xml"}, wantCode: exitUsage},
		{name: "bad extract mode", args: []string{"--url", srv.URL + "/article", "--extract", "all"}, wantCode: exitUsage},
		{name: "http error", args: []string{"--url", srv.URL + "/gone"}, wantCode: exitPipeline},
		{name: "empty document", args: []string{"--url", srv.URL + "/no-paragraphs"}, wantCode: exitPipeline},
		{name: "empty corpus", args: []string{"--url", srv.URL + "/stopwords-only"}, wantCode: exitPipeline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := runApp(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stdout != "" {
				t.Errorf("partial output written on failure: %q", stdout)
			}
		})
	}
}
