// Package ingest normalizes raw job-description input before extraction:
// pasted text, pasted HTML, or a posting URL.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	fetchTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a fetched page is read.
	maxBodyBytes = 2 << 20
)

var blankLinesRE = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes line endings, trims trailing whitespace per line,
// and collapses runs of blank lines.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	content = blankLinesRE.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// LooksLikeHTML reports whether the input appears to be an HTML document
// rather than plain text.
func LooksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	return strings.HasPrefix(trimmed, "<!doctype html") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.Contains(trimmed, "<body")
}

// StripHTML extracts the visible text from an HTML document, dropping
// script, style, and nav/footer chrome.
func StripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	text := sb.String()
	if text == "" {
		text = doc.Text()
	}
	return CleanText(text), nil
}

// Normalize prepares pasted input for extraction: HTML is stripped to
// text, plain text is cleaned in place.
func Normalize(input string) (string, error) {
	if LooksLikeHTML(input) {
		return StripHTML(input)
	}
	return CleanText(input), nil
}

// FetchURL downloads a job posting and returns its visible text.
func FetchURL(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "resumes/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return StripHTML(string(body))
}
