// Package markdown derives display text from raw note content: a title, a
// short preview, and a list snippet. The functions are pure and never look
// at the store.
package markdown

import (
	"regexp"
	"strings"
)

const (
	TitleMaxRunes   = 30
	PreviewMaxRunes = 150

	FallbackTitle   = "Untitled Note"
	FallbackPreview = "No preview available"
	FallbackSnippet = "No content"
)

var (
	leadingHeading = regexp.MustCompile(`^#\s+(.*)`)
	headingLine    = regexp.MustCompile(`(?m)^#.+`)
	fencedCode     = regexp.MustCompile("(?s)```.*?```")
	link           = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	emphasis       = regexp.MustCompile("\\*\\*|\\*|~~|_|`")
)

// ExtractTitle returns the text of a heading that opens the document,
// otherwise the first line (truncated), otherwise FallbackTitle.
func ExtractTitle(md string) string {
	if m := leadingHeading.FindStringSubmatch(md); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title
		}
	}

	first, _, _ := strings.Cut(md, "\n")
	if first = strings.TrimSpace(first); first != "" {
		return truncate(first, TitleMaxRunes)
	}

	return FallbackTitle
}

// ExtractPreview strips headings, fenced code, links and emphasis markers,
// then returns the first remaining paragraph (truncated), otherwise
// FallbackPreview.
func ExtractPreview(md string) string {
	clean := headingLine.ReplaceAllString(md, "")
	clean = fencedCode.ReplaceAllString(clean, "")
	clean = link.ReplaceAllString(clean, "")
	clean = emphasis.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	para, _, _ := strings.Cut(clean, "\n\n")
	if para = strings.TrimSpace(para); para != "" {
		return truncate(para, PreviewMaxRunes)
	}

	return FallbackPreview
}

// Snippet is the raw first n runes of content, or FallbackSnippet when
// content is empty.
func Snippet(content string, n int) string {
	if content == "" {
		return FallbackSnippet
	}
	return truncate(content, n)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
