package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for inline spans.
var (
	// Bold: **text**
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// Italic: *text* or _text_
	italicStarPattern       = regexp.MustCompile(`\*([^*\n]+?)\*`)
	italicUnderscorePattern = regexp.MustCompile(`_([^_\n]+?)_`)

	// Inline code: `text`
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
)

// InlineFormatter rewrites inline Markdown spans within already
// fence-protected text.
type InlineFormatter struct{}

// FormatInline applies the inline substitutions in a fixed order: bold,
// then italic (star form before underscore form), then inline code.
//
// Each pass is an independent regex substitution, not a tokenizer. Inline
// code runs last so finished code spans are not searched for emphasis
// markers, but backtick contents are not protected from the earlier
// passes: an asterisk pair inside inline code still becomes emphasis.
func (f *InlineFormatter) FormatInline(content string) string {
	content = boldPattern.ReplaceAllString(content, "<strong>$1</strong>")
	content = italicStarPattern.ReplaceAllString(content, "<em>$1</em>")
	content = italicUnderscorePattern.ReplaceAllString(content, "<em>$1</em>")
	content = inlineCodePattern.ReplaceAllString(content, "<code>$1</code>")
	return content
}

// EscapeHTML escapes the characters that would otherwise be interpreted
// as markup inside an HTML document. Double quotes are included so that
// escaped text can be searched with plain regexes without colliding with
// attribute quoting in generated tags.
//
// Not idempotent: applying it to already-escaped text escapes the
// ampersands a second time.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
