package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LinePreprocessor normalizes raw Markdown before the structural stages run.
type LinePreprocessor struct{}

// PreprocessMarkdown applies all transformations in order.
func (p *LinePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
// Fenced code block interiors pass through untouched: blank-line runs
// inside a fence are content, not formatting.
func compressBlankLines(content string) string {
	var b strings.Builder
	last := 0
	for _, span := range fencedBlockPattern.FindAllStringIndex(content, -1) {
		b.WriteString(multipleBlankLines.ReplaceAllString(content[last:span[0]], "\n\n"))
		b.WriteString(content[span[0]:span[1]])
		last = span[1]
	}
	b.WriteString(multipleBlankLines.ReplaceAllString(content[last:], "\n\n"))
	return b.String()
}
