package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// codeBlockMarker is the parking slot left in place of a rendered code
// block. It starts with '<' so every later line machine passes it through
// untouched; RestoreCodeBlocks swaps the rendered HTML back in after the
// paragraph machine has run.
const codeBlockMarker = "<!--code-block:%d-->"

// Span placeholders use Unicode Private Use Area characters so that a
// highlighting pass can never match text inserted by an earlier pass
// (the literal word "class" in span markup is itself a keyword). The
// placeholders become <span> tags once all passes have run.
const (
	spanStartPlaceholder = "" // followed by the category name
	spanOpenPlaceholder  = "" // closes the opening marker
	spanEndPlaceholder   = ""
)

// Precompiled regex patterns for fenced blocks and highlighting passes.
var (
	// Fenced block with optional language tag, non-greedy across the document
	fencedBlockPattern = regexp.MustCompile("(?s)```([A-Za-z0-9+#.-]*)[ \t]*\n(.*?)```")

	// Highlighting passes, applied in order on escaped code
	lineCommentPattern  = regexp.MustCompile(`(?m)//.*$`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	stringPattern       = regexp.MustCompile(`&quot;[^\n]*?&quot;`)
	annotationPattern   = regexp.MustCompile(`@[A-Za-z_]\w*`)
	numberPattern       = regexp.MustCompile(`\b\d+\b`)
	methodCallPattern   = regexp.MustCompile(`(\w+)\(`)

	keywordPattern = regexp.MustCompile(`\b(` + strings.Join(codeKeywords, "|") + `)\b`)
	typePattern    = regexp.MustCompile(`\b(` + strings.Join(codeTypes, "|") + `)\b`)
)

// highlightLanguages is the fixed set of recognized language tags.
// Anything else falls back to HTML escaping with no highlighting spans.
var highlightLanguages = map[string]bool{
	"java":   true,
	"kotlin": true,
}

// codeKeywords is the fixed keyword list shared by the recognized languages.
var codeKeywords = []string{
	"abstract", "break", "case", "catch", "class", "companion", "const",
	"continue", "data", "default", "do", "else", "enum", "extends", "false",
	"final", "finally", "for", "fun", "if", "implements", "import", "in",
	"instanceof", "interface", "internal", "is", "new", "null", "object",
	"override", "package", "private", "protected", "public", "return",
	"sealed", "static", "super", "switch", "synchronized", "this", "throw",
	"throws", "true", "try", "val", "var", "void", "when", "while",
}

// codeTypes is the fixed type-name list shared by the recognized languages.
var codeTypes = []string{
	"Any", "Array", "Boolean", "Byte", "Char", "Double", "Float", "Int",
	"Integer", "List", "Long", "Map", "Object", "Set", "Short", "String",
	"StringBuilder", "Unit",
}

// CodeBlockHighlighter renders fenced code blocks into finished HTML and
// parks the result behind marker comments so the block machines never see
// fence delimiters, list markers, or table pipes from code content.
type CodeBlockHighlighter struct{}

// Render replaces every fenced block in content with a marker comment and
// returns the transformed text together with the rendered blocks, indexed
// by marker number.
func (h *CodeBlockHighlighter) Render(content string) (string, []string) {
	var blocks []string
	out := fencedBlockPattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := fencedBlockPattern.FindStringSubmatch(m)
		body := strings.TrimSuffix(sub[2], "\n")
		blocks = append(blocks, renderCodeBlock(sub[1], body))
		return fmt.Sprintf(codeBlockMarker, len(blocks)-1)
	})
	return out, blocks
}

// RestoreCodeBlocks swaps the rendered code blocks back into content,
// replacing the marker comments left by Render.
func RestoreCodeBlocks(content string, blocks []string) string {
	for i, block := range blocks {
		content = strings.Replace(content, fmt.Sprintf(codeBlockMarker, i), block, 1)
	}
	return content
}

// renderCodeBlock escapes the body and, for a recognized language tag,
// applies the highlighting passes.
func renderCodeBlock(lang, body string) string {
	escaped := EscapeHTML(body)
	lang = strings.ToLower(lang)
	if !highlightLanguages[lang] {
		return "<pre><code>" + escaped + "</code></pre>"
	}
	return `<pre><code class="lang-` + lang + `">` + highlightCode(escaped) + "</code></pre>"
}

// highlightCode wraps recognized lexical categories in category-tagged
// spans. Passes run in a fixed order: comments, strings, annotations,
// numbers, keywords, types, method calls. Later passes may re-wrap text
// already inside an earlier span, so a keyword inside a string literal is
// also highlighted. String matching is not escape-aware: a quote inside a
// string is treated as its terminator.
func highlightCode(code string) string {
	code = lineCommentPattern.ReplaceAllString(code, spanWrap("com", "$0"))
	code = blockCommentPattern.ReplaceAllString(code, spanWrap("com", "$0"))
	code = stringPattern.ReplaceAllString(code, spanWrap("str", "$0"))
	code = annotationPattern.ReplaceAllString(code, spanWrap("ann", "$0"))
	code = numberPattern.ReplaceAllString(code, spanWrap("num", "$0"))
	code = keywordPattern.ReplaceAllString(code, spanWrap("kw", "$1"))
	code = typePattern.ReplaceAllString(code, spanWrap("ty", "$1"))
	code = methodCallPattern.ReplaceAllString(code, spanWrap("fn", "$1")+"(")
	return convertSpanPlaceholders(code)
}

// spanWrap builds a placeholder-wrapped replacement for a highlighting pass.
func spanWrap(category, repl string) string {
	return spanStartPlaceholder + category + spanOpenPlaceholder + repl + spanEndPlaceholder
}

// convertSpanPlaceholders converts placeholder markers to <span> tags.
func convertSpanPlaceholders(code string) string {
	code = strings.ReplaceAll(code, spanStartPlaceholder, `<span class="hl-`)
	code = strings.ReplaceAll(code, spanOpenPlaceholder, `">`)
	code = strings.ReplaceAll(code, spanEndPlaceholder, "</span>")
	return code
}
