package pipeline

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// fallbackTitle is used when neither the content nor the source name
// yields a usable title.
const fallbackTitle = "Untitled"

// Precompiled regex patterns for headings and anchors.
var (
	// First level-1 heading anywhere in the document
	titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

	// Heading lines, levels 1-4
	headingLinePattern = regexp.MustCompile(`(?m)^(#{1,4})\s+(.+)$`)

	// Characters stripped from anchor slugs. Unicode letters and digits
	// are word characters here so non-ASCII headings keep usable anchors.
	anchorInvalidChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

	// Whitespace/hyphen runs collapsed to a single hyphen
	anchorSeparatorRuns = regexp.MustCompile(`[\s-]+`)
)

// Section is one heading occurrence in the document outline.
type Section struct {
	Title  string
	Anchor string
	Level  int
}

// Document is the assembled result: the extracted title, the heading
// outline, and the finished HTML fragment.
type Document struct {
	Title    string
	Sections []Section
	HTML     string
}

// Assembler orchestrates the transformation stages in a fixed order and
// extracts the title and section outline used for the table of contents.
type Assembler struct {
	highlighter *CodeBlockHighlighter
	inline      *InlineFormatter
	blocks      *BlockStructurer
}

// NewAssembler creates an Assembler with the default stages.
func NewAssembler() *Assembler {
	return &Assembler{
		highlighter: &CodeBlockHighlighter{},
		inline:      &InlineFormatter{},
		blocks:      &BlockStructurer{},
	}
}

// Assemble runs the full pipeline over content and returns the document.
//
// Code blocks are rendered and parked first so no later stage can corrupt
// fence-protected content; the outline is extracted from the parked text
// so a heading-shaped line inside a code block never becomes a section.
func (a *Assembler) Assemble(content, sourceName string) *Document {
	content, blocks := a.highlighter.Render(content)

	doc := &Document{
		Title:    extractTitle(content, sourceName),
		Sections: extractSections(content),
	}

	content = annotateHeadings(content)
	content = a.inline.FormatInline(content)
	content = a.blocks.StructureBlocks(content)
	content = RestoreCodeBlocks(content, blocks)

	doc.HTML = content
	return doc
}

// GenerateAnchor derives a fragment-safe slug from heading text: lowercase,
// characters outside word-characters/whitespace/hyphen stripped, then
// whitespace/hyphen runs collapsed to a single hyphen. Pure function of the
// text: identical headings produce identical, colliding anchors.
func GenerateAnchor(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = anchorInvalidChars.ReplaceAllString(s, "")
	s = anchorSeparatorRuns.ReplaceAllString(s, "-")
	return s
}

// TitleFromSourceName derives a display title from a source filename:
// the extension is dropped and hyphens/underscores become spaces.
func TitleFromSourceName(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	stem = strings.TrimSpace(stem)
	if stem == "" || stem == "." {
		return fallbackTitle
	}
	return stem
}

// extractTitle returns the first level-1 heading, falling back to a title
// derived from the source filename.
func extractTitle(content, sourceName string) string {
	if m := titlePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return TitleFromSourceName(sourceName)
}

// extractSections collects every heading line (levels 1-4) in document
// order, paired with its anchor slug and level.
func extractSections(content string) []Section {
	var sections []Section
	for _, m := range headingLinePattern.FindAllStringSubmatch(content, -1) {
		text := strings.TrimSpace(m[2])
		sections = append(sections, Section{
			Title:  text,
			Anchor: GenerateAnchor(text),
			Level:  len(m[1]),
		})
	}
	return sections
}

// annotateHeadings converts heading lines to anchored heading tags.
// Inline formatting runs afterwards, so spans inside heading text are
// still formatted in place.
func annotateHeadings(content string) string {
	return headingLinePattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := headingLinePattern.FindStringSubmatch(m)
		level := len(sub[1])
		text := strings.TrimSpace(sub[2])
		return fmt.Sprintf("<h%d id=%q>%s</h%d>", level, GenerateAnchor(text), text, level)
	})
}
