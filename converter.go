package md2epub

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2epub/internal/assets"
	"github.com/alnah/go-md2epub/internal/epub"
	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
)

// Converter orchestrates the markdown-to-ePub conversion pipeline.
// Create with NewConverter and use Convert for conversion.
//
// A Converter is safe for reuse across conversions; the pipeline holds no
// per-document state.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
	assembler    *pipeline.Assembler
	builder      *epub.Builder
	now          func() time.Time // stubbed in tests for stable timestamps
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle).
// Returns error if style resolution fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		preprocessor: &pipeline.LinePreprocessor{},
		assembler:    pipeline.NewAssembler(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// The stylesheet is fixed from here on; the builder never mutates it.
	c.builder = epub.NewBuilder(c.cfg.resolvedStyle)

	return c, nil
}

// Convert runs the full pipeline and returns the archive bytes together
// with the intermediate HTML fragment. The context is used for
// cancellation between stages.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc := c.assembler.Assemble(content, input.SourceName)

	book := c.toBook(doc, input)
	data, err := c.builder.Bytes(book)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageAssembly, err)
	}

	return &ConvertResult{
		EPUB:     data,
		HTML:     []byte(doc.HTML),
		Title:    book.Title,
		Sections: toSections(doc.Sections),
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to
// CSS content. Called during NewConverter after options are applied.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> embedded assets
	css, err := assets.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// toBook converts the assembled document and input into the package
// builder's book, applying the fixed metadata defaults.
func (c *Converter) toBook(doc *pipeline.Document, input Input) *epub.Book {
	book := &epub.Book{
		Title:      doc.Title,
		Stem:       sourceStem(input.SourceName),
		SourceName: sourceBase(input.SourceName),
		Creator:    DefaultCreator,
		Language:   DefaultLanguage,
		HTML:       doc.HTML,
		ExtraCSS:   input.CSS,
		Modified:   c.now(),
	}

	if m := input.Metadata; m != nil {
		if m.Title != "" {
			book.Title = m.Title
		}
		if m.Creator != "" {
			book.Creator = m.Creator
		}
		if m.Language != "" {
			book.Language = m.Language
		}
	}

	book.Sections = make([]epub.Section, len(doc.Sections))
	for i, s := range doc.Sections {
		book.Sections[i] = epub.Section(s)
	}

	return book
}

// toSections converts pipeline sections to the public type.
func toSections(sections []pipeline.Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section(s)
	}
	return out
}

// sourceBase returns the base filename of the source, or a stable
// placeholder when no source name was provided.
func sourceBase(name string) string {
	if strings.TrimSpace(name) == "" {
		return "document.md"
	}
	return filepath.Base(name)
}

// sourceStem returns the source base name without its extension.
func sourceStem(name string) string {
	base := sourceBase(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
