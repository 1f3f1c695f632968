// Package md2epub converts a Markdown document into an ePub e-book package.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2epub.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2epub.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    SourceName: "hello.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.epub", result.EPUB, 0644)
//
// The result contains the archive bytes (result.EPUB) and the intermediate
// HTML fragment (result.HTML) for debugging, together with the extracted
// title and section outline.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization)
//  2. Fenced code block rendering with syntax highlighting
//  3. Title and section outline extraction, heading anchors
//  4. Inline span formatting (bold, italic, inline code)
//  5. Block structuring (tables, lists, blockquotes, paragraphs)
//  6. ePub container assembly (container.xml, OPF, NCX, content document)
//
// The parsing stages are total over arbitrary text: malformed Markdown
// degrades to literal or partially-structured HTML instead of failing.
// Only container assembly and I/O can return errors.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2epub.NewConverter(
//	    md2epub.WithStyle("./custom.css"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2epub.Input{
//	    Markdown:   content,
//	    SourceName: "guide.md",
//	    CSS:        "body { font-size: 14px; }",
//	    Metadata:   &md2epub.Metadata{Creator: "Docs Team"},
//	})
package md2epub
