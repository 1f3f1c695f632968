// Package pipeline implements the Markdown-to-HTML conversion stages.
//
// The stages run in a fixed order over one in-memory document:
//   - Markdown preprocessing (line ending normalization, blank line compression)
//   - Fenced code block rendering and syntax highlighting
//   - Heading anchor annotation
//   - Inline span formatting (bold, italic, inline code)
//   - Block structuring (tables, lists, blockquotes, paragraphs)
//
// Every stage is a total function over arbitrary text: malformed Markdown
// degrades to literal or partially-structured HTML instead of failing.
// ePub container assembly is handled separately by internal/epub, which
// receives the finished HTML fragment together with the section outline.
package pipeline
