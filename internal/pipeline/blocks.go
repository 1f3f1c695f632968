package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for block-level constructs.
var (
	// List item markers (unordered and ordered)
	unorderedItemPattern = regexp.MustCompile(`^[*+-]\s+(.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s+(.*)$`)

	// Blockquote line with the marker and at most one following space
	blockquoteLinePattern = regexp.MustCompile(`^>\s?(.*)$`)

	// Table separator cell: optional colon, hyphens, optional colon
	separatorCellPattern = regexp.MustCompile(`^:?-+:?$`)
)

// listState tracks which list type is currently open.
type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

// Column alignment values emitted for table cells.
const (
	alignLeft   = "left"
	alignCenter = "center"
	alignRight  = "right"
)

// BlockStructurer converts block-level constructs into nested HTML.
//
// It runs four independent single-pass line machines in a fixed order:
// tables, lists, blockquotes, paragraphs. Tables must be resolved as whole
// blocks and lists/quotes closed before the paragraph machine would wrap
// their constituent lines individually.
type BlockStructurer struct{}

// StructureBlocks applies the four machines in order and returns the
// re-emitted line sequence.
func (b *BlockStructurer) StructureBlocks(content string) string {
	content = structureTables(content)
	content = structureLists(content)
	content = structureBlockquotes(content)
	content = wrapParagraphs(content)
	return content
}

// structureLists converts runs of list-marker lines into <ul>/<ol> blocks.
// A line matching the other list's marker closes the current list before
// opening the new one; any non-matching line closes whichever list is open.
func structureLists(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	state := listNone

	closeList := func() {
		switch state {
		case listUnordered:
			out = append(out, "</ul>")
		case listOrdered:
			out = append(out, "</ol>")
		}
		state = listNone
	}

	for _, line := range lines {
		if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
			if state == listOrdered {
				closeList()
			}
			if state == listNone {
				out = append(out, "<ul>")
				state = listUnordered
			}
			out = append(out, "<li>"+m[1]+"</li>")
			continue
		}
		if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
			if state == listUnordered {
				closeList()
			}
			if state == listNone {
				out = append(out, "<ol>")
				state = listOrdered
			}
			out = append(out, "<li>"+m[1]+"</li>")
			continue
		}
		closeList()
		out = append(out, line)
	}
	closeList() // end of input forces closure

	return strings.Join(out, "\n")
}

// structureBlockquotes converts runs of >-prefixed lines into a
// <blockquote> holding one paragraph per line, with the marker and at
// most one following space stripped.
func structureBlockquotes(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inQuote := false

	closeQuote := func() {
		if inQuote {
			out = append(out, "</blockquote>")
			inQuote = false
		}
	}

	for _, line := range lines {
		if m := blockquoteLinePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if !inQuote {
				out = append(out, "<blockquote>")
				inQuote = true
			}
			out = append(out, "<p>"+m[1]+"</p>")
			continue
		}
		closeQuote()
		out = append(out, line)
	}
	closeQuote() // end of input forces closure

	return strings.Join(out, "\n")
}

// structureTables accumulates contiguous pipe-prefixed lines and converts
// each run into a table. Runs shorter than two lines pass through
// unmodified as literal text.
func structureTables(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if len(pending) < 2 {
			out = append(out, pending...)
		} else {
			out = append(out, renderTable(pending)...)
		}
		pending = nil
	}

	for _, line := range lines {
		if isTableLine(line) {
			pending = append(pending, line)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush() // end of input flushes an open run

	return strings.Join(out, "\n")
}

// isTableLine reports whether the line belongs to a table run: it contains
// a pipe and begins with a pipe after trimming.
func isTableLine(line string) bool {
	return strings.Contains(line, "|") && strings.HasPrefix(strings.TrimSpace(line), "|")
}

// renderTable converts an accumulated run of table lines into HTML lines.
// The first line is the header; a second line matching the separator
// pattern supplies per-column alignment and is excluded from the body.
// Column count is taken from the header row. The table is wrapped in a
// horizontally-scrollable container with an explicit colgroup.
func renderTable(rows []string) []string {
	header := splitTableRow(rows[0])
	body := rows[1:]

	alignments := make([]string, len(header))
	for i := range alignments {
		alignments[i] = alignLeft
	}
	if len(body) > 0 {
		if sep := splitTableRow(body[0]); isSeparatorRow(sep) {
			for i, cell := range sep {
				if i >= len(alignments) {
					break
				}
				alignments[i] = cellAlignment(cell)
			}
			body = body[1:]
		}
	}

	var colgroup strings.Builder
	colgroup.WriteString("<colgroup>")
	for range header {
		colgroup.WriteString("<col/>")
	}
	colgroup.WriteString("</colgroup>")

	out := []string{
		`<div class="table-scroll">`,
		"<table>",
		colgroup.String(),
		"<thead>",
		renderTableRow(header, alignments, "th"),
		"</thead>",
		"<tbody>",
	}
	for _, row := range body {
		out = append(out, renderTableRow(splitTableRow(row), alignments, "td"))
	}
	out = append(out, "</tbody>", "</table>", "</div>")
	return out
}

// renderTableRow emits one <tr> line with aligned th or td cells.
// Cells beyond the alignment slice default to left.
func renderTableRow(cells, alignments []string, tag string) string {
	var sb strings.Builder
	sb.WriteString("<tr>")
	for i, cell := range cells {
		align := alignLeft
		if i < len(alignments) {
			align = alignments[i]
		}
		sb.WriteString("<" + tag + ` style="text-align:` + align + `">`)
		sb.WriteString(cell)
		sb.WriteString("</" + tag + ">")
	}
	sb.WriteString("</tr>")
	return sb.String()
}

// splitTableRow splits a table line into trimmed cells after stripping one
// leading and one trailing pipe.
func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// isSeparatorRow reports whether every cell matches the separator pattern.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !separatorCellPattern.MatchString(cell) {
			return false
		}
	}
	return true
}

// cellAlignment derives a column alignment from a separator cell:
// center when colons on both sides, right when only trailing, else left.
func cellAlignment(cell string) string {
	leading := strings.HasPrefix(cell, ":")
	trailing := strings.HasSuffix(cell, ":")
	switch {
	case leading && trailing:
		return alignCenter
	case trailing:
		return alignRight
	default:
		return alignLeft
	}
}

// wrapParagraphs wraps any line that is non-empty after trimming and does
// not already start with an HTML tag in a paragraph tag. Blank lines and
// tagged lines pass through unchanged.
func wrapParagraphs(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "<") {
			continue
		}
		lines[i] = "<p>" + line + "</p>"
	}
	return strings.Join(lines, "\n")
}
