package epub

import (
	"fmt"
	"regexp"
	"strings"
)

// opfTemplate is the OPF package document: metadata, a two-entry manifest
// (content document and NCX), and a single-item spine.
const opfTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" unique-identifier="BookId" version="2.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:opf="http://www.idpf.org/2007/opf">
    <dc:identifier id="BookId">%s</dc:identifier>
    <dc:title>%s</dc:title>
    <dc:creator opf:role="aut">%s</dc:creator>
    <dc:language>%s</dc:language>
    <dc:date>%s</dc:date>
    <dc:description>Converted from %s</dc:description>
    <meta property="dcterms:modified">%s</meta>
  </metadata>
  <manifest>
    <item id="content" href="content.html" media-type="application/xhtml+xml"/>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="content"/>
  </spine>
</package>
`

// identifierSeparators collapses the character runs replaced by hyphens
// in the derived identifier.
var identifierSeparators = regexp.MustCompile(`[\s_]+`)

// renderOPF renders the OPF package document for book.
func renderOPF(book *Book) string {
	return fmt.Sprintf(opfTemplate,
		escapeXML(bookIdentifier(book)),
		escapeXML(book.Title),
		escapeXML(book.Creator),
		escapeXML(book.Language),
		book.Modified.Format("2006-01-02"),
		escapeXML(book.SourceName),
		book.Modified.UTC().Format("2006-01-02T15:04:05Z"),
	)
}

// bookIdentifier derives the package identifier: the lowercase-hyphenated
// filename stem joined with the ISO date.
func bookIdentifier(book *Book) string {
	stem := strings.ToLower(strings.TrimSpace(book.Stem))
	stem = identifierSeparators.ReplaceAllString(stem, "-")
	if stem == "" {
		stem = "document"
	}
	return stem + "-" + book.Modified.Format("2006-01-02")
}
