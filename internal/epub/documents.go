package epub

import (
	"fmt"
	"strings"
)

// containerXML is the static container descriptor pointing at the OPF.
const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// contentTemplate is the XHTML content document embedding the stylesheet
// in a style block and the assembled fragment in the body.
const contentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<title>%s</title>
<style type="text/css">
%s
</style>
</head>
<body>
%s
</body>
</html>
`

// renderContent renders the content document. The builder stylesheet comes
// first so extra CSS can override it; the fragment is inserted as-is.
func (b *Builder) renderContent(book *Book) string {
	css := b.css
	if book.ExtraCSS != "" {
		css += "\n" + book.ExtraCSS
	}
	return fmt.Sprintf(contentTemplate, escapeXML(book.Title), sanitizeCSS(css), book.HTML)
}

// sanitizeCSS escapes sequences that could close the style block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// escapeXML escapes text for use in XML element content and attributes.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
