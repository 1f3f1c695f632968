package epub

import (
	"fmt"
	"strings"
)

// maxNavLevel is the deepest heading level surfaced in the navigation
// document.
const maxNavLevel = 2

// ncxTemplate is the NCX navigation document skeleton.
const ncxTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE ncx PUBLIC "-//NISO//DTD ncx 2005-1//EN" "http://www.daisy.org/z3986/2005/ncx/">
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="%s"/>
    <meta name="dtb:depth" content="%d"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle>
    <text>%s</text>
  </docTitle>
  <navMap>
%s  </navMap>
</ncx>
`

// navPointTemplate is one navigation point inside the navMap.
const navPointTemplate = `    <navPoint id="navpoint-%d" playOrder="%d">
      <navLabel>
        <text>%s</text>
      </navLabel>
      <content src="%s"/>
    </navPoint>
`

// renderNCX renders the navigation document: a root navigation point for
// the whole document, then one point per outline entry at level <= 2, with
// strictly increasing play order starting at 1.
func renderNCX(book *Book) string {
	var navMap strings.Builder
	playOrder := 1
	navMap.WriteString(fmt.Sprintf(navPointTemplate,
		playOrder, playOrder, escapeXML(book.Title), contentName))

	for _, s := range book.Sections {
		if s.Level > maxNavLevel {
			continue
		}
		playOrder++
		src := contentName
		if s.Anchor != "" {
			src += "#" + s.Anchor
		}
		navMap.WriteString(fmt.Sprintf(navPointTemplate,
			playOrder, playOrder, escapeXML(s.Title), escapeXML(src)))
	}

	return fmt.Sprintf(ncxTemplate,
		escapeXML(bookIdentifier(book)), maxNavLevel, escapeXML(book.Title), navMap.String())
}
