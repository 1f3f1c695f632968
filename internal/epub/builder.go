// Package epub assembles the ePub container: the four XML package
// documents plus the zip archive with its ordering and compression
// constraints.
package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"
)

// mimetypeContent is the required content of the first archive member.
const mimetypeContent = "application/epub+zip"

// Archive member names, in required order.
const (
	mimetypeName  = "mimetype"
	containerName = "META-INF/container.xml"
	opfName       = "content.opf"
	ncxName       = "toc.ncx"
	contentName   = "content.html"
)

// Section is one table-of-contents entry. Only levels 1-2 are surfaced in
// the navigation document.
type Section struct {
	Title  string
	Anchor string
	Level  int
}

// Book holds everything needed to render the package documents.
type Book struct {
	Title      string
	Stem       string // output filename stem, used for the identifier
	SourceName string // source filename, referenced in the description
	Creator    string
	Language   string
	Sections   []Section
	HTML       string    // assembled content fragment
	ExtraCSS   string    // appended after the builder's base stylesheet
	Modified   time.Time // identifier date and modification timestamp
}

// Builder renders ePub archives. The stylesheet is fixed at construction
// and embedded into every content document the builder produces.
type Builder struct {
	css string
}

// NewBuilder creates a Builder with the given stylesheet.
func NewBuilder(css string) *Builder {
	return &Builder{css: css}
}

// Bytes renders the full archive into memory.
func (b *Builder) Bytes(book *Book) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.WriteTo(&buf, book); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the archive to w: the mimetype member first and stored
// without compression, then the four deflate-compressed members in their
// required order. Both constraints come from the ePub container format;
// violating either produces an archive many readers reject.
func (b *Builder) WriteTo(w io.Writer, book *Book) error {
	zw := zip.NewWriter(w)

	mw, err := zw.CreateHeader(&zip.FileHeader{
		Name:   mimetypeName,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("creating mimetype member: %w", err)
	}
	if _, err := io.WriteString(mw, mimetypeContent); err != nil {
		return fmt.Errorf("writing mimetype member: %w", err)
	}

	members := []struct {
		name    string
		content string
	}{
		{containerName, containerXML},
		{opfName, renderOPF(book)},
		{ncxName, renderNCX(book)},
		{contentName, b.renderContent(book)},
	}
	for _, m := range members {
		fw, err := zw.Create(m.name)
		if err != nil {
			return fmt.Errorf("creating %s member: %w", m.name, err)
		}
		if _, err := io.WriteString(fw, m.content); err != nil {
			return fmt.Errorf("writing %s member: %w", m.name, err)
		}
	}

	return zw.Close()
}
