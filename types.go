package md2epub

// Fixed metadata defaults, used when Input.Metadata does not override them.
const (
	DefaultCreator  = "Technical Documentation"
	DefaultLanguage = "en"
)

// DefaultStyle is the name of the built-in CSS style.
const DefaultStyle = "default"

// Input contains conversion parameters.
type Input struct {
	Markdown   string    // Markdown content (required)
	SourceName string    // Source filename; title fallback and package metadata (optional)
	CSS        string    // Extra CSS appended after the base style (optional)
	Metadata   *Metadata // Metadata overrides (optional, nil = defaults)
}

// Metadata overrides the package metadata values.
// Empty fields keep their defaults.
type Metadata struct {
	Title    string // Overrides the title extracted from the content
	Creator  string // Default: DefaultCreator
	Language string // Default: DefaultLanguage
}

// Section is one entry of the document outline: a heading with its
// derived anchor slug and level (1-4).
type Section struct {
	Title  string
	Anchor string
	Level  int
}

// ConvertResult contains the conversion output.
type ConvertResult struct {
	EPUB     []byte    // the finished archive
	HTML     []byte    // intermediate HTML fragment, for debugging
	Title    string    // extracted or derived title
	Sections []Section // heading outline in document order
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput    string
	resolvedStyle string
}

// WithStyle sets the stylesheet embedded into the content document.
// Accepts a built-in style name, a CSS file path, or literal CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}
