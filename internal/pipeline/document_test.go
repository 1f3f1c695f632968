package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateAnchor - Slug Tests
// ---------------------------------------------------------------------------

func TestGenerateAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "punctuation stripped and spaces hyphenated",
			text: "Hello, World",
			want: "hello-world",
		},
		{
			name: "already lowercase single word",
			text: "overview",
			want: "overview",
		},
		{
			name: "mixed case folded",
			text: "Getting Started",
			want: "getting-started",
		},
		{
			name: "hyphen runs collapsed",
			text: "a - b -- c",
			want: "a-b-c",
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  padded  ",
			want: "padded",
		},
		{
			name: "identical text yields identical anchor",
			text: "Examples",
			want: "examples",
		},
		{
			name: "unicode letters kept",
			text: "Résumé Notes",
			want: "résumé-notes",
		},
		{
			name: "cjk heading kept",
			text: "概要",
			want: "概要",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := GenerateAnchor(tt.text); got != tt.want {
				t.Errorf("GenerateAnchor(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTitleFromSourceName - Fallback Title Tests
// ---------------------------------------------------------------------------

func TestTitleFromSourceName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "hyphens and underscores become spaces",
			source: "user-guide_v2.md",
			want:   "user guide v2",
		},
		{
			name:   "directory stripped",
			source: "docs/notes.md",
			want:   "notes",
		},
		{
			name:   "empty name falls back",
			source: "",
			want:   "Untitled",
		},
		{
			name:   "extension only falls back",
			source: ".md",
			want:   "Untitled",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TitleFromSourceName(tt.source); got != tt.want {
				t.Errorf("TitleFromSourceName(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssemble - Full Pipeline Tests
// ---------------------------------------------------------------------------

func TestAssemble(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"# Report",
		"",
		"Hello **world**.",
		"",
		"## Numbers",
		"",
		"```python",
		"print(1)",
		"```",
	}, "\n")

	doc := NewAssembler().Assemble(content, "report.md")

	if doc.Title != "Report" {
		t.Errorf("Title = %q, want %q", doc.Title, "Report")
	}

	wantSections := []Section{
		{Title: "Report", Anchor: "report", Level: 1},
		{Title: "Numbers", Anchor: "numbers", Level: 2},
	}
	if len(doc.Sections) != len(wantSections) {
		t.Fatalf("got %d sections, want %d", len(doc.Sections), len(wantSections))
	}
	for i, want := range wantSections {
		if doc.Sections[i] != want {
			t.Errorf("Sections[%d] = %+v, want %+v", i, doc.Sections[i], want)
		}
	}

	wantContains := []string{
		`<h1 id="report">Report</h1>`,
		"<p>Hello <strong>world</strong>.</p>",
		`<h2 id="numbers">Numbers</h2>`,
		"<pre><code>print(1)</code></pre>",
	}
	for _, want := range wantContains {
		if !strings.Contains(doc.HTML, want) {
			t.Errorf("HTML = %q, want to contain %q", doc.HTML, want)
		}
	}
	if strings.Contains(doc.HTML, "<span") {
		t.Errorf("unrecognized language must not be highlighted: %q", doc.HTML)
	}
}

func TestAssemble_HeadingInsideCodeBlockIgnored(t *testing.T) {
	t.Parallel()

	content := "# Real\n\n```\n# not a heading\n```"
	doc := NewAssembler().Assemble(content, "x.md")

	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}
	if doc.Sections[0].Anchor != "real" {
		t.Errorf("Sections[0].Anchor = %q, want %q", doc.Sections[0].Anchor, "real")
	}
	if !strings.Contains(doc.HTML, "# not a heading") {
		t.Errorf("code body altered: %q", doc.HTML)
	}
}

func TestAssemble_NoTitleFallsBackToSourceName(t *testing.T) {
	t.Parallel()

	doc := NewAssembler().Assemble("just a paragraph", "release-notes.md")
	if doc.Title != "release notes" {
		t.Errorf("Title = %q, want %q", doc.Title, "release notes")
	}
	if len(doc.Sections) != 0 {
		t.Errorf("got %d sections, want 0", len(doc.Sections))
	}
}

func TestAssemble_DuplicateHeadingsCollide(t *testing.T) {
	t.Parallel()

	doc := NewAssembler().Assemble("# Setup\n\n## Notes\n\n## Notes", "x.md")

	var anchors []string
	for _, s := range doc.Sections {
		if s.Title == "Notes" {
			anchors = append(anchors, s.Anchor)
		}
	}
	if len(anchors) != 2 || anchors[0] != anchors[1] {
		t.Errorf("duplicate headings must share an anchor, got %v", anchors)
	}
	if n := strings.Count(doc.HTML, `id="notes"`); n != 2 {
		t.Errorf("got %d elements with id=notes, want 2", n)
	}
}

func TestAssemble_EmphasisInsideHeading(t *testing.T) {
	t.Parallel()

	doc := NewAssembler().Assemble("# A **Bold** Title", "x.md")
	if !strings.Contains(doc.HTML, `<h1 id="a-bold-title">A <strong>Bold</strong> Title</h1>`) {
		t.Errorf("HTML = %q, want anchored heading with inline formatting", doc.HTML)
	}
	if doc.Title != "A **Bold** Title" {
		t.Errorf("Title = %q, want raw heading text", doc.Title)
	}
}
