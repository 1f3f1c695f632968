package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLoadStyle - Embedded Style Tests
// ---------------------------------------------------------------------------

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{
			name:  "default style loads",
			style: DefaultStyleName,
		},
		{
			name:    "unknown style",
			style:   "nonexistent",
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "empty name rejected",
			style:   "",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "path traversal rejected",
			style:   "../secrets",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "extension rejected",
			style:   "default.css",
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle() error = %v", err)
			}
			if !strings.Contains(content, "{") {
				t.Errorf("LoadStyle() returned non-CSS content: %q", content)
			}
		})
	}
}

func TestDefaultStyleHasHighlightClasses(t *testing.T) {
	t.Parallel()

	content, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	for _, class := range []string{".hl-com", ".hl-str", ".hl-kw", ".hl-ty", ".hl-num", ".hl-ann", ".hl-fn"} {
		if !strings.Contains(content, class) {
			t.Errorf("default style missing %s rule", class)
		}
	}
}

// ---------------------------------------------------------------------------
// TestListStyles - Style Enumeration Tests
// ---------------------------------------------------------------------------

func TestListStyles(t *testing.T) {
	t.Parallel()

	names := ListStyles()
	if len(names) == 0 {
		t.Fatal("ListStyles() returned no styles")
	}

	found := false
	for _, name := range names {
		if strings.Contains(name, ".") {
			t.Errorf("ListStyles() returned name with extension: %q", name)
		}
		if name == DefaultStyleName {
			found = true
		}
	}
	if !found {
		t.Errorf("ListStyles() = %v, want to include %q", names, DefaultStyleName)
	}
}
