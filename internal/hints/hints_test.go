package hints

import (
	"strings"
	"testing"
)

func TestHintFormatting(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"source": ForSourceNotFound(),
		"config": ForConfigNotFound(),
		"output": ForOutputWrite(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint = %q, want leading newline and hint prefix", name, hint)
		}
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleNotFound([]string{"default", "plain"})
	if !strings.Contains(got, "default, plain") {
		t.Errorf("ForStyleNotFound() = %q, want joined style list", got)
	}
}
