package sanitize

import (
	"strings"
	"testing"
)

func TestStrictStripsAllMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"  padded  ", "padded"},
		{"<script>alert('xss')</script>hello", "hello"},
		{"<b>bold</b> name", "bold name"},
		{"<img src=x onerror=alert(1)>Alice", "Alice"},
		{"<p>nested <strong>tags</strong></p>", "nested tags"},
	}

	for _, tc := range cases {
		if got := Strict(tc.in, 0); got != tc.want {
			t.Errorf("Strict(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStrictClampsLength(t *testing.T) {
	long := strings.Repeat("a", 250)
	if got := Strict(long, 200); len(got) != 200 {
		t.Errorf("expected 200 chars, got %d", len(got))
	}

	// clamp counts runes, not bytes
	devanagari := strings.Repeat("न", 10)
	if got := Strict(devanagari, 5); len([]rune(got)) != 5 {
		t.Errorf("expected 5 runes, got %d", len([]rune(got)))
	}

	// truncation landing on a space must not leave trailing whitespace
	if got := Strict("ab cd", 3); got != "ab" {
		t.Errorf(`Strict("ab cd", 3) = %q, want "ab"`, got)
	}
}

func TestRichKeepsFormattingOnly(t *testing.T) {
	in := "<p>intro</p><script>evil()</script><ul><li><strong>point</strong></li></ul><a href='x'>link</a>"
	got := Rich(in)

	for _, keep := range []string{"<p>", "<ul>", "<li>", "<strong>"} {
		if !strings.Contains(got, keep) {
			t.Errorf("expected %s to survive, got %q", keep, got)
		}
	}
	for _, drop := range []string{"<script>", "evil()", "<a "} {
		if strings.Contains(got, drop) {
			t.Errorf("expected %s to be stripped, got %q", drop, got)
		}
	}
}

func TestRichStripsAttributes(t *testing.T) {
	got := Rich(`<p onclick="evil()">text</p>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("attributes should be stripped, got %q", got)
	}
	if !strings.Contains(got, "<p>text</p>") {
		t.Errorf("element should survive without attributes, got %q", got)
	}
}

// Sanitizing already-sanitized input must be a no-op, otherwise stored
// values would drift on every update.
func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"plain operative name",
		"<script>x</script>clean",
		"<p>rich <strong>text</strong></p>",
		"ab cd",
		"padded  tail   ",
	}

	for _, in := range inputs {
		for _, maxLen := range []int{0, 3, 200} {
			once := Strict(in, maxLen)
			if twice := Strict(once, maxLen); twice != once {
				t.Errorf("Strict(_, %d) not idempotent: %q -> %q", maxLen, once, twice)
			}
		}
		onceR := Rich(in)
		if twiceR := Rich(onceR); twiceR != onceR {
			t.Errorf("Rich not idempotent: %q -> %q", onceR, twiceR)
		}
	}
}
