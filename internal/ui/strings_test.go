package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Sunflowers", 20, "Sunflowers"},
		{"trims", "  Sunflowers ", 20, "Sunflowers"},
		{"ellipsis", "Wheat Field with Cypresses", 10, "Wheat F..."},
		{"tiny_limit", "Irises", 2, "Ir"},
		{"no_limit", "Irises", 0, "Irises"},
		{"runes", "Éléphant blanc", 6, "Élé..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	if got := truncateMiddle("https://x/abcdefgh.jpg", 11); got != "https…h.jpg" {
		t.Fatalf("truncateMiddle = %q, want https…h.jpg", got)
	}
	if got := truncateMiddle("short", 11); got != "short" {
		t.Fatalf("truncateMiddle = %q, want short", got)
	}
}

func TestOrFallback(t *testing.T) {
	if got := orFallback(" ", "Untitled"); got != "Untitled" {
		t.Fatalf("orFallback blank = %q, want Untitled", got)
	}
	if got := orFallback("Irises", "Untitled"); got != "Irises" {
		t.Fatalf("orFallback = %q, want Irises", got)
	}
}
