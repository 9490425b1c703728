package utils

import (
	"strings"
	"testing"
)

func TestTruncateText(t *testing.T) {
	if got := TruncateText("short", 100); got != "short" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("a", 99) + " bcdef"
	got := TruncateText(long, 100)
	if got != strings.Repeat("a", 99)+"..." {
		t.Fatalf("got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("We serve **Lawrence**.")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<strong>Lawrence</strong>") || !strings.HasPrefix(html, "<p>") {
		t.Fatalf("unexpected html %q", html)
	}
}
