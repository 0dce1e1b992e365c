package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestRenderToastSitsAtBottom(t *testing.T) {
	base := strings.Repeat("base line here......\n", 7) + "base line here......"
	out := RenderToast(base, "Archived", 20, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("line count = %d, want 8", len(lines))
	}
	if !strings.Contains(lines[6], "Archived") {
		t.Fatalf("expected toast on the last card line, got %q", lines[6])
	}
	if !strings.Contains(lines[0], "base line") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestVStackSpacingAndOffsets(t *testing.T) {
	v := VStack{Blocks: []string{"a\nb", "c", "d\ne\nf"}, Spacing: 1}
	out := strings.Split(v.Render(3), "\n")
	if len(out) != 8 {
		t.Fatalf("line count = %d, want 8", len(out))
	}
	if out[0] != "a  " || out[2] != "   " || out[3] != "c  " {
		t.Fatalf("unexpected stack %q", out)
	}
	offsets := v.Offsets()
	want := []int{0, 3, 5}
	for i := range want {
		if offsets[i] != want[i] {
			t.Fatalf("offsets = %v, want %v", offsets, want)
		}
	}
}

func TestHeaderAlignsRight(t *testing.T) {
	got := Header{Title: "Inbox", Right: "3", Style: lipgloss.NewStyle()}.Render(10)
	if got != "Inbox    3" {
		t.Fatalf("header = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("abc", 5); got != "abc  " {
		t.Fatalf("pad = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
	if got := PadRight("abc", 0); got != "" {
		t.Fatalf("zero width = %q", got)
	}
}
