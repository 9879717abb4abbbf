// ABOUTME: Tests for the half-block theme preview
// ABOUTME: Checks dimensions, the background color escape and bad-size handling

package swatch

import (
	"strings"
	"testing"

	"github.com/mauromedda/plottheme/pkg/theme"
)

func TestPreview(t *testing.T) {
	t.Parallel()

	look := theme.Look{
		Background: "#102030",
		Primary:    "#ff0000",
		Secondary:  "#00ff00",
		Tertiary:   "#0000ff",
		Markings:   "lightgrey",
	}
	lines := Preview(look, 30, 6)
	if len(lines) != 6 {
		t.Fatalf("Preview() returned %d rows; want 6", len(lines))
	}
	for i, l := range lines {
		if w := VisibleWidth(l); w != 30 {
			t.Errorf("row %d width = %d; want 30", i, w)
		}
		if !strings.HasSuffix(l, "\x1b[0m") {
			t.Errorf("row %d does not reset attributes", i)
		}
	}
	// The top-left cell is background.
	if !strings.HasPrefix(lines[0], "\x1b[48;2;16;32;48m") {
		t.Errorf("first cell = %q; want the background", lines[0][:20])
	}
	all := strings.Join(lines, "")
	for _, want := range []string{"255;0;0", "0;255;0", "0;0;255", "211;211;211"} {
		if !strings.Contains(all, want) {
			t.Errorf("preview does not contain color %s", want)
		}
	}
}

func TestPreview_BadSize(t *testing.T) {
	t.Parallel()

	if got := Preview(theme.Look{}, 0, 3); got != nil {
		t.Errorf("Preview(cols 0) = %v; want nil", got)
	}
}

func TestPreview_UnresolvableColors(t *testing.T) {
	t.Parallel()

	lines := Preview(theme.Look{Background: "auto", Primary: "bogus"}, 8, 2)
	if len(lines) != 2 {
		t.Fatalf("Preview() returned %d rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "\x1b[48;2;255;255;255m") {
		t.Error("unresolvable background should fall back to white")
	}
}
