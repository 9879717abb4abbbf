// ABOUTME: Tests for the markdown theme summary and its terminal rendering
// ABOUTME: Rendering is checked for content only since styles depend on the terminal

package swatch

import (
	"strings"
	"testing"

	"github.com/mauromedda/plottheme/pkg/theme"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	def, err := theme.ParseDefinition([]byte("{'axes.facecolor': '#000',\n'cycler-prop-cycles': ['#111', 'red', '#333']}"))
	if err != nil {
		t.Fatalf("ParseDefinition() error: %v", err)
	}
	look := theme.Look{Background: "#fff", Primary: "#111", Markings: "lightgrey", DPI: 100}
	md := Summary("ink", look, def)

	for _, want := range []string{
		"# ink",
		"| Background | `#fff` |",
		"| Markings | `lightgrey` |",
		"| DPI | `100` |",
		"2. `red` (#ff0000)",
		"| axes.facecolor | `'#000'` |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Summary() missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Fourth") {
		t.Error("Summary() lists an empty field")
	}
	if strings.Contains(md, theme.CycleKey) {
		t.Error("Summary() lists the reserved key as a parameter")
	}
}

func TestSummary_NoDefinition(t *testing.T) {
	t.Parallel()

	md := Summary("Matplotlib", theme.Look{Background: "white"}, nil)
	if strings.Contains(md, "## ") {
		t.Errorf("Summary(nil def) has sections:\n%s", md)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	if Render("", 80) != "" {
		t.Error("Render(\"\") should be empty")
	}
	out := StripANSI(Render("# paper\n\nA light theme.", 80))
	if !strings.Contains(out, "paper") || !strings.Contains(out, "A light theme.") {
		t.Errorf("Render() = %q", out)
	}
}
