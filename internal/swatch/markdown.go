// ABOUTME: Markdown summary of a theme's look and definition, rendered for the terminal with glamour
// ABOUTME: Falls back to the raw markdown when the renderer cannot be built

package swatch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/plottheme/pkg/theme"
)

// Summary describes a theme as markdown. def may be nil.
func Summary(name string, look theme.Look, def *theme.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)

	b.WriteString("| Field | Value |\n|---|---|\n")
	row := func(field, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "| %s | `%s` |\n", field, value)
	}
	row("Background", look.Background)
	row("Primary", look.Primary)
	row("Secondary", look.Secondary)
	row("Tertiary", look.Tertiary)
	row("Fourth", look.Fourth)
	row("Markings", look.Markings)
	row("Font family", look.FontFamily)
	row("Font color", look.FontColor)
	row("DPI", fmt.Sprint(look.DPI))

	if def == nil {
		return b.String()
	}
	if colors := def.Colors(); len(colors) > 0 {
		b.WriteString("\n## Cycle colors\n\n")
		for i, c := range colors {
			fmt.Fprintf(&b, "%d. `%s` (%s)\n", i+1, c, Hex(c))
		}
	}
	if params := def.Params(); len(params) > 0 {
		b.WriteString("\n## Parameters\n\n| Key | Value |\n|---|---|\n")
		for _, e := range params {
			fmt.Fprintf(&b, "| %s | `%s` |\n", e.Key, strings.ReplaceAll(e.Value.Literal(), "|", `\|`))
		}
	}
	return b.String()
}

// Render returns the terminal-styled rendering of md wrapped at width.
func Render(md string, width int) string {
	if md == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	// Trim trailing whitespace that glamour adds
	return strings.TrimRight(rendered, "\n ")
}
