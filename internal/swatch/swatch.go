// ABOUTME: Styled color chips and palette rows rendered with lipgloss
// ABOUTME: Unresolvable colors fall back to a bracketed plain label

package swatch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var unknownStyle = lipgloss.NewStyle().Faint(true)

// Chip renders label on a block of color.
func Chip(color, label string) string {
	c, err := Resolve(color)
	if err != nil {
		return unknownStyle.Render(fmt.Sprintf("[%s?]", label))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(TextOn(c).Hex())).
		Padding(0, 1).
		Render(label)
}

// Palette renders one chip per color, labelled with the color itself.
func Palette(colors []string) string {
	chips := make([]string, len(colors))
	for i, c := range colors {
		chips[i] = Chip(c, c)
	}
	return strings.Join(chips, " ")
}

// Columns aligns key/value rows into two columns separated by gap spaces.
func Columns(rows [][2]string, gap int) string {
	w := 0
	for _, r := range rows {
		w = max(w, VisibleWidth(r[0]))
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(PadRight(r[0], w+gap))
		b.WriteString(r[1])
		b.WriteByte('\n')
	}
	return b.String()
}
