// ABOUTME: Presets the lipgloss background from COLORFGBG so adaptive prompt colors skip OSC 10/11 queries
// ABOUTME: Import with _ from main; a missing or odd COLORFGBG means a dark background

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	lipgloss.SetHasDarkBackground(Dark(os.Getenv("COLORFGBG")))
}

// Dark reports whether a COLORFGBG value ("fg;bg" or "fg;default;bg")
// names a dark background. Empty or unparsable values count as dark.
func Dark(colorfgbg string) bool {
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	// ANSI 7 (light grey) and 9..15 are the light backgrounds.
	return bg != 7 && (bg < 9 || bg > 15)
}
