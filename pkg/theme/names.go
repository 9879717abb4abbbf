// ABOUTME: Theme name matching and validation
// ABOUTME: Names compare case-insensitively using Unicode case folding

package theme

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mauromedda/plottheme/pkg/fuzzy"
)

// foldName returns the case-folded form of name. A fresh Caser is used on
// every call because Casers are stateful.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// matchName returns the listed spelling of name, compared case-insensitively.
func matchName(name string, names []string) (string, bool) {
	want := foldName(name)
	for _, n := range names {
		if foldName(n) == want {
			return n, true
		}
	}
	return "", false
}

// suggest returns up to three listed names that resemble name, best first.
func suggest(name string, names []string) []string {
	return fuzzy.Suggest(name, names, 3)
}

// ValidateName reports whether name can be stored as a theme file.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	}
	return nil
}
