// ABOUTME: Error taxonomy for theme lookup, parsing, remote access and setter arguments
// ABOUTME: Sentinels match with errors.Is; NotFoundError and NetworkError carry detail

package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by *NotFoundError.
	ErrNotFound = errors.New("theme not found")
	// ErrParse is returned when a stored definition is not a well-formed mapping.
	ErrParse = errors.New("malformed theme definition")
	// ErrNetwork is matched by *NetworkError.
	ErrNetwork = errors.New("remote theme registry unavailable")
	// ErrTooFewColors is returned when a definition has fewer than three cycle colors.
	ErrTooFewColors = errors.New("theme needs at least three cycle colors")
	// ErrUnknownState is returned by ParseSwitch for unrecognised tokens.
	ErrUnknownState = errors.New("unrecognised state")
	// ErrInvalidSize is returned for unsupported tick label sizes.
	ErrInvalidSize = errors.New("invalid tick label size")
	// ErrInvalidAxis is returned by ParseAxis for unknown axis selectors.
	ErrInvalidAxis = errors.New("invalid axis selector")
	// ErrInvalidSpine is returned by ParseSpines for unknown spine names.
	ErrInvalidSpine = errors.New("invalid spine")
	// ErrInvalidName is returned when a theme name cannot be used as a file name.
	ErrInvalidName = errors.New("invalid theme name")
)

// NotFoundError reports a theme name absent from every consulted listing.
type NotFoundError struct {
	Name        string
	Sources     []Source
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	srcs := make([]string, len(e.Sources))
	for i, s := range e.Sources {
		srcs[i] = s.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "theme %q does not exist in the %s registry", e.Name, strings.Join(srcs, " or "))
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestions[0])
	}
	b.WriteString("; list the registry to see the available themes")
	return b.String()
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NetworkError reports a failed request to the remote registry.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: GET %s returned status %d", ErrNetwork, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: GET %s: %v", ErrNetwork, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %s", ErrNetwork, e.URL)
	}
}

// Is makes errors.Is(err, ErrNetwork) succeed.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// Unwrap returns the transport error, if any.
func (e *NetworkError) Unwrap() error { return e.Err }
