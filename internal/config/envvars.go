// ABOUTME: Environment overrides and ${VAR} expansion for plottheme settings
// ABOUTME: PLOTTHEME_* variables override file values; unset vars in ${VAR} become empty

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvDir       = "PLOTTHEME_DIR"
	EnvRemoteURL = "PLOTTHEME_REMOTE_URL"
	EnvRemote    = "PLOTTHEME_REMOTE"
	EnvTimeout   = "PLOTTHEME_TIMEOUT"
)

// ApplyEnv overrides s with the PLOTTHEME_* variables found by lookup.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDir); ok && v != "" {
		s.ThemesDir = v
	}
	if v, ok := lookup(EnvRemoteURL); ok && v != "" {
		s.RemoteURL = v
	}
	if v, ok := lookup(EnvRemote); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRemote, err)
		}
		s.RemoteEnabled = &b
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		s.Timeout = Duration{d}
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the path and URL fields.
func ResolveEnvVars(s *Settings) {
	s.ThemesDir = expandEnv(s.ThemesDir)
	s.RemoteURL = expandEnv(s.RemoteURL)
	s.DefaultTheme = expandEnv(s.DefaultTheme)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
