// ABOUTME: Settings loading with global + project config.toml merge
// ABOUTME: TOML decoded with go-toml/v2 over built-in defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTimeout bounds each remote registry request.
const DefaultTimeout = 15 * time.Second

// Settings holds the merged configuration.
type Settings struct {
	ThemesDir     string   `toml:"themes_dir,omitempty"`
	RemoteURL     string   `toml:"remote_url,omitempty"`
	RemoteEnabled *bool    `toml:"remote_enabled,omitempty"`
	Timeout       Duration `toml:"timeout,omitempty"`
	DefaultTheme  string   `toml:"default_theme,omitempty"`
	Title         Title    `toml:"title"`
}

// Remote reports whether the remote fallback is enabled; unset means disabled.
func (s *Settings) Remote() bool { return s.RemoteEnabled != nil && *s.RemoteEnabled }

// Title controls the title size and weight forced onto named themes.
type Title struct {
	Enabled *bool  `toml:"enabled,omitempty"`
	Size    string `toml:"size,omitempty"`
	Weight  string `toml:"weight,omitempty"`
}

// On reports whether the title post-step is enabled; unset means enabled.
func (t Title) On() bool { return t.Enabled == nil || *t.Enabled }

// Duration is a time.Duration written as "15s" in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", b, err)
	}
	d.Duration = v
	return nil
}

// Defaults returns the settings used when no file sets a field.
func Defaults() *Settings {
	return &Settings{
		ThemesDir: ThemesDir(),
		Timeout:   Duration{DefaultTimeout},
	}
}

// Load reads and merges global and project-local settings over Defaults,
// then applies environment overrides. Project settings override global
// settings. Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	global, err := LoadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := LoadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	if err := ApplyEnv(merged, os.LookupEnv); err != nil {
		return nil, err
	}
	ResolveEnvVars(merged)
	merged.ThemesDir = ExpandHome(merged.ThemesDir)
	return merged, nil
}

// LoadFile reads Settings from a TOML file. Returns empty Settings and an
// fs.ErrNotExist error if the file does not exist.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Write stores s as TOML at path, creating parent directories.
func Write(path string, s *Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// merge overlays the non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.ThemesDir != "" {
		result.ThemesDir = over.ThemesDir
	}
	if over.RemoteURL != "" {
		result.RemoteURL = over.RemoteURL
	}
	if over.RemoteEnabled != nil {
		enabled := *over.RemoteEnabled
		result.RemoteEnabled = &enabled
	}
	if over.Timeout.Duration != 0 {
		result.Timeout = over.Timeout
	}
	if over.DefaultTheme != "" {
		result.DefaultTheme = over.DefaultTheme
	}
	if over.Title.Enabled != nil {
		enabled := *over.Title.Enabled
		result.Title.Enabled = &enabled
	}
	if over.Title.Size != "" {
		result.Title.Size = over.Title.Size
	}
	if over.Title.Weight != "" {
		result.Title.Weight = over.Title.Weight
	}

	return &result
}
