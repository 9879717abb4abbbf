// ABOUTME: Standard filesystem paths for plottheme configuration and themes
// ABOUTME: Resolves ~/.plottheme/ for global and .plottheme/ for project-local paths

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	globalDirName  = ".plottheme"
	projectDirName = ".plottheme"
	configFileName = "config.toml"
)

// GlobalDir returns the user-global config directory (~/.plottheme/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.plottheme/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// ThemesDir returns the default local theme registry directory.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// ExpandHome replaces a leading ~/ (or a bare ~) with the user's home directory.
func ExpandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok && path != "~" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if !ok {
		return home
	}
	return filepath.Join(home, rest)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
