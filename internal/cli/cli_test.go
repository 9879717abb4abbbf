// ABOUTME: End-to-end tests for the plottheme commands over temp theme dirs
// ABOUTME: Settings come from config.Defaults so the user's files are never read

package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/plottheme/internal/config"
	"github.com/mauromedda/plottheme/pkg/rcparams"
	"github.com/mauromedda/plottheme/pkg/theme"
)

const seedTheme = "{'figure.facecolor': '#101010',\n'axes.facecolor': '#101010',\n" +
	"'cycler-prop-cycles': ['#aa0000', '#00aa00', '#0000aa']}\n"

func runCLI(t *testing.T, in string, args ...string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := newRootCmd(&App{LoadSettings: func() (*config.Settings, error) {
		return config.Defaults(), nil
	}})

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// themeDir returns a temp dir holding the given name -> body themes.
func themeDir(t *testing.T, themes map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range themes {
		if err := os.WriteFile(filepath.Join(dir, name+theme.FileExt), []byte(body), 0o644); err != nil {
			t.Fatalf("seed theme %s: %v", name, err)
		}
	}
	return dir
}

func remoteRegistry(t *testing.T, files map[string]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestInit_InstallsBundledThemes(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "themes")
	cfg := filepath.Join(t.TempDir(), "config.toml")

	out, errOut, err := runCLI(t, "", "--dir", dir, "init", "--config", cfg)
	if err != nil {
		t.Fatalf("init error: %v\nstderr:\n%s", err, errOut)
	}
	want := "installed nightfall\ninstalled paper\ninstalled pitch\nwrote " + cfg + "\n"
	if string(out) != want {
		t.Errorf("init output = %q; want %q", out, want)
	}

	s, err := config.LoadFile(cfg)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.ThemesDir != dir {
		t.Errorf("config themes_dir = %q; want %q", s.ThemesDir, dir)
	}

	out, _, err = runCLI(t, "", "--dir", dir, "init", "--config", cfg)
	if err != nil {
		t.Fatalf("second init error: %v", err)
	}
	if string(out) != "bundled themes already installed\n" {
		t.Errorf("second init output = %q", out)
	}
}

func TestList_Local(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"Alpha": seedTheme, "beta": seedTheme})
	out, _, err := runCLI(t, "", "--dir", dir, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if string(out) != "Alpha\nbeta\n" {
		t.Errorf("list output = %q; want %q", out, "Alpha\nbeta\n")
	}
}

func TestList_All(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"alpha": seedTheme})
	url := remoteRegistry(t, map[string]string{"index.txt": "gamma\n# comment\ndelta\n"})

	out, errOut, err := runCLI(t, "", "--dir", dir, "--remote-url", url, "list", "--all")
	if err != nil {
		t.Fatalf("list --all error: %v\nstderr:\n%s", err, errOut)
	}
	want := "alpha  local\ngamma  remote\ndelta  remote\n"
	if string(out) != want {
		t.Errorf("list --all output = %q; want %q", out, want)
	}

	if _, _, err := runCLI(t, "", "--dir", dir, "--remote-url", url, "--remote", "list", "--all"); err == nil {
		t.Error("list --remote --all succeeded; want an error")
	}
}

func TestList_RemoteWithoutURL(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "", "--dir", t.TempDir(), "--remote", "list")
	if !errors.Is(err, theme.ErrNetwork) {
		t.Errorf("list --remote error = %v; want ErrNetwork", err)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"Alpha": seedTheme})

	tests := []struct {
		name  string
		args  []string
		first string
		want  []string
	}{
		{
			name:  "named theme, any case",
			args:  []string{"apply", "ALPHA"},
			first: "Alpha is the active theme",
			want:  []string{"background   #101010", "primary      #aa0000", "dpi          100"},
		},
		{
			name:  "default configuration",
			args:  []string{"apply"},
			first: theme.DefaultName + " is the active theme",
			want:  []string{"fourth       #d62728", "markings     k"},
		},
		{
			name:  "dpi and fonts",
			args:  []string{"apply", "alpha", "--dpi", "300", "--title-font", "Serif"},
			first: "Alpha is the active theme",
			want:  []string{"title font   Serif", "dpi          300"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, errOut, err := runCLI(t, "", append([]string{"--dir", dir}, tt.args...)...)
			if err != nil {
				t.Fatalf("apply error: %v\nstderr:\n%s", err, errOut)
			}
			lines := strings.Split(string(out), "\n")
			if lines[0] != tt.first {
				t.Errorf("first line = %q; want %q", lines[0], tt.first)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(out), w+"\n") {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestApply_NotFoundSuggests(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"Nightfall": seedTheme})
	_, errOut, err := runCLI(t, "", "--dir", dir, "apply", "nightfal")
	if !errors.Is(err, theme.ErrNotFound) {
		t.Fatalf("apply error = %v; want ErrNotFound", err)
	}
	if !strings.Contains(string(errOut), `did you mean "Nightfall"?`) {
		t.Errorf("stderr = %q; want a suggestion", errOut)
	}
}

func TestApply_RemoteFallback(t *testing.T) {
	t.Parallel()

	url := remoteRegistry(t, map[string]string{
		"index.txt":  "Remote\n",
		"Remote.txt": seedTheme,
	})
	out, errOut, err := runCLI(t, "", "--dir", t.TempDir(), "--remote-url", url, "--remote", "apply", "remote")
	if err != nil {
		t.Fatalf("apply error: %v\nstderr:\n%s", err, errOut)
	}
	if !strings.HasPrefix(string(out), "Remote is the active theme\n") {
		t.Errorf("apply output = %q", out)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"alpha": seedTheme})

	out, _, err := runCLI(t, "", "--dir", dir, "export", "alpha")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if string(out) != seedTheme {
		t.Errorf("export = %q; want %q", out, seedTheme)
	}

	out, _, err = runCLI(t, "", "--dir", dir, "export", "alpha", "--yaml")
	if err != nil {
		t.Fatalf("export --yaml error: %v", err)
	}
	for _, w := range []string{"figure.facecolor: '#101010'\n", theme.CycleKey + ": ['#aa0000', '#00aa00', '#0000aa']\n"} {
		if !strings.Contains(string(out), w) {
			t.Errorf("export --yaml missing %q:\n%s", w, out)
		}
	}
}

func TestShow_Markdown(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"alpha": seedTheme})
	out, errOut, err := runCLI(t, "", "--dir", dir, "show", "alpha", "--markdown")
	if err != nil {
		t.Fatalf("show error: %v\nstderr:\n%s", err, errOut)
	}
	for _, w := range []string{"# alpha\n", "| Primary | `#aa0000` |\n", "## Cycle colors\n", "| axes.facecolor | `'#101010'` |\n"} {
		if !strings.Contains(string(out), w) {
			t.Errorf("show --markdown missing %q:\n%s", w, out)
		}
	}
}

func TestShow_Rendered(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"alpha": seedTheme})
	out, _, err := runCLI(t, "", "--dir", dir, "show", "alpha", "--width", "40")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(string(out), "#aa0000") {
		t.Errorf("show output lacks the primary color:\n%s", out)
	}
	if !strings.Contains(string(out), "▄") {
		t.Errorf("show output lacks the preview:\n%s", out)
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"base": seedTheme})

	out, errOut, err := runCLI(t, "", "--dir", dir, "derive", "base", "Mine",
		"--grid", "on", "--grid-color", "#333333", "--primary", "#ffffff", "--spines", "off", "--spines-which", "top,right")
	if err != nil {
		t.Fatalf("derive error: %v\nstderr:\n%s", err, errOut)
	}
	if got, want := string(out), "Theme Mine successfully added locally\n"; got != want {
		t.Errorf("derive output = %q; want %q", got, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Mine"+theme.FileExt))
	if err != nil {
		t.Fatalf("reading saved theme: %v", err)
	}
	for _, w := range []string{
		"'axes.grid': True,\n",
		"'grid.color': '#333333',\n",
		"'axes.spines.top': False,\n",
		"'figure.facecolor': '#101010',\n",
		"'cycler-prop-cycles': ['#ffffff', '#00aa00', '#0000aa']}",
	} {
		if !strings.Contains(string(data), w) {
			t.Errorf("saved theme missing %q:\n%s", w, data)
		}
	}
	if strings.Contains(string(data), "axes.spines.left") {
		t.Errorf("saved theme switched an unselected spine:\n%s", data)
	}
}

func TestDerive_Overwrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		flags []string
		want  string
	}{
		{name: "declined", input: "n\n", want: "A theme named base already exists; please use a different theme name\n"},
		{name: "no answer", input: "", want: "A theme named base already exists; please use a different theme name\n"},
		{name: "confirmed", input: "y\n", want: "Theme base successfully overwritten\n"},
		{name: "yes flag", flags: []string{"--yes"}, want: "Theme base successfully overwritten\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := themeDir(t, map[string]string{"base": seedTheme})
			args := append([]string{"--dir", dir, "derive", "base", "base", "--background", "#222222"}, tt.flags...)
			out, errOut, err := runCLI(t, tt.input, args...)
			if err != nil {
				t.Fatalf("derive error: %v\nstderr:\n%s", err, errOut)
			}
			if string(out) != tt.want {
				t.Errorf("derive output = %q; want %q", out, tt.want)
			}
		})
	}
}

func TestDerive_InvalidFlags(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"base": seedTheme})
	tests := []struct {
		flags []string
		want  error
	}{
		{[]string{"--grid", "maybe"}, theme.ErrUnknownState},
		{[]string{"--pips", "true"}, theme.ErrUnknownState},
		{[]string{"--ticklabel-size", "huge"}, theme.ErrInvalidSize},
		{[]string{"--ticklabel-size", "small", "--ticklabel-axis", "z"}, theme.ErrInvalidAxis},
		{[]string{"--spines", "on", "--spines-which", "middle"}, theme.ErrInvalidSpine},
		{[]string{"--pips-color", "red"}, errNeedsSwitch},
		{[]string{"--spines-width", "2"}, errNeedsSwitch},
		{[]string{"--grid-color", "#333333"}, errNeedsSwitch},
		{[]string{"--grid", "on", "--grid-alpha", "NaN"}, rcparams.ErrInvalidValue},
	}
	for _, tt := range tests {
		args := append([]string{"--dir", dir, "derive", "base", "other"}, tt.flags...)
		if _, _, err := runCLI(t, "", args...); !errors.Is(err, tt.want) {
			t.Errorf("derive %v error = %v; want %v", tt.flags, err, tt.want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "other"+theme.FileExt)); !errors.Is(err, os.ErrNotExist) {
		t.Error("a failed derive saved a theme")
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	dir := themeDir(t, map[string]string{"alpha": seedTheme})

	out, _, err := runCLI(t, "", "--dir", dir, "params", "facecolor", "--keys")
	if err != nil {
		t.Fatalf("params error: %v", err)
	}
	for _, k := range []string{"axes.facecolor\n", "figure.facecolor\n"} {
		if !strings.Contains(string(out), k) {
			t.Errorf("params --keys missing %q:\n%s", k, out)
		}
	}
	if strings.Contains(string(out), "'") {
		t.Errorf("params --keys printed values:\n%s", out)
	}

	out, _, err = runCLI(t, "", "--dir", dir, "params", "axes.facecolor", "--theme", "alpha")
	if err != nil {
		t.Fatalf("params --theme error: %v", err)
	}
	if string(out) != "axes.facecolor  '#101010'\n" {
		t.Errorf("params --theme output = %q", out)
	}
}
