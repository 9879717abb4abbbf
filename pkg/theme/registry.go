// ABOUTME: Registry lists, loads and saves theme definitions by name
// ABOUTME: Local themes are <dir>/<name>.txt files; remote themes come from <base>/index.txt

package theme

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	thttp "github.com/mauromedda/plottheme/internal/http"
	"github.com/mauromedda/plottheme/internal/log"
)

// FileExt is the suffix of stored theme definitions.
const FileExt = ".txt"

// IndexFile is the remote listing, one theme name per line.
const IndexFile = "index.txt"

// maxBody caps remote responses.
const maxBody = 1 << 20

// Source selects where themes are listed and loaded from.
type Source uint8

const (
	Local Source = iota
	Remote
)

func (s Source) String() string {
	switch s {
	case Local:
		return "local"
	case Remote:
		return "remote"
	default:
		return fmt.Sprintf("source(%d)", uint8(s))
	}
}

// OverwritePolicy decides whether an existing theme may be replaced.
type OverwritePolicy func(name string) bool

// AlwaysOverwrite is an OverwritePolicy that accepts every overwrite.
func AlwaysOverwrite(string) bool { return true }

// SaveResult is the outcome of Registry.Save.
type SaveResult uint8

const (
	SaveCreated SaveResult = iota
	SaveOverwritten
	SaveDeclined
)

func (r SaveResult) String() string {
	switch r {
	case SaveCreated:
		return "created"
	case SaveOverwritten:
		return "overwritten"
	case SaveDeclined:
		return "declined"
	default:
		return fmt.Sprintf("save(%d)", uint8(r))
	}
}

// Message returns the user-facing report for saving name.
func (r SaveResult) Message(name string) string {
	switch r {
	case SaveOverwritten:
		return fmt.Sprintf("Theme %s successfully overwritten", name)
	case SaveDeclined:
		return fmt.Sprintf("A theme named %s already exists; please use a different theme name", name)
	default:
		return fmt.Sprintf("Theme %s successfully added locally", name)
	}
}

//go:embed themes/*.txt
var bundled embed.FS

// Bundled returns the themes shipped with the package.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "themes")
	if err != nil {
		panic(err)
	}
	return sub
}

// Registry accesses stored theme definitions.
type Registry struct {
	// Dir holds the local <name>.txt files.
	Dir string
	// BaseURL is the remote registry root. Empty disables remote access.
	BaseURL string
	// Client performs remote requests.
	Client *http.Client
}

// NewRegistry returns a registry over dir and, when baseURL is not empty, a
// remote registry whose requests time out after timeout.
func NewRegistry(dir, baseURL string, timeout time.Duration) *Registry {
	return &Registry{
		Dir:     dir,
		BaseURL: baseURL,
		Client:  thttp.SecureHTTPClient(timeout),
	}
}

// List returns the theme names available from src. Duplicates are kept.
func (r *Registry) List(ctx context.Context, src Source) ([]string, error) {
	switch src {
	case Local:
		return r.listLocal()
	case Remote:
		return r.listRemote(ctx)
	default:
		return nil, fmt.Errorf("unknown source %s", src)
	}
}

// Lookup returns the listed spelling of name in src.
func (r *Registry) Lookup(ctx context.Context, name string, src Source) (string, error) {
	names, err := r.List(ctx, src)
	if err != nil {
		return "", err
	}
	canonical, ok := matchName(name, names)
	if !ok {
		return "", &NotFoundError{Name: name, Sources: []Source{src}, Suggestions: suggest(name, names)}
	}
	return canonical, nil
}

// Load reads and parses the definition stored as name in src. The name is
// matched case-insensitively against List(src).
func (r *Registry) Load(ctx context.Context, name string, src Source) (*Definition, error) {
	canonical, err := r.Lookup(ctx, name, src)
	if err != nil {
		return nil, err
	}
	return r.read(ctx, canonical, src)
}

func (r *Registry) read(ctx context.Context, canonical string, src Source) (*Definition, error) {
	var (
		data []byte
		err  error
	)
	if src == Remote {
		data, err = r.fetch(ctx, url.PathEscape(canonical)+FileExt)
	} else {
		data, err = os.ReadFile(r.Path(canonical))
		if err != nil {
			err = fmt.Errorf("reading theme %s: %w", canonical, err)
		}
	}
	if err != nil {
		return nil, err
	}

	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", canonical, err)
	}
	log.Debug("theme: loaded %s from %s registry (%d keys)", canonical, src, def.Len())
	return def, nil
}

// Path returns the local file that stores name.
func (r *Registry) Path(name string) string {
	return filepath.Join(r.Dir, name+FileExt)
}

// Save writes def as name into the local registry. When name already exists
// the policy decides; a nil policy declines. Declining is not an error.
func (r *Registry) Save(name string, def *Definition, policy OverwritePolicy) (SaveResult, error) {
	if err := ValidateName(name); err != nil {
		return SaveDeclined, err
	}
	names, err := r.listLocal()
	if err != nil {
		return SaveDeclined, err
	}

	result := SaveCreated
	target := name
	if existing, ok := matchName(name, names); ok {
		if policy == nil || !policy(existing) {
			log.Debug("theme: overwrite of %s declined", existing)
			return SaveDeclined, nil
		}
		result = SaveOverwritten
		target = existing
	}

	data, err := def.MarshalText()
	if err != nil {
		return SaveDeclined, fmt.Errorf("encoding theme %s: %w", name, err)
	}
	if err := writeAtomic(r.Dir, r.Path(target), data); err != nil {
		return SaveDeclined, fmt.Errorf("saving theme %s: %w", name, err)
	}
	log.Debug("theme: saved %s to %s (%s)", target, r.Path(target), result)
	return result, nil
}

// Install copies the *.txt themes of fsys into the local registry, skipping
// names that already exist. It returns the installed names.
func (r *Registry) Install(fsys fs.FS) ([]string, error) {
	existing, err := r.listLocal()
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading bundled themes: %w", err)
	}

	var installed []string
	for _, e := range entries {
		name, ok := themeName(e)
		if !ok {
			continue
		}
		if _, dup := matchName(name, existing); dup {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return installed, fmt.Errorf("reading bundled theme %s: %w", name, err)
		}
		if _, err := ParseDefinition(data); err != nil {
			return installed, fmt.Errorf("bundled theme %s: %w", name, err)
		}
		if err := writeAtomic(r.Dir, r.Path(name), data); err != nil {
			return installed, fmt.Errorf("installing theme %s: %w", name, err)
		}
		installed = append(installed, name)
		existing = append(existing, name)
	}
	return installed, nil
}

func (r *Registry) listLocal() ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading theme directory %s: %w", r.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if name, ok := themeName(e); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// themeName reports the theme stored by a directory entry.
func themeName(e fs.DirEntry) (string, bool) {
	if e.IsDir() || !(e.Type().IsRegular() || e.Type()&fs.ModeSymlink != 0) {
		return "", false
	}
	name, ok := strings.CutSuffix(e.Name(), FileExt)
	if !ok || name == "" || strings.HasPrefix(name, ".") {
		return "", false
	}
	return name, true
}

func (r *Registry) listRemote(ctx context.Context) ([]string, error) {
	data, err := r.fetch(ctx, IndexFile)
	if err != nil {
		return nil, err
	}

	var names []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading remote index: %w", err)
	}
	log.Debug("theme: remote index lists %d themes", len(names))
	return names, nil
}

// fetch GETs <BaseURL>/<file>.
func (r *Registry) fetch(ctx context.Context, file string) ([]byte, error) {
	if r.BaseURL == "" {
		return nil, &NetworkError{URL: file, Err: errors.New("no remote registry configured")}
	}
	u, err := url.JoinPath(r.BaseURL, file)
	if err != nil {
		return nil, &NetworkError{URL: r.BaseURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &NetworkError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", "plottheme")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: u, StatusCode: resp.StatusCode}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &NetworkError{URL: u, Err: err}
	}
	return data, nil
}

// writeAtomic writes data to path through a temporary file in dir.
func writeAtomic(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".theme-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
