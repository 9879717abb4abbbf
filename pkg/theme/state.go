// ABOUTME: State is the active theme: applies definitions onto an rc params store and mirrors the look
// ABOUTME: Default and named configurations; named themes resolve through the local then remote registry

package theme

import (
	"context"
	"fmt"
	"slices"

	"github.com/mauromedda/plottheme/pkg/rcparams"
)

// DefaultName is the name of the factory-default configuration.
const DefaultName = "Matplotlib"

// DefaultDPI is the display resolution of a fresh State.
const DefaultDPI = 100

// Markings colors of the two configurations.
const (
	DefaultMarkings = "k"
	NamedMarkings   = "lightgrey"
)

// defaultPalette is the fixed accent palette of the default configuration.
var defaultPalette = [4]string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728"}

// minColors is the number of cycle colors every applied definition needs.
const minColors = 3

// Store is the rc params registry a State reads and writes.
// *rcparams.Params implements it.
type Store interface {
	Get(key string) (rcparams.Value, bool)
	Set(key string, v rcparams.Value) error
	Default(key string) (rcparams.Value, bool)
	Keys() []string
	Reset()
}

var _ Store = (*rcparams.Params)(nil)

// FontSpec describes the font used for titles or body text.
type FontSpec struct {
	Family string
	Color  string
}

// Kwargs returns the descriptor as plotting keyword arguments: fontfamily
// always, color when set.
func (f FontSpec) Kwargs() map[string]string {
	kw := map[string]string{"fontfamily": f.Family}
	if f.Color != "" {
		kw["color"] = f.Color
	}
	return kw
}

// Look is the compact view of the active theme. Fourth is empty when the
// applied cycle has only three colors.
type Look struct {
	Background string
	Primary    string
	Secondary  string
	Tertiary   string
	Fourth     string
	Markings   string
	FontFamily string
	FontColor  string
	TitleFont  FontSpec
	BodyFont   FontSpec
	DPI        int
}

// Colors returns the non-empty accent colors in order.
func (l Look) Colors() []string {
	out := make([]string, 0, 4)
	for _, c := range []string{l.Primary, l.Secondary, l.Tertiary, l.Fourth} {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

type titleStyle struct {
	enabled bool
	size    string
	weight  string
}

// Option configures a State.
type Option func(*State)

// WithRemote makes Apply fall back to the remote registry when a name is
// not found locally.
func WithRemote() Option {
	return func(s *State) { s.remote = true }
}

// WithTitleStyle replaces the title size and weight forced onto the store
// after every named theme is applied. Empty values keep the built-in ones.
func WithTitleStyle(size, weight string) Option {
	return func(s *State) {
		s.title.enabled = true
		if size != "" {
			s.title.size = size
		}
		if weight != "" {
			s.title.weight = weight
		}
	}
}

// WithoutTitleStyle leaves the title size and weight of named themes alone.
func WithoutTitleStyle() Option {
	return func(s *State) { s.title.enabled = false }
}

// State holds the active theme over one store. It is not safe for
// concurrent use, and one State per store is assumed.
type State struct {
	store  Store
	reg    *Registry
	remote bool
	title  titleStyle

	name  string
	known []string
	look  Look
	err   error
}

// New snapshots the local theme listing, then applies name. An empty name
// selects the default configuration. reg may be nil when only the default
// configuration is used.
func New(ctx context.Context, store Store, reg *Registry, name string, opts ...Option) (*State, error) {
	s := &State{
		store: store,
		reg:   reg,
		title: titleStyle{enabled: true, size: "x-large", weight: "bold"},
		look:  Look{DPI: DefaultDPI},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.refreshKnown(ctx); err != nil {
		return nil, err
	}
	if err := s.Apply(ctx, name); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) refreshKnown(ctx context.Context) error {
	if s.reg == nil {
		s.known = nil
		return nil
	}
	names, err := s.reg.List(ctx, Local)
	if err != nil {
		return err
	}
	s.known = names
	return nil
}

// Apply switches to the theme called name, or to the default configuration
// when name is empty. Keys of a named definition are written in order and
// the first failing key aborts; keys written before it stay applied.
func (s *State) Apply(ctx context.Context, name string) error {
	s.name = ""
	if name == "" {
		s.applyDefault()
		return nil
	}

	def, canonical, err := s.resolve(ctx, name)
	if err != nil {
		return err
	}

	colors := def.Colors()
	if len(colors) < minColors {
		return fmt.Errorf("theme %s: %w, got %d", canonical, ErrTooFewColors, len(colors))
	}
	for _, e := range def.Params() {
		if err := s.store.Set(e.Key, e.Value); err != nil {
			return fmt.Errorf("applying theme %s: %w", canonical, err)
		}
	}
	if err := s.store.Set(rcparams.PropCycle, rcparams.Cycle(colors...)); err != nil {
		return fmt.Errorf("applying theme %s: %w", canonical, err)
	}
	if s.title.enabled {
		if err := s.store.Set("axes.titlesize", rcparams.String(s.title.size)); err != nil {
			return fmt.Errorf("applying title style: %w", err)
		}
		if err := s.store.Set("axes.titleweight", rcparams.String(s.title.weight)); err != nil {
			return fmt.Errorf("applying title style: %w", err)
		}
	}

	family := s.text("font.family")
	s.look = Look{
		Background: s.text("figure.facecolor"),
		Primary:    colors[0],
		Secondary:  colors[1],
		Tertiary:   colors[2],
		Markings:   NamedMarkings,
		FontFamily: family,
		TitleFont:  FontSpec{Family: family},
		BodyFont:   FontSpec{Family: family},
		DPI:        s.look.DPI,
	}
	if len(colors) > 3 {
		s.look.Fourth = colors[3]
	}
	s.name = canonical
	s.err = nil
	return nil
}

// resolve finds name in the local listing, then in the remote listing when
// enabled, and loads it.
func (s *State) resolve(ctx context.Context, name string) (*Definition, string, error) {
	if s.reg == nil {
		return nil, "", &NotFoundError{Name: name, Sources: []Source{Local}}
	}

	locals, err := s.reg.List(ctx, Local)
	if err != nil {
		return nil, "", err
	}
	if canonical, ok := matchName(name, locals); ok {
		def, err := s.reg.read(ctx, canonical, Local)
		return def, canonical, err
	}
	if !s.remote {
		return nil, "", &NotFoundError{Name: name, Sources: []Source{Local}, Suggestions: suggest(name, locals)}
	}

	remotes, err := s.reg.List(ctx, Remote)
	if err != nil {
		return nil, "", err
	}
	if canonical, ok := matchName(name, remotes); ok {
		def, err := s.reg.read(ctx, canonical, Remote)
		return def, canonical, err
	}
	return nil, "", &NotFoundError{
		Name:        name,
		Sources:     []Source{Local, Remote},
		Suggestions: suggest(name, slices.Concat(locals, remotes)),
	}
}

func (s *State) applyDefault() {
	s.store.Reset()
	family := s.text("font.family")
	s.look = Look{
		Background: s.text("figure.facecolor"),
		Primary:    defaultPalette[0],
		Secondary:  defaultPalette[1],
		Tertiary:   defaultPalette[2],
		Fourth:     defaultPalette[3],
		Markings:   DefaultMarkings,
		FontFamily: family,
		TitleFont:  FontSpec{Family: family},
		BodyFont:   FontSpec{Family: family},
		DPI:        s.look.DPI,
	}
	s.name = DefaultName
	s.err = nil
}

// text returns the store value of key as display text.
func (s *State) text(key string) string {
	v, _ := s.store.Get(key)
	return v.Text()
}

// Name returns the canonical name of the active theme. It is empty after a
// failed Apply.
func (s *State) Name() string { return s.name }

// Known returns the local theme names listed at construction, refreshed by
// AddTheme.
func (s *State) Known() []string { return slices.Clone(s.known) }

// Look returns the mirrored view of the active theme.
func (s *State) Look() Look { return s.look }

// Store returns the store the state writes to.
func (s *State) Store() Store { return s.store }

// Err returns the first store write failure of a setter since the last
// successful Apply.
func (s *State) Err() error { return s.err }

func (s *State) String() string {
	return s.name + " is the active theme"
}
