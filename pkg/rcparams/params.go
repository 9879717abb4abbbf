// ABOUTME: Params is the rc-params key/value store seeded with factory defaults
// ABOUTME: Rejects unknown keys and values outside a few allow-lists

package rcparams

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
)

// PropCycle is the store key holding the color cycle.
const PropCycle = "axes.prop_cycle"

var (
	// ErrUnknownKey is returned when setting a key the store does not know.
	ErrUnknownKey = errors.New("unknown rc param")
	// ErrInvalidValue is returned when a value fails the key's allow-list.
	ErrInvalidValue = errors.New("invalid rc param value")
)

//go:embed defaults.txt
var defaultsText []byte

var (
	defaultsOnce sync.Once
	defaults     *Mapping
)

// Defaults returns a copy of the factory defaults.
func Defaults() *Mapping {
	defaultsOnce.Do(func() {
		m, err := ParseMapping(defaultsText)
		if err != nil {
			panic(fmt.Sprintf("rcparams: embedded defaults: %v", err))
		}
		defaults = m
	})
	return defaults.Clone()
}

// Params holds the full rendering configuration. It is not safe for
// concurrent use.
type Params struct {
	defaults *Mapping
	values   map[string]Value
}

// New returns a store holding the factory defaults.
func New() *Params {
	return NewWithDefaults(Defaults())
}

// NewWithDefaults returns a store whose factory defaults are d.
func NewWithDefaults(d *Mapping) *Params {
	p := &Params{defaults: d.Clone()}
	p.Reset()
	return p
}

// Reset restores every key to its factory default.
func (p *Params) Reset() {
	p.values = make(map[string]Value, p.defaults.Len())
	for _, e := range p.defaults.entries {
		p.values[e.Key] = e.Value
	}
}

// Get returns the current value of key.
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Default returns the factory default of key.
func (p *Params) Default(key string) (Value, bool) {
	return p.defaults.Get(key)
}

// Set assigns v to key.
func (p *Params) Set(key string, v Value) error {
	if _, ok := p.values[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := validate(key, v); err != nil {
		return err
	}
	p.values[key] = v
	return nil
}

// Update assigns every entry of m in order. It stops at the first failing
// key; entries before it stay assigned.
func (p *Params) Update(m *Mapping) error {
	for _, e := range m.entries {
		if err := p.Set(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns every key in sorted order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Containing returns the current params whose key contains substr, sorted
// by key. An empty substr returns everything.
func (p *Params) Containing(substr string) *Mapping {
	m := &Mapping{}
	for _, k := range p.Keys() {
		if strings.Contains(k, substr) {
			m.Set(k, p.values[k])
		}
	}
	return m
}

var (
	fontSizes  = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "smaller", "larger"}
	fontWeight = []string{"ultralight", "light", "normal", "regular", "book", "medium", "roman", "semibold", "demibold", "demi", "bold", "heavy", "extra bold", "black"}
	lineStyles = []string{"-", "--", "-.", ":", "solid", "dashed", "dashdot", "dotted", "None", "none", " ", ""}

	allowed = map[string][]string{
		"axes.grid.which":    {"major", "minor", "both"},
		"axes.grid.axis":     {"both", "x", "y"},
		"xtick.labelsize":    fontSizes,
		"ytick.labelsize":    fontSizes,
		"axes.titlesize":     fontSizes,
		"axes.labelsize":     fontSizes,
		"axes.titleweight":   fontWeight,
		"axes.labelweight":   fontWeight,
		"font.weight":        fontWeight,
		"grid.linestyle":     lineStyles,
		"lines.linestyle":    lineStyles,
		"xtick.direction":    {"in", "out", "inout"},
		"ytick.direction":    {"in", "out", "inout"},
		"axes.titlelocation": {"left", "center", "right"},
	}
)

func validate(key string, v Value) error {
	if !finite(v) {
		return fmt.Errorf("%w: %s=%s, numbers must be finite", ErrInvalidValue, key, v)
	}
	if key == PropCycle {
		if v.Kind() != KindCycle {
			return fmt.Errorf("%w: %s must be a cycle, got %s", ErrInvalidValue, key, v.Kind())
		}
		return nil
	}
	choices, ok := allowed[key]
	if !ok {
		return nil
	}
	s, isStr := v.Str()
	if !isStr {
		// Numeric sizes and weights are accepted as is.
		return nil
	}
	if !slices.Contains(choices, s) {
		return fmt.Errorf("%w: %s=%q, must be one of %s", ErrInvalidValue, key, s, strings.Join(choices, ", "))
	}
	return nil
}

// finite reports whether every number in v, nested ones included, is finite.
// The literal grammar has no spelling for NaN or the infinities.
func finite(v Value) bool {
	if f, ok := v.Num(); ok {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	for _, it := range v.Items() {
		if !finite(it) {
			return false
		}
	}
	return true
}
