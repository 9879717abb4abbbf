// ABOUTME: Definition is a stored theme: ordered rc params plus the reserved cycle color list
// ABOUTME: Parses and serializes the literal mapping format; exports ordered YAML

package theme

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/plottheme/pkg/rcparams"
)

// CycleKey is the reserved definition key holding the ordered cycle colors.
// It never reaches the store as is: Apply expands it into a cycle at
// rcparams.PropCycle and Snapshot collapses it back.
const CycleKey = "cycler-prop-cycles"

// Definition is an ordered mapping of rc param keys to values, with the
// cycle colors under CycleKey.
type Definition struct {
	m *rcparams.Mapping
}

// NewDefinition returns an empty definition.
func NewDefinition() *Definition {
	return &Definition{m: &rcparams.Mapping{}}
}

// ParseDefinition decodes the stored textual form of a definition.
func ParseDefinition(data []byte) (*Definition, error) {
	m, err := rcparams.ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if v, ok := m.Get(CycleKey); ok {
		if v.Kind() != rcparams.KindList || v.Colors() == nil {
			return nil, fmt.Errorf("%w: %s must be a list of color strings, got %s", ErrParse, CycleKey, v)
		}
	}
	return &Definition{m: m}, nil
}

// MarshalText encodes d in the stored textual form.
func (d *Definition) MarshalText() ([]byte, error) {
	return rcparams.Format(d.m), nil
}

// Len returns the number of keys, the reserved key included.
func (d *Definition) Len() int { return d.m.Len() }

// Keys returns the keys in order, the reserved key included.
func (d *Definition) Keys() []string { return d.m.Keys() }

// Get returns the value stored under key.
func (d *Definition) Get(key string) (rcparams.Value, bool) { return d.m.Get(key) }

// Set stores v under key. Use SetColors for the cycle colors.
func (d *Definition) Set(key string, v rcparams.Value) { d.m.Set(key, v) }

// Delete removes key.
func (d *Definition) Delete(key string) bool { return d.m.Delete(key) }

// Colors returns the ordered cycle colors, or nil when the definition has
// none.
func (d *Definition) Colors() []string {
	v, ok := d.m.Get(CycleKey)
	if !ok {
		return nil
	}
	return v.Colors()
}

// SetColors stores the ordered cycle colors under CycleKey.
func (d *Definition) SetColors(colors []string) {
	d.m.Set(CycleKey, rcparams.Strings(colors...))
}

// Params returns every entry except the reserved key, in order.
func (d *Definition) Params() []rcparams.Entry {
	entries := d.m.Entries()
	out := entries[:0]
	for _, e := range entries {
		if e.Key != CycleKey {
			out = append(out, e)
		}
	}
	return out
}

// Equal reports whether d and o hold the same entries.
func (d *Definition) Equal(o *Definition) bool { return d.m.Equal(o.m) }

// MarshalYAML renders d as an ordered YAML mapping.
func (d *Definition) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range d.m.Entries() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			yamlNode(e.Value),
		)
	}
	return root, nil
}

func yamlNode(v rcparams.Value) *yaml.Node {
	switch v.Kind() {
	case rcparams.KindString:
		s, _ := v.Str()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case rcparams.KindNumber:
		n, _ := v.Num()
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(n), 10)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(n, 'g', -1, 64)}
	case rcparams.KindBool:
		b, _ := v.Boolean()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case rcparams.KindList:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, it := range v.Items() {
			seq.Content = append(seq.Content, yamlNode(it))
		}
		return seq
	case rcparams.KindCycle:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, it := range v.Items() {
			seq.Content = append(seq.Content, yamlNode(it))
		}
		return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "color"}, seq,
		}}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
