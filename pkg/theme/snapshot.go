// ABOUTME: Snapshot diffs a store against its factory defaults into a savable Definition
// ABOUTME: AddTheme saves the snapshot to the local registry under a new or existing name

package theme

import (
	"context"
	"errors"
	"slices"

	"github.com/mauromedda/plottheme/internal/log"
	"github.com/mauromedda/plottheme/pkg/rcparams"
)

// Snapshot returns every store key whose value differs from its default, in
// key order. A changed color cycle is moved to the end as CycleKey. The
// store is not modified.
func Snapshot(store Store) *Definition {
	keys := store.Keys()
	slices.Sort(keys)

	def := NewDefinition()
	var cycle *rcparams.Value
	for _, k := range keys {
		v, _ := store.Get(k)
		if d, ok := store.Default(k); ok && d.Equal(v) {
			continue
		}
		if k == rcparams.PropCycle {
			cycle = &v
			continue
		}
		def.Set(k, v)
	}
	if cycle != nil {
		def.SetColors(cycle.Colors())
	}
	return def
}

// Snapshot returns the non-default settings of the state's store.
func (s *State) Snapshot() *Definition { return Snapshot(s.store) }

// AddTheme saves the current snapshot as name in the local registry. An
// existing name is only replaced when policy agrees; a declined overwrite
// is reported through the result, not as an error.
func (s *State) AddTheme(ctx context.Context, name string, policy OverwritePolicy) (SaveResult, error) {
	if s.reg == nil {
		return SaveDeclined, errors.New("no theme registry configured")
	}
	result, err := s.reg.Save(name, s.Snapshot(), policy)
	if err != nil {
		return result, err
	}
	log.Info("%s", result.Message(name))
	if err := s.refreshKnown(ctx); err != nil {
		return result, err
	}
	return result, nil
}
