// Package content owns the script directory: the names content rows declare,
// the ids they resolve to, the spell to script bindings and the map catalog.
//
// A Directory is filled once at startup and only read afterwards.
package content

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/scripting"
)

var (
	ErrInvalidID     = errors.New("script id 0 is reserved")
	ErrEmptyName     = errors.New("script name is empty")
	ErrConflict      = errors.New("conflicting content binding")
	ErrUnknownScript = errors.New("spell script references an undeclared script name")
)

type Directory struct {
	ids    map[string]uint32
	names  map[uint32]string
	spells map[uint32][]string
	maps   map[uint32]game.MapEntry
}

func NewDirectory() *Directory {
	return &Directory{
		ids:    make(map[string]uint32),
		names:  make(map[uint32]string),
		spells: make(map[uint32][]string),
		maps:   make(map[uint32]game.MapEntry),
	}
}

// AddScript declares name under id. Declaring the same pair twice is a no-op.
func (d *Directory) AddScript(name string, id uint32) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if id == 0 {
		return fmt.Errorf("script %q: %w", name, ErrInvalidID)
	}
	if prev, ok := d.ids[name]; ok && prev != id {
		return fmt.Errorf("script %q declared with ids %d and %d: %w", name, prev, id, ErrConflict)
	}
	if prev, ok := d.names[id]; ok && prev != name {
		return fmt.Errorf("id %d declared for %q and %q: %w", id, prev, name, ErrConflict)
	}
	d.ids[name] = id
	d.names[id] = name
	return nil
}

// AddSpellScript binds a spell to a script name. Bindings keep their
// insertion order per spell; repeating one is a no-op.
func (d *Directory) AddSpellScript(spellID uint32, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if !slices.Contains(d.spells[spellID], name) {
		d.spells[spellID] = append(d.spells[spellID], name)
	}
	return nil
}

func (d *Directory) AddMap(entry game.MapEntry) error {
	if entry.Category == game.MapCategoryNone {
		return fmt.Errorf("map %d has no category", entry.ID)
	}
	if prev, ok := d.maps[entry.ID]; ok && prev != entry {
		return fmt.Errorf("map %d declared as %s and %s: %w", entry.ID, prev.Category, entry.Category, ErrConflict)
	}
	d.maps[entry.ID] = entry
	return nil
}

// Merge adds every binding of other. The first conflict stops the merge.
func (d *Directory) Merge(other *Directory) error {
	for _, id := range slices.Sorted(maps.Keys(other.names)) {
		if err := d.AddScript(other.names[id], id); err != nil {
			return err
		}
	}
	for _, spellID := range slices.Sorted(maps.Keys(other.spells)) {
		for _, name := range other.spells[spellID] {
			if err := d.AddSpellScript(spellID, name); err != nil {
				return err
			}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(other.maps)) {
		if err := d.AddMap(other.maps[id]); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports every spell binding whose script name was never declared.
func (d *Directory) Validate() error {
	var errs []error
	for _, spellID := range slices.Sorted(maps.Keys(d.spells)) {
		for _, name := range d.spells[spellID] {
			if _, ok := d.ids[name]; !ok {
				errs = append(errs, fmt.Errorf("spell %d, script %q: %w", spellID, name, ErrUnknownScript))
			}
		}
	}
	return errors.Join(errs...)
}

func (d *Directory) ResolveID(name string) (uint32, bool) {
	id, ok := d.ids[name]
	return id, ok
}

func (d *Directory) NameOf(id uint32) (string, bool) {
	name, ok := d.names[id]
	return name, ok
}

// Names returns every declared script name, sorted.
func (d *Directory) Names() []string {
	return slices.Sorted(maps.Keys(d.ids))
}

// SpellScriptsBounds returns the bindings of a spell in declaration order.
// Names that were never declared are left out.
func (d *Directory) SpellScriptsBounds(spellID uint32) []scripting.SpellScriptBinding {
	names := d.spells[spellID]
	if len(names) == 0 {
		return nil
	}
	out := make([]scripting.SpellScriptBinding, 0, len(names))
	for _, name := range names {
		if id, ok := d.ids[name]; ok {
			out = append(out, scripting.SpellScriptBinding{SpellID: spellID, ScriptID: id})
		}
	}
	return out
}

func (d *Directory) MapEntry(id uint32) (*game.MapEntry, bool) {
	e, ok := d.maps[id]
	if !ok {
		return nil, false
	}
	return &e, true
}

type Stats struct {
	Scripts      int
	SpellScripts int
	Maps         int
}

func (d *Directory) Stats() Stats {
	s := Stats{Scripts: len(d.ids), Maps: len(d.maps)}
	for _, names := range d.spells {
		s.SpellScripts += len(names)
	}
	return s
}

var (
	_ scripting.Resolver          = (*Directory)(nil)
	_ scripting.NameLister        = (*Directory)(nil)
	_ scripting.MapCatalog        = (*Directory)(nil)
	_ scripting.SpellScriptBounds = (*Directory)(nil)
)
