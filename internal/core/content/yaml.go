package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/scripthost/internal/core/game"
)

// Document is the on-disk shape of a content file.
type Document struct {
	Scripts      []ScriptRow      `yaml:"scripts"`
	SpellScripts []SpellScriptRow `yaml:"spell_scripts"`
	Maps         []MapRow         `yaml:"maps"`
}

type ScriptRow struct {
	Name string `yaml:"name"`
	ID   uint32 `yaml:"id"`
}

type SpellScriptRow struct {
	Spell  uint32 `yaml:"spell"`
	Script string `yaml:"script"`
}

type MapRow struct {
	ID       uint32 `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// LoadYAML decodes one content document. Unknown keys are rejected and an
// empty input yields an empty directory.
func LoadYAML(r io.Reader) (*Directory, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return doc.Directory()
}

// LoadFile opens path and decodes it with LoadYAML.
func LoadFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	d, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Directory builds a Directory from the rows of the document.
func (doc *Document) Directory() (*Directory, error) {
	d := NewDirectory()
	for i, row := range doc.Scripts {
		if err := d.AddScript(row.Name, row.ID); err != nil {
			return nil, fmt.Errorf("scripts[%d]: %w", i, err)
		}
	}
	for i, row := range doc.SpellScripts {
		if err := d.AddSpellScript(row.Spell, row.Script); err != nil {
			return nil, fmt.Errorf("spell_scripts[%d]: %w", i, err)
		}
	}
	for i, row := range doc.Maps {
		category, ok := game.ParseMapCategory(row.Category)
		if !ok {
			return nil, fmt.Errorf("maps[%d]: unknown map category %q", i, row.Category)
		}
		if err := d.AddMap(game.MapEntry{ID: row.ID, Name: row.Name, Category: category}); err != nil {
			return nil, fmt.Errorf("maps[%d]: %w", i, err)
		}
	}
	return d, nil
}
