package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMergesSources(t *testing.T) {
	dir := t.TempDir()
	creatures := writeContent(t, dir, "creatures.yaml", "scripts:\n  - {name: npc_guard, id: 10}\n")
	spells := writeContent(t, dir, "spells.yaml", "scripts:\n  - {name: spell_a, id: 20}\nspell_scripts:\n  - {spell: 5, script: spell_a}\n")

	dbPath := filepath.Join(dir, "content.db")
	store, err := OpenStore(dbPath)
	require.NoError(t, err)
	extra := NewDirectory()
	require.NoError(t, extra.AddScript("npc_vendor", 11))
	require.NoError(t, store.Save(context.Background(), extra))
	require.NoError(t, store.Close())

	d, err := Load(context.Background(), Source{Files: []string{creatures, spells}, Store: dbPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"npc_guard", "npc_vendor", "spell_a"}, d.Names())
	assert.Len(t, d.SpellScriptsBounds(5), 1)
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	a := writeContent(t, dir, "a.yaml", "scripts:\n  - {name: npc_a, id: 1}\n")
	b := writeContent(t, dir, "b.yaml", "scripts:\n  - {name: npc_b, id: 1}\n")
	dangling := writeContent(t, dir, "c.yaml", "spell_scripts:\n  - {spell: 5, script: spell_nobody}\n")

	_, err := Load(context.Background(), Source{Files: []string{a, b}})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = Load(context.Background(), Source{Files: []string{dangling}})
	assert.ErrorIs(t, err, ErrUnknownScript)

	_, err = Load(context.Background(), Source{Files: []string{filepath.Join(dir, "missing.yaml")}})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmptySource(t *testing.T) {
	assert.True(t, Source{}.Empty())
	d, err := Load(context.Background(), Source{})
	require.NoError(t, err)
	assert.Empty(t, d.Names())
}
