package content

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.db")
	store, err := OpenStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStoreRoundTrip(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	src, err := LoadYAML(strings.NewReader(sampleContent))
	require.NoError(t, err)
	require.NoError(t, src.AddScript("spell_chill", 21))
	require.NoError(t, src.AddSpellScript(116, "spell_chill"))
	require.NoError(t, store.Save(ctx, src))
	require.NoError(t, store.Save(ctx, src))
	require.NoError(t, store.Close())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Names(), got.Names())
	assert.Equal(t, src.SpellScriptsBounds(116), got.SpellScriptsBounds(116))
	assert.Equal(t, src.Stats(), got.Stats())

	e, ok := got.MapEntry(0)
	require.True(t, ok)
	assert.Equal(t, "Eastern Kingdoms", e.Name)
	assert.True(t, e.IsWorldMap())
}

func TestStoreEmpty(t *testing.T) {
	store, _ := openTestStore(t)
	d, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, d.Stats())
}

func TestOpenStoreRequiresPath(t *testing.T) {
	_, err := OpenStore(" ")
	assert.Error(t, err)
}
