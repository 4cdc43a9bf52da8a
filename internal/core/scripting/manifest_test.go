package scripting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scripthost/internal/core/game"
)

func TestApplyManifest(t *testing.T) {
	ctx, logs := newTestContext(t, newDirectory(map[string]uint32{"npc_guard": 10}))
	r := NewRegistrar(ctx)

	err := r.Apply(Manifest{
		{Kind: KindWorld, New: func() Script { return newWorld("world_a") }},
		{Kind: KindCreature, New: func() Script { return newCreature("npc_guard") }},
		{Kind: KindWorld, New: func() Script { return newWorld("world_b") }},
		{Kind: KindCreature, New: func() Script { return newWorld("not_a_creature") }},
		{Kind: Kind(99), New: func() Script { return newWorld("unknown") }},
		{Kind: KindWorld},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorIs(t, err, ErrNilScript)

	assert.Equal(t, []uint32{0, 1}, ctx.Worlds.IDs())
	w, ok := ctx.Worlds.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "world_b", w.Name())
	_, ok = ctx.Creatures.Lookup(10)
	assert.True(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("script does not implement its declared kind").Len())
}

func TestManifestLoaderLogsSummary(t *testing.T) {
	ctx, logs := newTestContext(t, newDirectory(nil))
	Manifest{
		{Kind: KindWorld, New: func() Script { return newWorld("world_a") }},
		{Kind: KindItem, New: func() Script { return newWorld("world_b") }},
	}.Loader()(NewRegistrar(ctx))

	assert.Equal(t, 1, ctx.Worlds.Len())
	assert.Equal(t, 1, logs.FilterMessage("manifest applied with errors").Len())
}

func TestMapScriptCategoryCheck(t *testing.T) {
	d := newDirectory(map[string]uint32{"instance_keep": 5}).
		withMap(1, game.MapCategoryWorld).
		withMap(2, game.MapCategoryDungeon)
	ctx, logs := newTestContext(t, d)
	r := NewRegistrar(ctx)
	hits := &mapHits{}

	require.NoError(t, r.AddInstanceMapScript(newInstanceMap("instance_keep", 1, hits)))
	require.NoError(t, r.AddWorldMapScript(newWorldMap("world_ok", 1, hits)))
	require.NoError(t, r.AddWorldMapScript(newWorldMap("world_unknown_map", 77, hits)))

	mismatch := logs.FilterMessage("map script is bound to a map of another category")
	require.Equal(t, 1, mismatch.Len())
	assert.Equal(t, "instance_keep", mismatch.All()[0].ContextMap()["script"])
	assert.Equal(t, 1, ctx.InstanceMaps.Len())
}

func TestApplyStopsOnDoneContext(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	r := NewRegistrar(ctx)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.done = cctx

	err := r.Apply(Manifest{
		{Kind: KindWorld, New: func() Script { t.Fatal("constructor must not run"); return nil }},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ctx.Worlds.Len())
}
