package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSameInstanceTwice(t *testing.T) {
	t.Run("sequential", func(t *testing.T) {
		ctx, logs := newTestContext(t, newDirectory(nil))
		w := newWorld("world_a")

		require.NoError(t, ctx.Worlds.Register(w))
		assert.ErrorIs(t, ctx.Worlds.Register(w), ErrAliasedScript)

		assert.Equal(t, 1, ctx.Worlds.Len())
		assert.Equal(t, 1, ctx.Worlds.Owned())
		assert.Equal(t, uint32(1), ctx.ScriptCount())
		assert.Equal(t, 1, logs.FilterMessage("script has same memory pointer as another script").Len())
	})

	t.Run("name-bound without id", func(t *testing.T) {
		ctx, logs := newTestContext(t, newDirectory(nil))
		c := newCreature("npc_unknown")

		assert.ErrorIs(t, ctx.Creatures.Register(c), ErrNameNotBound)
		assert.ErrorIs(t, ctx.Creatures.Register(c), ErrAliasedScript)

		assert.Equal(t, 0, ctx.Creatures.Len())
		assert.Equal(t, 1, ctx.Creatures.Owned())
		assert.Equal(t, 1, logs.FilterMessage("script has same memory pointer as another script").Len())
	})
}

func TestSequentialIDs(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	worlds := make([]*testWorld, 5)
	for i := range worlds {
		worlds[i] = newWorld("world")
		require.NoError(t, ctx.Worlds.Register(worlds[i]))
	}

	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, ctx.Worlds.IDs())
	for i, w := range worlds {
		got, ok := ctx.Worlds.Lookup(uint32(i))
		require.True(t, ok)
		assert.Same(t, w, got)
	}
	_, ok := ctx.Worlds.Lookup(5)
	assert.False(t, ok)
}

func TestNameBoundRegistration(t *testing.T) {
	d := newDirectory(map[string]uint32{"npc_guard": 10, "npc_vendor": 11})
	ctx, logs := newTestContext(t, d)

	guard := newCreature("npc_guard")
	require.NoError(t, ctx.Creatures.Register(guard))

	got, ok := ctx.Creatures.Lookup(10)
	require.True(t, ok)
	assert.Same(t, guard, got)
	assert.Equal(t, []string{"npc_vendor"}, ctx.UnresolvedNames())
	assert.Equal(t, uint32(1), ctx.ScriptCount())

	missing := newCreature("npc_missing")
	assert.ErrorIs(t, ctx.Creatures.Register(missing), ErrNameNotBound)
	assert.Equal(t, 1, ctx.Creatures.Len())
	assert.Equal(t, 2, ctx.Creatures.Owned())
	assert.Equal(t, uint32(1), ctx.ScriptCount())
	assert.Equal(t, 1, logs.FilterMessage("script does not have a script name assigned in the directory").Len())
}

func TestDuplicateNameAborts(t *testing.T) {
	ctx, logs := newTestContext(t, newDirectory(map[string]uint32{"npc_guard": 10}))

	require.NoError(t, ctx.Creatures.Register(newCreature("npc_guard")))
	assert.Panics(t, func() {
		_ = ctx.Creatures.Register(newCreature("npc_guard"))
	})
	assert.Equal(t, 1, logs.FilterMessage("script already assigned with the same script name, so the script can't work").Len())
}

func TestRegisterNil(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))

	var iface WorldScript
	assert.ErrorIs(t, ctx.Worlds.Register(iface), ErrNilScript)
	assert.ErrorIs(t, ctx.Worlds.Register((*testWorld)(nil)), ErrNilScript)
	assert.Zero(t, ctx.Worlds.Owned())
}

func TestRegisterAfterSeal(t *testing.T) {
	ctx, logs := newTestContext(t, newDirectory(nil))
	ctx.Seal()

	assert.ErrorIs(t, ctx.Worlds.Register(newWorld("late")), ErrRegistrySealed)
	assert.Zero(t, ctx.Worlds.Len())
	assert.Equal(t, 1, logs.FilterMessage("script registered after startup").Len())
}

func TestWithoutOwnership(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	p := newPlayer("player_a")

	require.NoError(t, ctx.Units.Register(p, WithoutOwnership()))
	assert.Equal(t, 1, ctx.Units.Len())
	assert.Zero(t, ctx.Units.Owned())

	ctx.Units.TeardownAll()
	assert.Zero(t, p.n)
}

func TestTeardownAllReleasesOnce(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(map[string]uint32{"npc_a": 1}))
	bound := newCreature("npc_a")
	unbound := newCreature("npc_b")
	require.NoError(t, ctx.Creatures.Register(bound))
	require.ErrorIs(t, ctx.Creatures.Register(unbound), ErrNameNotBound)

	ctx.Creatures.TeardownAll()
	ctx.Creatures.TeardownAll()

	assert.Equal(t, 1, bound.n)
	assert.Equal(t, 1, unbound.n)
	assert.Zero(t, ctx.Creatures.Len())
	assert.Zero(t, ctx.Creatures.Owned())
	_, ok := ctx.Creatures.Lookup(1)
	assert.False(t, ok)
}

func TestKindModes(t *testing.T) {
	nameBound := map[Kind]bool{
		KindSpellScriptLoader:   true,
		KindInstanceMap:         true,
		KindItem:                true,
		KindCreature:            true,
		KindGameObject:          true,
		KindAreaTrigger:         true,
		KindBattleground:        true,
		KindOutdoorPvP:          true,
		KindWeather:             true,
		KindCondition:           true,
		KindTransport:           true,
		KindAchievementCriteria: true,
	}
	ctx, _ := newTestContext(t, newDirectory(nil))
	for _, k := range Kinds() {
		want := SequentialBound
		if nameBound[k] {
			want = NameBound
		}
		assert.Equal(t, want, k.Mode(), k.String())
		require.NotNil(t, ctx.registry(k), k.String())
		assert.Equal(t, k, ctx.registry(k).Kind())

		parsed, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	assert.Len(t, Kinds(), 26)
	assert.False(t, Kind(200).Valid())
}
