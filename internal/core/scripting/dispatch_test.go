package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scripthost/internal/core/game"
)

type honorStep struct {
	FormulaScriptBase
	apply func(*float32)
}

func (h *honorStep) OnHonorCalculation(honor *float32, _ uint8, _ float32) { h.apply(honor) }

func TestBroadcastAccumulatesInRegistrationOrder(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	r := NewRegistrar(ctx)
	require.NoError(t, r.AddFormulaScript(&honorStep{FormulaScriptBase: NewFormulaScriptBase("add"), apply: func(v *float32) { *v += 10 }}))
	require.NoError(t, r.AddFormulaScript(&honorStep{FormulaScriptBase: NewFormulaScriptBase("double"), apply: func(v *float32) { *v *= 2 }}))

	honor := float32(1)
	NewEngine(ctx, nil).OnHonorCalculation(&honor, 80, 1)
	assert.Equal(t, float32(22), honor)
}

func TestBroadcastEmptyRegistry(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	called := false
	Broadcast(ctx.Worlds, func(WorldScript) { called = true })
	assert.False(t, called)
}

func TestCallOrReturnsDefaultWithoutSideEffects(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(map[string]uint32{"npc_guard": 10}))
	require.NoError(t, ctx.Creatures.Register(newCreature("npc_guard")))

	player := &game.Player{}
	player.Menu.Add(game.GossipOption{Text: "keep"})
	damage := uint32(5)

	got := CallOr(ctx.Creatures, 99, false, func(s CreatureScript) bool {
		damage = 0
		return s.OnGossipHello(player, nil)
	})
	assert.False(t, got)
	assert.Equal(t, uint32(5), damage)
	assert.Len(t, player.Menu.Options, 1)

	assert.False(t, Call(ctx.Creatures, 99, func(CreatureScript) { damage = 0 }))
	assert.Equal(t, uint32(5), damage)
}

func TestFirstInRegionStopsAtFirstMatch(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	hits := &mapHits{}
	for _, s := range []*testWorldMap{
		newWorldMap("five", 5, hits),
		newWorldMap("seven_first", 7, hits),
		newWorldMap("seven_second", 7, hits),
	} {
		require.NoError(t, ctx.WorldMaps.Register(s))
	}

	fired := FirstInRegion(ctx.WorldMaps, 7, func(s WorldMapScript) { s.OnPlayerEnter(nil, nil) })
	assert.True(t, fired)
	assert.Equal(t, []string{"seven_first"}, hits.fired)

	assert.False(t, FirstInRegion(ctx.WorldMaps, 9, func(WorldMapScript) { t.Fatal("no script is bound to map 9") }))
}

func TestManufactureFreshInstances(t *testing.T) {
	d := newDirectory(map[string]uint32{"spell_fireball": 3})
	ctx, _ := newTestContext(t, d)
	require.NoError(t, ctx.SpellLoaders.Register(newLoader("spell_fireball", false)))

	bindings := []SpellScriptBinding{{SpellID: 133, ScriptID: 3}, {SpellID: 133, ScriptID: 404}}
	produce := func(l SpellScriptLoader) SpellScript { return l.NewSpellScript() }

	first := Manufacture(ctx.SpellLoaders, 133, bindings, produce)
	second := Manufacture(ctx.SpellLoaders, 133, bindings, produce)
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	assert.NotSame(t, first[0], second[0])
	assert.NotEqual(t, first[0].InstanceID(), second[0].InstanceID())
	assert.Equal(t, "spell_fireball", first[0].ScriptName())
	assert.Equal(t, uint32(133), first[0].SpellID())

	auras := Manufacture(ctx.SpellLoaders, 133, bindings, func(l SpellScriptLoader) AuraScript { return l.NewAuraScript() })
	assert.Empty(t, auras)
}

type commandSet struct {
	CommandScriptBase
	names []string
}

func (c *commandSet) Commands() []game.ChatCommand {
	out := make([]game.ChatCommand, len(c.names))
	for i, n := range c.names {
		out[i] = game.ChatCommand{Name: n}
	}
	return out
}

func TestCollectMergesCommandTables(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	r := NewRegistrar(ctx)
	require.NoError(t, r.AddCommandScript(&commandSet{CommandScriptBase: NewCommandScriptBase("gm"), names: []string{"tele", "announce"}}))
	require.NoError(t, r.AddCommandScript(&commandSet{CommandScriptBase: NewCommandScriptBase("debug"), names: []string{"debug"}}))

	var names []string
	for _, c := range NewEngine(ctx, nil).GetChatCommands() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"announce", "debug", "tele"}, names)
}
