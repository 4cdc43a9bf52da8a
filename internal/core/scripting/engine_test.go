package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scripthost/internal/core/game"
)

func TestMapDispatchSelectsCategory(t *testing.T) {
	d := newDirectory(map[string]uint32{"instance_seven": 40}).
		withMap(7, game.MapCategoryDungeon)
	ctx, _ := newTestContext(t, d)
	r := NewRegistrar(ctx)
	hits := &mapHits{}

	require.NoError(t, r.AddWorldMapScript(newWorldMap("world_seven", 7, hits)))
	require.NoError(t, r.AddInstanceMapScript(newInstanceMap("instance_seven", 7, hits)))
	playerScript := newPlayer("tracker")
	require.NoError(t, r.AddPlayerScript(playerScript))

	e := NewEngine(ctx, d)
	player := &game.Player{}

	e.OnPlayerEnterMap(&game.Map{ID: 7, Entry: &game.MapEntry{ID: 7, Category: game.MapCategoryDungeon}}, player)
	assert.Equal(t, []string{"instance_seven"}, hits.fired)
	assert.Equal(t, 1, playerScript.mapChanges)

	hits.fired = nil
	e.OnPlayerEnterMap(&game.Map{ID: 7, Entry: &game.MapEntry{ID: 7, Category: game.MapCategoryWorld}}, player)
	assert.Equal(t, []string{"world_seven"}, hits.fired)

	hits.fired = nil
	e.OnPlayerEnterMap(&game.Map{ID: 7}, player)
	assert.Empty(t, hits.fired)
	assert.Equal(t, 3, playerScript.mapChanges)
}

type encounter struct{ mapID uint32 }

func (encounter) Initialize() {}

type raidScript struct {
	InstanceMapScriptBase
}

func (raidScript) NewInstanceScript(m *game.Map) game.InstanceScript {
	return &encounter{mapID: m.ID}
}

func TestCreateInstanceData(t *testing.T) {
	d := newDirectory(map[string]uint32{"instance_raid": 12})
	ctx, _ := newTestContext(t, d)
	require.NoError(t, ctx.InstanceMaps.Register(&raidScript{NewInstanceMapScriptBase("instance_raid", 603)}))
	e := NewEngine(ctx, d)

	data := e.CreateInstanceData(&game.Map{ID: 603, ScriptID: 12})
	require.IsType(t, &encounter{}, data)
	assert.Equal(t, uint32(603), data.(*encounter).mapID)

	assert.Nil(t, e.CreateInstanceData(&game.Map{ID: 603, ScriptID: 13}))
	assert.Nil(t, e.CreateInstanceData(nil))
}

func TestGossipClearsMenuOnlyWhenBound(t *testing.T) {
	d := newDirectory(map[string]uint32{"npc_guard": 10})
	ctx, _ := newTestContext(t, d)
	guard := newCreature("npc_guard")
	require.NoError(t, NewRegistrar(ctx).AddCreatureScript(guard))
	e := NewEngine(ctx, d)

	player := &game.Player{}
	player.Menu.Add(game.GossipOption{Text: "stale"})

	assert.False(t, e.OnCreatureGossipHello(player, &game.Creature{ScriptID: 11}))
	assert.Equal(t, []game.GossipOption{{Text: "stale"}}, player.Menu.Options)

	assert.True(t, e.OnCreatureGossipHello(player, &game.Creature{ScriptID: 10}))
	assert.Equal(t, []game.GossipOption{{Text: "npc_guard"}}, player.Menu.Options)
	assert.Equal(t, 1, guard.hellos)
}

func TestPointLookupDefaults(t *testing.T) {
	ctx, logs := newTestContext(t, newDirectory(nil))
	e := NewEngine(ctx, nil)
	player := &game.Player{}

	assert.False(t, e.OnItemUse(player, &game.Item{ScriptID: 1}, nil))
	assert.False(t, e.OnItemExpire(player, &game.ItemTemplate{ScriptID: 1}))
	assert.False(t, e.OnAreaTrigger(player, &game.AreaTrigger{ScriptID: 1}))
	assert.True(t, e.OnConditionCheck(&game.Condition{ScriptID: 1}, &game.ConditionSourceInfo{}))
	assert.False(t, e.OnCriteriaCheck(1, player, nil))
	assert.Equal(t, game.DialogStatusScriptedNoStatus, e.GetCreatureDialogStatus(player, &game.Creature{ScriptID: 1}))
	assert.Equal(t, game.DialogStatusScriptedNoStatus, e.GetGameObjectDialogStatus(player, &game.GameObject{ScriptID: 1}))
	assert.Nil(t, e.GetCreatureAI(&game.Creature{ScriptID: 1}))
	assert.Nil(t, e.CreateOutdoorPvP(&game.OutdoorPvPData{ScriptID: 1}))

	assert.Zero(t, logs.Len())
}

func TestUnitHooksReachCreatureAndPlayerScripts(t *testing.T) {
	d := newDirectory(map[string]uint32{"npc_guard": 10})
	ctx, _ := newTestContext(t, d)
	r := NewRegistrar(ctx)
	creature := newCreature("npc_guard")
	player := newPlayer("player_hooks")
	require.NoError(t, r.AddCreatureScript(creature))
	require.NoError(t, r.AddPlayerScript(player))

	assert.Equal(t, 2, ctx.Units.Len())
	assert.Zero(t, ctx.Units.Owned())

	damage := uint32(4)
	NewEngine(ctx, d).OnDamage(nil, nil, &damage)
	assert.Equal(t, uint32(10), damage)
	assert.Equal(t, 1, creature.damaged)
	assert.Equal(t, 1, player.damaged)
}

func TestUnboundCreatureStillGetsUnitHooks(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	creature := newCreature("npc_undeclared")

	assert.ErrorIs(t, NewRegistrar(ctx).AddCreatureScript(creature), ErrNameNotBound)
	assert.Equal(t, 1, ctx.Units.Len())

	damage := uint32(0)
	NewEngine(ctx, nil).OnDamage(nil, nil, &damage)
	assert.Equal(t, 1, creature.damaged)
}

type packetRewriter struct {
	ServerScriptBase
	seen []byte
}

func (p *packetRewriter) OnPacketReceive(_ *game.Session, packet *game.Packet) {
	p.seen = append([]byte(nil), packet.Payload...)
	packet.Payload[0] = 0xff
}

func TestPacketHooksGetACopy(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	first := &packetRewriter{ServerScriptBase: NewServerScriptBase("first")}
	second := &packetRewriter{ServerScriptBase: NewServerScriptBase("second")}
	require.NoError(t, ctx.Servers.Register(first))
	require.NoError(t, ctx.Servers.Register(second))

	packet := game.Packet{Opcode: 1, Payload: []byte{1, 2}}
	NewEngine(ctx, nil).OnPacketReceive(&game.Session{}, packet)

	assert.Equal(t, []byte{1, 2}, first.seen)
	assert.Equal(t, []byte{0xff, 2}, second.seen)
	assert.Equal(t, []byte{1, 2}, packet.Payload)
}

type seatCounter struct {
	VehicleScriptBase
	installs int
}

func (s *seatCounter) OnInstall(*game.Vehicle) { s.installs++ }

func TestVehicleLookupUsesBaseCreature(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	first := &seatCounter{VehicleScriptBase: NewVehicleScriptBase("first")}
	second := &seatCounter{VehicleScriptBase: NewVehicleScriptBase("second")}
	require.NoError(t, ctx.Vehicles.Register(first))
	require.NoError(t, ctx.Vehicles.Register(second))
	e := NewEngine(ctx, nil)

	e.OnVehicleInstall(&game.Vehicle{Base: &game.Creature{ScriptID: 1}})
	e.OnVehicleInstall(&game.Vehicle{})
	e.OnVehicleInstall(nil)

	assert.Zero(t, first.installs)
	assert.Equal(t, 1, second.installs)
}

func TestCreateBattlegroundNotImplemented(t *testing.T) {
	ctx, _ := newTestContext(t, newDirectory(nil))
	bg, err := NewEngine(ctx, nil).CreateBattleground(1)
	assert.Nil(t, bg)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestSpellFactories(t *testing.T) {
	d := newDirectory(map[string]uint32{"spell_frostbolt": 1, "spell_chill": 2})
	d.spells[116] = []SpellScriptBinding{
		{SpellID: 116, ScriptID: 1},
		{SpellID: 116, ScriptID: 2},
		{SpellID: 116, ScriptID: 3},
	}
	ctx, _ := newTestContext(t, d)
	r := NewRegistrar(ctx)
	require.NoError(t, r.AddSpellScriptLoader(newLoader("spell_frostbolt", false)))
	require.NoError(t, r.AddSpellScriptLoader(newLoader("spell_chill", true)))
	e := NewEngine(ctx, d)

	spells := e.CreateSpellScripts(116)
	require.Len(t, spells, 2)
	assert.Equal(t, "spell_frostbolt", spells[0].ScriptName())
	assert.Equal(t, "spell_chill", spells[1].ScriptName())

	again := e.CreateSpellScripts(116)
	require.Len(t, again, 2)
	assert.NotEqual(t, spells[0].InstanceID(), again[0].InstanceID())

	auras := e.CreateAuraScripts(116)
	require.Len(t, auras, 1)
	assert.Equal(t, "spell_chill", auras[0].ScriptName())
	assert.Equal(t, uint32(116), auras[0].SpellID())

	loaders := e.CreateSpellScriptLoaders(116)
	require.Len(t, loaders, 2)
	assert.Equal(t, uint32(2), loaders[1].Binding.ScriptID)
	assert.Equal(t, "spell_chill", loaders[1].Loader.Name())

	assert.Empty(t, e.CreateSpellScripts(999))
}
