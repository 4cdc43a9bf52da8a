package examples

import (
	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/scripting"
)

const (
	guardActionDirections uint32 = 1
	guardActionBank       uint32 = 2

	guardSenderMain uint32 = 1
)

// stormwindGuard offers directions and sends the player to the bank.
type stormwindGuard struct {
	scripting.CreatureScriptBase
}

func newStormwindGuard() *stormwindGuard {
	return &stormwindGuard{scripting.NewCreatureScriptBase("npc_stormwind_guard")}
}

func (stormwindGuard) OnGossipHello(player *game.Player, _ *game.Creature) bool {
	player.Menu.Add(game.GossipOption{Text: "Where can I find...", Sender: guardSenderMain, Action: guardActionDirections})
	player.Menu.Add(game.GossipOption{Icon: 6, Text: "The bank", Sender: guardSenderMain, Action: guardActionBank})
	return true
}

func (stormwindGuard) OnGossipSelect(player *game.Player, _ *game.Creature, sender, action uint32) bool {
	if sender != guardSenderMain {
		return false
	}
	player.Menu.Clear()
	switch action {
	case guardActionBank:
		player.AreaID = 1519
		return true
	case guardActionDirections:
		player.Menu.Add(game.GossipOption{Icon: 6, Text: "The bank", Sender: guardSenderMain, Action: guardActionBank})
		return true
	default:
		return false
	}
}

func (stormwindGuard) NewAI(c *game.Creature) game.CreatureAI {
	return &guardAI{creature: c}
}

// guardAI regenerates the guard while out of combat.
type guardAI struct {
	creature *game.Creature
	timer    uint32
}

const guardRegenInterval uint32 = 2000

func (a *guardAI) UpdateAI(diff uint32) {
	a.timer += diff
	for a.timer >= guardRegenInterval {
		a.timer -= guardRegenInterval
		a.creature.Health += 10
	}
}

// minLevel passes when the first condition object is a player of at least
// the configured level.
type minLevel struct {
	scripting.ConditionScriptBase
	level uint8
}

func newMinLevel(level uint8) *minLevel {
	return &minLevel{ConditionScriptBase: scripting.NewConditionScriptBase("condition_min_level"), level: level}
}

func (m *minLevel) OnConditionCheck(_ *game.Condition, source *game.ConditionSourceInfo) bool {
	if source == nil {
		return false
	}
	player, ok := source.Objects[0].(*game.Player)
	return ok && player.Level >= m.level
}
