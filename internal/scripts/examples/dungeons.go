package examples

import (
	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/scripting"
)

const mapDeadmines uint32 = 36

type EncounterState uint8

const (
	EncounterNotStarted EncounterState = iota
	EncounterInProgress
	EncounterDone
)

// deadmines tracks its bosses and counts players inside.
type deadmines struct {
	scripting.InstanceMapScriptBase
	players map[uint32]int
}

func newDeadmines() *deadmines {
	return &deadmines{
		InstanceMapScriptBase: scripting.NewInstanceMapScriptBase("instance_deadmines", mapDeadmines),
		players:               make(map[uint32]int),
	}
}

func (d *deadmines) OnPlayerEnter(m *game.Map, _ *game.Player) { d.players[m.InstanceID]++ }

func (d *deadmines) OnPlayerLeave(m *game.Map, _ *game.Player) {
	if d.players[m.InstanceID] > 0 {
		d.players[m.InstanceID]--
	}
}

func (d *deadmines) OnDestroy(m *game.Map) { delete(d.players, m.InstanceID) }

func (*deadmines) NewInstanceScript(m *game.Map) game.InstanceScript {
	return &deadminesData{instanceID: m.InstanceID}
}

// deadminesData is the per-instance encounter state.
type deadminesData struct {
	instanceID uint32
	bosses     []EncounterState
}

var deadminesBosses = []string{"Rhahk'Zor", "Sneed", "Gilnid", "Mr. Smite", "Captain Greenskin", "Edwin VanCleef"}

func (d *deadminesData) Initialize() {
	d.bosses = make([]EncounterState, len(deadminesBosses))
}

func (d *deadminesData) SetBossState(boss int, state EncounterState) bool {
	if boss < 0 || boss >= len(d.bosses) {
		return false
	}
	if d.bosses[boss] == EncounterDone {
		return false
	}
	d.bosses[boss] = state
	return true
}

func (d *deadminesData) Completed() bool {
	for _, s := range d.bosses {
		if s != EncounterDone {
			return false
		}
	}
	return len(d.bosses) > 0
}
