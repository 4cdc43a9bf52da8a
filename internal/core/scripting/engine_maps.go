package scripting

import "github.com/zeusync/scripthost/internal/core/game"

// onMap fires fn for the first region script bound to m, looking only at the
// registry of the map's category. Maps without a catalog entry fire nothing.
func (e *Engine) onMap(m *game.Map, fn func(MapHooks)) {
	if m == nil || m.Entry == nil {
		return
	}
	switch {
	case m.Entry.IsWorldMap():
		FirstInRegion(e.ctx.WorldMaps, m.ID, func(s WorldMapScript) { fn(s) })
	case m.Entry.IsDungeon():
		FirstInRegion(e.ctx.InstanceMaps, m.ID, func(s InstanceMapScript) { fn(s) })
	case m.Entry.IsBattleground():
		FirstInRegion(e.ctx.BattlegroundMaps, m.ID, func(s BattlegroundMapScript) { fn(s) })
	}
}

func (e *Engine) OnCreateMap(m *game.Map) {
	e.onMap(m, func(s MapHooks) { s.OnCreate(m) })
}

func (e *Engine) OnDestroyMap(m *game.Map) {
	e.onMap(m, func(s MapHooks) { s.OnDestroy(m) })
}

func (e *Engine) OnLoadGridMap(m *game.Map, grid *game.GridMap, gx, gy uint32) {
	e.onMap(m, func(s MapHooks) { s.OnLoadGridMap(m, grid, gx, gy) })
}

func (e *Engine) OnUnloadGridMap(m *game.Map, grid *game.GridMap, gx, gy uint32) {
	e.onMap(m, func(s MapHooks) { s.OnUnloadGridMap(m, grid, gx, gy) })
}

// OnPlayerEnterMap tells every player script the player changed maps, then
// fires the map's own enter hook.
func (e *Engine) OnPlayerEnterMap(m *game.Map, player *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnMapChanged(player) })
	e.onMap(m, func(s MapHooks) { s.OnPlayerEnter(m, player) })
}

func (e *Engine) OnPlayerLeaveMap(m *game.Map, player *game.Player) {
	e.onMap(m, func(s MapHooks) { s.OnPlayerLeave(m, player) })
}

func (e *Engine) OnMapUpdate(m *game.Map, diff uint32) {
	e.onMap(m, func(s MapHooks) { s.OnUpdate(m, diff) })
}

// CreateInstanceData asks the instance map script bound to m.ScriptID for
// fresh encounter state.
func (e *Engine) CreateInstanceData(m *game.Map) game.InstanceScript {
	if m == nil {
		return nil
	}
	return CallOr[InstanceMapScript, game.InstanceScript](e.ctx.InstanceMaps, m.ScriptID, nil, func(s InstanceMapScript) game.InstanceScript {
		return s.NewInstanceScript(m)
	})
}
