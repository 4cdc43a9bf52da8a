package scripting

import "github.com/zeusync/scripthost/internal/core/game"

// RegionScript is bound to a single map id and fires only for maps of its
// registry's category.
type RegionScript interface {
	Script
	MapID() uint32
}

// MapHooks are the map lifecycle hooks shared by the three map kinds.
type MapHooks interface {
	OnCreate(m *game.Map)
	OnDestroy(m *game.Map)
	OnLoadGridMap(m *game.Map, grid *game.GridMap, gx, gy uint32)
	OnUnloadGridMap(m *game.Map, grid *game.GridMap, gx, gy uint32)
	OnPlayerEnter(m *game.Map, player *game.Player)
	OnPlayerLeave(m *game.Map, player *game.Player)
	OnUpdate(m *game.Map, diff uint32)
}

type WorldMapScript interface {
	RegionScript
	MapHooks
}

type InstanceMapScript interface {
	RegionScript
	MapHooks
	// NewInstanceScript returns fresh encounter state for an instance.
	NewInstanceScript(m *game.Map) game.InstanceScript
}

type BattlegroundMapScript interface {
	RegionScript
	MapHooks
}

// MapScriptBase implements RegionScript and every MapHooks method as a no-op.
type MapScriptBase struct {
	Named
	mapID uint32
}

func NewMapScriptBase(name string, mapID uint32) MapScriptBase {
	return MapScriptBase{Named: Named(name), mapID: mapID}
}

func (b MapScriptBase) MapID() uint32 { return b.mapID }

func (MapScriptBase) OnCreate(*game.Map)                                       {}
func (MapScriptBase) OnDestroy(*game.Map)                                      {}
func (MapScriptBase) OnLoadGridMap(*game.Map, *game.GridMap, uint32, uint32)   {}
func (MapScriptBase) OnUnloadGridMap(*game.Map, *game.GridMap, uint32, uint32) {}
func (MapScriptBase) OnPlayerEnter(*game.Map, *game.Player)                    {}
func (MapScriptBase) OnPlayerLeave(*game.Map, *game.Player)                    {}
func (MapScriptBase) OnUpdate(*game.Map, uint32)                               {}

type InstanceMapScriptBase struct{ MapScriptBase }

func NewInstanceMapScriptBase(name string, mapID uint32) InstanceMapScriptBase {
	return InstanceMapScriptBase{NewMapScriptBase(name, mapID)}
}

func (InstanceMapScriptBase) NewInstanceScript(*game.Map) game.InstanceScript { return nil }
